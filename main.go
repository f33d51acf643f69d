package main

import "github.com/Manu343726/iscreate/cmd"

func main() {
	cmd.Execute()
}
