package utils

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Returns the keys of a map in ascending order
func SortedKeys[Key constraints.Ordered, Value any](input map[Key]Value) []Key {
	keys := make([]Key, 0, len(input))

	for key := range input {
		keys = append(keys, key)
	}

	slices.Sort(keys)
	return keys
}
