package utils

import (
	"golang.org/x/exp/constraints"
)

// Generates a sequence constructed by applying a function to all elements of a given input sequence
func Map[T any, U any](input []T, mapFunction func(T) U) []U {
	output := make([]U, len(input))

	for i := range input {
		output[i] = mapFunction(input[i])
	}

	return output
}

// Returns the biggest item of a sequence, or the fallback value if the sequence is empty
func MaxOr[T constraints.Ordered](input []T, fallback T) T {
	if len(input) == 0 {
		return fallback
	}

	max := input[0]

	for _, item := range input {
		if item > max {
			max = item
		}
	}

	return max
}

// Returns a copy of the given slice. Nil stays nil
func Clone[T any](input []T) []T {
	if input == nil {
		return nil
	}

	output := make([]T, len(input))
	copy(output, input)
	return output
}

// Generates a sequence of n elements given a generation function
func Iota[T any](n int, gen func(int) T) []T {
	values := make([]T, n)

	for i := range values {
		values[i] = gen(i)
	}

	return values
}

// Returns a sequence of n indices
func Indices(n int) []int {
	return Iota(n, func(i int) int { return i })
}
