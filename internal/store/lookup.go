package store

import "slices"

// findFirst returns the first item of items matching match, or notFound.
func findFirst[T any](items []T, match func(T) bool, notFound error) (T, error) {
	i := slices.IndexFunc(items, match)
	if i < 0 {
		var zero T
		return zero, notFound
	}
	return items[i], nil
}
