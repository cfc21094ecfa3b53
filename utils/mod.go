package utils

// FindIndex returns the index of the first element satisfying pred, or
// -1 when none does.
func FindIndex[T any](slice []T, pred func(T) bool) int {
	for i, v := range slice {
		if pred(v) {
			return i
		}
	}
	return -1
}

// RemoveAt splices the element at index i out of the slice. The input
// slice is reused.
func RemoveAt[T any](slice []T, i int) []T {
	return append(slice[:i], slice[i+1:]...)
}
