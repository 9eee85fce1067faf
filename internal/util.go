package internal

// ReconstructPath walks predecessor links from current back to the root and
// returns the visited values in root-first order.
func ReconstructPath[T any](current T, predecessor func(T) (T, bool)) []T {
	path := []T{current}
	for {
		previous, exists := predecessor(current)
		if !exists {
			break
		}
		path = append(path, previous)
		current = previous
	}
	Reverse(path)
	return path
}

// Reverse reverses values in place.
func Reverse[T any](values []T) {
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
}
