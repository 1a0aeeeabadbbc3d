package util

// InPlaceFilter keeps the elements of s that keep returns true for,
// reusing the slice's backing array
func InPlaceFilter[T any](s *[]T, keep func(T) bool) {
	filtered := (*s)[:0]

	for _, element := range *s {
		if keep(element) {
			filtered = append(filtered, element)
		}
	}

	*s = filtered
}
