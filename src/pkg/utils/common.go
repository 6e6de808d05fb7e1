package utils

func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}

// Pair holds two values produced together, e.g. a name and its total.
type Pair[T, K any] struct {
	First  T
	Second K
}

func (p Pair[T, K]) Destruct() (T, K) {
	return p.First, p.Second
}
