package lazy

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Loader builds its value on the first Load and returns the same value or error afterwards.
type Loader[T any] interface {
	Load() (T, error)
	MustLoad() T
	IfLoaded(func(T))
}

type loader[T any] struct {
	load   func() (T, error)
	loaded atomic.Bool
}

func New[T any](provider func() (T, error)) Loader[T] {
	l := &loader[T]{}
	l.load = sync.OnceValues(func() (T, error) {
		value, err := provider()
		if err != nil {
			return value, fmt.Errorf("load %T: %w", (*T)(nil), err)
		}

		l.loaded.Store(true)
		return value, nil
	})

	return l
}

func (l *loader[T]) Load() (T, error) {
	return l.load()
}

func (l *loader[T]) MustLoad() T {
	value, err := l.load()
	if err != nil {
		panic(err)
	}

	return value
}

// IfLoaded calls f only for a successfully loaded value, it never triggers loading.
func (l *loader[T]) IfLoaded(f func(T)) {
	if !l.loaded.Load() {
		return
	}

	value, _ := l.load()
	f(value)
}
