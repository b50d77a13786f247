package clone

import (
	"errors"
	"fmt"

	"github.com/mohae/deepcopy"

	"github.com/Twon/indirect-value/indirect"
)

// ErrNilSource is returned when a copier built by this package is handed a
// nil source. Engaged wrappers never do that; hitting it means the copier
// was called by hand.
var ErrNilSource = errors.New("clone: nil source")

// ErrUncopyable is returned by Deep copiers when the reflection engine
// cannot reproduce a value of the requested type.
var ErrUncopyable = errors.New("clone: value cannot be deep-copied")

// Shallow returns a copier that allocates a new T and member-wise copies the
// source into it. Referenced state (slices, maps, pointers) is shared with
// the source, which is only safe for types that treat such state as
// immutable.
func Shallow[T any]() indirect.Copier[T] {
	return func(src *T) (*T, error) {
		if src == nil {
			return nil, ErrNilSource
		}

		dup := *src

		return &dup, nil
	}
}

// ByCloner returns a copier that delegates to the type's own Clone method.
func ByCloner[T indirect.Cloner[T]]() indirect.Copier[T] {
	return func(src *T) (*T, error) {
		if src == nil {
			return nil, ErrNilSource
		}

		dup := (*src).Clone()

		return &dup, nil
	}
}

// Func lifts a pure copy function into a copier. fn must return a value
// sharing no mutable state with its argument.
func Func[T any](fn func(T) T) indirect.Copier[T] {
	return func(src *T) (*T, error) {
		if src == nil {
			return nil, ErrNilSource
		}

		dup := fn(*src)

		return &dup, nil
	}
}

// Deep returns a reflection-driven deep copier: slices, maps, pointers, and
// nested structs are duplicated recursively. Only exported fields are
// copied; unexported fields come back as zero values, a limitation of
// reflection-based copying. Types carrying unexported state need ByCloner
// or Func instead.
func Deep[T any]() indirect.Copier[T] {
	return func(src *T) (*T, error) {
		if src == nil {
			return nil, ErrNilSource
		}

		dup, ok := deepcopy.Copy(*src).(T)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrUncopyable, *src)
		}

		return &dup, nil
	}
}
