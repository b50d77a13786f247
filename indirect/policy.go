package indirect

import "io"

// Copier produces an independent duplicate of an owned object. The returned
// pointer must reference a freshly allocated object that shares no mutable
// state with src. A Copier that cannot duplicate src returns an error and
// leaves src untouched; in that case no ownership changes anywhere.
//
// Copiers are invoked only on engaged wrappers, so src is never nil.
type Copier[T any] func(src *T) (*T, error)

// Deleter releases an owned object when its wrapper is reset, overwritten,
// or collected. Deleters must not fail and must not panic: they run at
// points where the wrapper has already been emptied and during garbage
// collection, where there is nobody left to handle an error.
type Deleter[T any] func(p *T)

// Cloner is the opt-in copy hook honored by the default copy policy. A type
// whose values own referenced state (slices, maps, nested pointers)
// implements Clone to return a deep, independent duplicate; wrappers built
// with New or Adopt then pick it up automatically.
type Cloner[T any] interface {
	Clone() T
}

// defaultCopy duplicates via the Cloner hook when T provides one, and falls
// back to a member-wise copy. The pointer check comes first: the method set
// of *T includes Clone regardless of its receiver kind. The value check
// covers interface-typed T, where the hook lives on the dynamic value.
func defaultCopy[T any](src *T) (*T, error) {
	if cloner, ok := any(src).(Cloner[T]); ok {
		dup := cloner.Clone()
		return &dup, nil
	}

	if cloner, ok := any(*src).(Cloner[T]); ok {
		dup := cloner.Clone()
		return &dup, nil
	}

	dup := *src

	return &dup, nil
}

// CloseDeleter returns a Deleter for types that follow the io.Closer
// convention. Close errors are discarded: disposal runs on paths that
// cannot report failure.
//
// The pointer type is inferred, so CloseDeleter[os.File]() is enough for
// types whose Close has a pointer receiver.
func CloseDeleter[T any, PT interface {
	*T
	io.Closer
}]() Deleter[T] {
	return func(p *T) {
		if p == nil {
			return
		}

		_ = PT(p).Close()
	}
}
