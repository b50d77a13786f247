package indirect

import (
	"errors"
	"fmt"
)

// ErrIncompletePolicyPair is returned by AdoptWithPolicies when exactly one
// of the copier/deleter pair is supplied. The two policies describe one
// ownership contract and must travel together.
var ErrIncompletePolicyPair = errors.New("indirect: copier and deleter must be supplied together")

// ErrNilCopy is returned when a custom copier reports success but yields a
// nil object, which would leave a wrapper engaged with nothing to own.
var ErrNilCopy = errors.New("copier returned nil object")

// panicEmptyGet is the message raised by Get on an empty wrapper.
const panicEmptyGet = "indirect: Get on empty Value"

// noCopy makes `go vet`'s copylocks check report by-value copies of Value.
// Assignment copying an engaged wrapper would alias the owned object.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Value owns at most one heap-allocated T and gives it value semantics:
// Clone and CopyFrom duplicate the owned object, Take and MoveFrom transfer
// it, Reset disposes of it. The zero Value is empty and ready to use.
//
// Value must not be copied by assignment (see the package documentation);
// all methods take pointer receivers and duplication is explicit.
type Value[T any] struct {
	noCopy noCopy

	ptr     *T
	copier  Copier[T]
	deleter Deleter[T]
}

// New heap-allocates a T initialized from v and returns a wrapper owning it.
// The wrapper uses the default policies: Cloner-aware copies and garbage
// collection for disposal.
func New[T any](v T) Value[T] {
	return Value[T]{ptr: &v}
}

// Adopt takes ownership of p under the default policies. The caller must not
// retain, mutate, or free p afterwards. A nil p yields an empty wrapper.
func Adopt[T any](p *T) Value[T] {
	return Value[T]{ptr: p}
}

// AdoptWithPolicies takes ownership of p with a custom copy/delete pair.
// Supplying exactly one of copier and deleter returns
// ErrIncompletePolicyPair; supplying neither is equivalent to Adopt.
//
// A nil p yields an empty wrapper and the policies are discarded: empty
// wrappers carry no policy state.
//
// When a deleter is stored, a finalizer backstop is attached to p so the
// deleter still runs if the wrapper is dropped without Reset. p must
// therefore point to the start of its allocation, not into another object,
// and must not already carry a finalizer: adopting the same pointer twice
// panics inside the runtime, which is the aliasing bug surfacing early.
func AdoptWithPolicies[T any](p *T, copier Copier[T], deleter Deleter[T]) (Value[T], error) {
	if (copier == nil) != (deleter == nil) {
		return Value[T]{}, ErrIncompletePolicyPair
	}

	if p == nil || copier == nil {
		return Value[T]{ptr: p}, nil
	}

	attachBackstop(p, deleter)

	return Value[T]{ptr: p, copier: copier, deleter: deleter}, nil
}

// Engaged reports whether the wrapper currently owns an object. A nil
// receiver reports false.
func (v *Value[T]) Engaged() bool {
	return v != nil && v.ptr != nil
}

// Empty reports whether the wrapper owns nothing.
func (v *Value[T]) Empty() bool {
	return !v.Engaged()
}

// Get returns the owned object. It panics when the wrapper is empty:
// dereferencing an empty wrapper is a precondition violation, the same bug
// as dereferencing a nil pointer. Call Engaged first, or use Ptr, when
// emptiness is a legitimate state at the call site.
func (v *Value[T]) Get() *T {
	if v == nil || v.ptr == nil {
		panic(panicEmptyGet)
	}

	return v.ptr
}

// Ptr returns the owned object, or nil when the wrapper is empty. The
// wrapper retains ownership: the pointer must not be freed, adopted, or used
// past the wrapper's Reset.
func (v *Value[T]) Ptr() *T {
	if v == nil {
		return nil
	}

	return v.ptr
}

// Clone returns a wrapper owning an independent duplicate of v's object,
// made with v's copier (or the default copy policy). The duplicate inherits
// v's policies. An empty v clones to an empty wrapper. On copier failure no
// wrapper is produced and v is untouched.
func (v *Value[T]) Clone() (Value[T], error) {
	if v == nil || v.ptr == nil {
		return Value[T]{}, nil
	}

	dup, err := v.copyObject()
	if err != nil {
		return Value[T]{}, fmt.Errorf("indirect: clone: %w", err)
	}

	if v.deleter != nil {
		attachBackstop(dup, v.deleter)
	}

	return Value[T]{ptr: dup, copier: v.copier, deleter: v.deleter}, nil
}

// CopyFrom replaces dst's object with an independent duplicate of src's,
// adopting src's policies. It has the strong guarantee: the duplicate is
// produced first, and only on success is dst's current object disposed of.
// On failure dst is untouched.
//
// A nil or empty src empties dst. Self-copy (dst == src) is well-defined
// and leaves the logical value unchanged.
func (dst *Value[T]) CopyFrom(src *Value[T]) error {
	if src == nil || src.ptr == nil {
		dst.Reset()
		return nil
	}

	dup, err := src.copyObject()
	if err != nil {
		return fmt.Errorf("indirect: copy: %w", err)
	}

	// Read the policies before Reset: dst may alias src.
	copier, deleter := src.copier, src.deleter
	if deleter != nil {
		attachBackstop(dup, deleter)
	}

	dst.Reset()
	dst.ptr, dst.copier, dst.deleter = dup, copier, deleter

	return nil
}

// Take moves v's object and policies into the returned wrapper, leaving v
// empty. Taking from an empty wrapper returns an empty wrapper. Take never
// duplicates and never fails.
func (v *Value[T]) Take() Value[T] {
	if v == nil || v.ptr == nil {
		return Value[T]{}
	}

	p, copier, deleter := v.ptr, v.copier, v.deleter
	v.ptr, v.copier, v.deleter = nil, nil, nil

	return Value[T]{ptr: p, copier: copier, deleter: deleter}
}

// MoveFrom disposes of dst's current object and steals src's object and
// policies, leaving src empty. Moving from an empty src empties dst. A nil
// src and self-move (dst == src) are no-ops.
func (dst *Value[T]) MoveFrom(src *Value[T]) {
	if src == nil || dst == src {
		return
	}

	dst.Reset()
	dst.ptr, dst.copier, dst.deleter = src.ptr, src.copier, src.deleter
	src.ptr, src.copier, src.deleter = nil, nil, nil
}

// Swap exchanges the owned objects and policy state of v and other. Each
// object keeps its own policies. Nil other and self-swap are no-ops.
func (v *Value[T]) Swap(other *Value[T]) {
	if v == nil || other == nil || v == other {
		return
	}

	v.ptr, other.ptr = other.ptr, v.ptr
	v.copier, other.copier = other.copier, v.copier
	v.deleter, other.deleter = other.deleter, v.deleter
}

// Swap exchanges the owned objects and policy state of a and b. It is the
// free-function form of [Value.Swap].
func Swap[T any](a, b *Value[T]) {
	a.Swap(b)
}

// Reset disposes of the owned object and empties the wrapper. Under a custom
// deleter the finalizer backstop is detached and the deleter runs exactly
// once; under the default policies the object is simply released to the
// garbage collector. Policies are dropped with the object. Reset on an empty
// wrapper or nil receiver is a no-op, so Reset is idempotent.
func (v *Value[T]) Reset() {
	if v == nil || v.ptr == nil {
		return
	}

	p, deleter := v.ptr, v.deleter
	v.ptr, v.copier, v.deleter = nil, nil, nil

	if deleter != nil {
		releaseBackstop(p)
		deleter(p)
	}
}

// copyObject duplicates the owned object with the stored copier, or the
// default copy policy when none is stored. Callers wrap the error with their
// operation name.
func (v *Value[T]) copyObject() (*T, error) {
	if v.copier == nil {
		return defaultCopy(v.ptr)
	}

	dup, err := v.copier(v.ptr)
	if err != nil {
		return nil, err
	}

	if dup == nil {
		return nil, ErrNilCopy
	}

	return dup, nil
}
