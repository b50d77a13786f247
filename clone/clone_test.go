//go:build unit

package clone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Twon/indirect-value/clone"
	"github.com/Twon/indirect-value/indirect"
)

// record exercises every kind of referenced state the copiers must handle.
type record struct {
	Name   string
	Scores []int
	Meta   map[string]string
	Next   *record
}

func sampleRecord() *record {
	return &record{
		Name:   "primary",
		Scores: []int{1, 2, 3},
		Meta:   map[string]string{"region": "eu"},
		Next:   &record{Name: "linked"},
	}
}

// journal satisfies indirect.Cloner with a hand-written deep copy.
type journal struct {
	Entries []string
}

func (j journal) Clone() journal {
	return journal{Entries: append([]string(nil), j.Entries...)}
}

func TestShallowCopiesTopLevelOnly(t *testing.T) {
	t.Parallel()

	copier := clone.Shallow[record]()

	src := sampleRecord()

	dup, err := copier(src)
	require.NoError(t, err)
	require.NotSame(t, src, dup)

	// Top-level fields are independent.
	src.Name = "mutated"
	assert.Equal(t, "primary", dup.Name)

	// Referenced state is shared, the documented shallow contract.
	src.Scores[0] = 99
	assert.Equal(t, 99, dup.Scores[0])

	src.Meta["region"] = "us"
	assert.Equal(t, "us", dup.Meta["region"])

	assert.Same(t, src.Next, dup.Next)
}

func TestShallowNilSource(t *testing.T) {
	t.Parallel()

	copier := clone.Shallow[record]()

	_, err := copier(nil)
	assert.ErrorIs(t, err, clone.ErrNilSource)
}

func TestByClonerDelegatesToCloneMethod(t *testing.T) {
	t.Parallel()

	copier := clone.ByCloner[journal]()

	src := &journal{Entries: []string{"opened"}}

	dup, err := copier(src)
	require.NoError(t, err)

	src.Entries[0] = "mutated"
	assert.Equal(t, "opened", dup.Entries[0])
}

func TestByClonerNilSource(t *testing.T) {
	t.Parallel()

	copier := clone.ByCloner[journal]()

	_, err := copier(nil)
	assert.ErrorIs(t, err, clone.ErrNilSource)
}

func TestFuncLiftsPureCopyFunction(t *testing.T) {
	t.Parallel()

	calls := 0
	copier := clone.Func(func(j journal) journal {
		calls++

		return journal{Entries: append([]string(nil), j.Entries...)}
	})

	src := &journal{Entries: []string{"a"}}

	dup, err := copier(src)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	src.Entries[0] = "mutated"
	assert.Equal(t, "a", dup.Entries[0])
}

func TestFuncNilSource(t *testing.T) {
	t.Parallel()

	copier := clone.Func(func(j journal) journal { return j })

	_, err := copier(nil)
	assert.ErrorIs(t, err, clone.ErrNilSource)
}

func TestDeepCopiesNestedState(t *testing.T) {
	t.Parallel()

	copier := clone.Deep[record]()

	src := sampleRecord()

	dup, err := copier(src)
	require.NoError(t, err)
	require.NotSame(t, src, dup)

	src.Scores[0] = 99
	assert.Equal(t, 1, dup.Scores[0])

	src.Meta["region"] = "us"
	assert.Equal(t, "eu", dup.Meta["region"])

	require.NotSame(t, src.Next, dup.Next)
	src.Next.Name = "mutated"
	assert.Equal(t, "linked", dup.Next.Name)
}

func TestDeepNilSource(t *testing.T) {
	t.Parallel()

	copier := clone.Deep[record]()

	_, err := copier(nil)
	assert.ErrorIs(t, err, clone.ErrNilSource)
}

func TestDeepZeroesUnexportedFields(t *testing.T) {
	t.Parallel()

	type mixed struct {
		Name   string
		hidden int
	}

	copier := clone.Deep[mixed]()

	dup, err := copier(&mixed{Name: "visible", hidden: 7})
	require.NoError(t, err)

	// The reflection engine cannot reach unexported fields; they come back
	// zeroed. Types carrying unexported state belong with ByCloner or Func.
	assert.Equal(t, "visible", dup.Name)
	assert.Zero(t, dup.hidden)
}

func TestDeepRejectsNilInterfaceValue(t *testing.T) {
	t.Parallel()

	copier := clone.Deep[error]()

	var src error

	_, err := copier(&src)
	assert.ErrorIs(t, err, clone.ErrUncopyable)
}

func TestDeepWiredIntoValueClone(t *testing.T) {
	t.Parallel()

	w, err := indirect.AdoptWithPolicies(sampleRecord(), clone.Deep[record](), func(_ *record) {})
	require.NoError(t, err)

	dup, err := w.Clone()
	require.NoError(t, err)

	w.Get().Meta["region"] = "us"
	w.Get().Scores[0] = 99

	assert.Equal(t, "eu", dup.Get().Meta["region"])
	assert.Equal(t, 1, dup.Get().Scores[0])

	w.Reset()
	dup.Reset()
}
