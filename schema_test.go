package ce

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchema_Kinds(t *testing.T) {
	watch := func(*Store, any) {}
	var seq iter.Seq[any] = func(func(any) bool) {}

	s := NewSchema(map[string]any{
		"title":   "Hello",
		"count":   0,
		"watched": watch,
		"named":   Watcher(watch),
		"both":    Field{Default: "x", Watcher: watch},
		"only":    Field{Default: 7},
		"onlyW":   Field{Watcher: watch},
		"items":   []string{"a"},
		"seqDef":  Field{Default: []int{1}},
		"lazy":    seq,
		"nothing": nil,
	})

	tests := []struct {
		name string
		kind FieldKind
		def  any
	}{
		{"title", KindDefault, "Hello"},
		{"count", KindDefault, 0},
		{"watched", KindWatched, nil},
		{"named", KindWatched, nil},
		{"both", KindDefaultAndWatched, "x"},
		{"only", KindDefault, 7},
		{"onlyW", KindWatched, nil},
		{"items", KindSequence, []string{"a"}},
		{"seqDef", KindSequence, []int{1}},
		{"nothing", KindDefault, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := s.Field(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.name, f.Name)
			assert.Equal(t, tt.kind, f.Kind, f.Kind.String())
			assert.Equal(t, tt.def, f.Default)
		})
	}

	lazy, ok := s.Field("lazy")
	require.True(t, ok)
	assert.Equal(t, KindSequence, lazy.Kind)
}

func TestSchema_Names(t *testing.T) {
	s := NewSchema(map[string]any{"b": 1, "a": 2, "c": 3})

	assert.Equal(t, []string{"a", "b", "c"}, s.Names())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("d"))

	names := s.Names()
	names[0] = "mutated"
	assert.Equal(t, "a", s.Names()[0])
}

func TestSchema_Empty(t *testing.T) {
	s := NewSchema(nil)

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Names())
}

func TestFieldKind_String(t *testing.T) {
	assert.Equal(t, "default", KindDefault.String())
	assert.Equal(t, "watched", KindWatched.String())
	assert.Equal(t, "default+watched", KindDefaultAndWatched.String())
	assert.Equal(t, "sequence", KindSequence.String())
	assert.Equal(t, "unknown", FieldKind(99).String())
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"s", "s"},
		{true, "true"},
		{42, "42"},
		{int64(-3), "-3"},
		{uint64(9), "9"},
		{1.5, "1.5"},
		{float32(0.25), "0.25"},
		{func() {}, ""},
		{make(chan int), ""},
		{[]string{"a", "b"}, "[a b]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, display(tt.in))
	}
}

func TestIsPrimitive(t *testing.T) {
	for _, v := range []any{"s", 1, int8(1), uint(2), 1.5, float32(1), true} {
		assert.True(t, isPrimitive(v), "%T", v)
	}
	for _, v := range []any{nil, []string{}, map[string]int{}, struct{}{}, func() {}} {
		assert.False(t, isPrimitive(v), "%T", v)
	}
}
