package parser

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rashmirathi1729/liswat/internal/value"
)

// bigIntComparer lets cmp.Diff compare Number payloads by value; *big.Int
// has unexported fields that cmp cannot walk on its own.
var bigIntComparer = cmp.Comparer(func(a, b *big.Int) bool { return a.Cmp(b) == 0 })

func mustRead(t *testing.T, text string) value.Value {
	t.Helper()
	v, err := ReadOne(text)
	require.Nilf(t, err, "ReadOne(%q) failed: %v", text, err)
	return v
}

func TestReadAtoms(t *testing.T) {
	assert.Equal(t, value.Atom("foo"), mustRead(t, "foo"))
	assert.Equal(t, value.Bool(true), mustRead(t, "#t"))
	assert.Equal(t, value.Str("hi"), mustRead(t, `"hi"`))
	assert.Equal(t, value.Char('a'), mustRead(t, `#\a`))
}

func TestReadIntegers(t *testing.T) {
	got := mustRead(t, "42")
	n, ok := got.(value.Number)
	require.True(t, ok)
	assert.Equal(t, int64(42), n.V.Int64())

	got = mustRead(t, "-7")
	n, ok = got.(value.Number)
	require.True(t, ok)
	assert.Equal(t, int64(-7), n.V.Int64())
}

func TestReadHexOctDecimal(t *testing.T) {
	got := mustRead(t, "#x1F")
	n, ok := got.(value.Number)
	require.True(t, ok)
	assert.Equal(t, int64(31), n.V.Int64())

	got = mustRead(t, "#o17")
	n, ok = got.(value.Number)
	require.True(t, ok)
	assert.Equal(t, int64(15), n.V.Int64())

	got = mustRead(t, "#d3.5")
	f, ok := got.(value.Float)
	require.True(t, ok)
	assert.Equal(t, 3.5, float64(f))
}

func TestReadRational(t *testing.T) {
	got := mustRead(t, "1/2")
	r, ok := got.(value.Rational)
	require.True(t, ok)
	assert.Equal(t, "1/2", r.String())
}

func TestReadComplex(t *testing.T) {
	got := mustRead(t, "1+2i")
	c, ok := got.(value.Complex)
	require.True(t, ok)
	assert.Equal(t, 1.0, c.Re)
	assert.Equal(t, 2.0, c.Im)
}

func TestReadList(t *testing.T) {
	want := value.List{value.Atom("+"), value.NewNumber(1), value.NewNumber(2)}
	got := mustRead(t, "(+ 1 2)")
	if diff := cmp.Diff(want, got, bigIntComparer); diff != "" {
		t.Errorf("ReadOne mismatch (-want +got):\n%s", diff)
	}
}

func TestReadDottedList(t *testing.T) {
	want := value.DottedList{Head: []value.Value{value.Atom("a")}, Tail: value.Atom("b")}
	got := mustRead(t, "(a . b)")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadOne mismatch (-want +got):\n%s", diff)
	}
}

func TestReadVector(t *testing.T) {
	want := value.Vector{value.NewNumber(1), value.NewNumber(2)}
	got := mustRead(t, "#(1 2)")
	if diff := cmp.Diff(want, got, bigIntComparer); diff != "" {
		t.Errorf("ReadOne mismatch (-want +got):\n%s", diff)
	}
}

func TestReadQuote(t *testing.T) {
	want := value.List{value.Atom("quote"), value.Atom("foo")}
	got := mustRead(t, "'foo")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadOne mismatch (-want +got):\n%s", diff)
	}
}

func TestReadAllMultipleExprs(t *testing.T) {
	vals, err := ReadAll("1 2 3")
	require.Nil(t, err)
	require.Len(t, vals, 3)
	assert.Equal(t, value.NewNumber(3), vals[2])
}

func TestReadStringEscapes(t *testing.T) {
	got := mustRead(t, `"a\nb"`)
	assert.Equal(t, value.Str("a\nb"), got)
}

func TestReadUnexpectedCloseParen(t *testing.T) {
	_, err := ReadOne(")")
	require.NotNil(t, err)
}
