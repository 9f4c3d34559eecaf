package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verifyInterpret runs each input through a fresh interpreter and checks
// its canonical printed result, in the teacher's table-driven style.
func verifyInterpret(t *testing.T, inputs map[string]string) {
	t.Helper()
	for in, want := range inputs {
		it := NewInterpreter()
		got, err := it.Interpret(in)
		require.Nilf(t, err, "Interpret(%q) failed: %v", in, err)
		assert.Equalf(t, want, got, "Interpret(%q)", in)
	}
}

// verifyInterpretError runs each input and asserts it fails with an error
// message containing the given substring.
func verifyInterpretError(t *testing.T, inputs map[string]string) {
	t.Helper()
	for in, want := range inputs {
		it := NewInterpreter()
		_, err := it.Interpret(in)
		require.NotNilf(t, err, "Interpret(%q) should have failed", in)
		assert.Containsf(t, err.Error(), want, "Interpret(%q)", in)
	}
}

func TestSelfEvaluating(t *testing.T) {
	verifyInterpret(t, map[string]string{
		`1`:      `1`,
		`"hi"`:   `"hi"`,
		`#t`:     `#t`,
		`#f`:     `#f`,
		`#\a`:    `#\a`,
		`'foo`:   `foo`,
		`'(1 2)`: `(1 2)`,
	})
}

func TestArithmetic(t *testing.T) {
	verifyInterpret(t, map[string]string{
		`(+ 1 2)`:       `3`,
		`(+ 1 2 3)`:     `6`,
		`(- 10 3)`:      `7`,
		`(* 2 3 4)`:     `24`,
		`(/ 10 2)`:      `5`,
		`(quotient 7 2)`: `3`,
		`(remainder 7 2)`: `1`,
		`(mod 7 -2)`:    `-1`,
		`(mod -7 2)`:    `1`,
		`(= 1 1)`:       `#t`,
		`(< 1 2)`:       `#t`,
		`(> 1 2)`:       `#f`,
	})
}

func TestIf(t *testing.T) {
	verifyInterpret(t, map[string]string{
		`(if #t 1 2)`:          `1`,
		`(if #f 1 2)`:          `2`,
		`(if 0 "yes" "no")`:    `"yes"`,
		`(if (< 1 2) "a" "b")`: `"a"`,
	})
}

func TestDefineAndSet(t *testing.T) {
	it := NewInterpreter()
	_, err := it.Interpret(`(define x 5)`)
	require.Nil(t, err)
	result, err := it.Interpret(`x`)
	require.Nil(t, err)
	assert.Equal(t, `5`, result)
	_, err = it.Interpret(`(set! x 6)`)
	require.Nil(t, err)
	result, err = it.Interpret(`x`)
	require.Nil(t, err)
	assert.Equal(t, `6`, result)
}

func TestLambdaAndApply(t *testing.T) {
	it := NewInterpreter()
	_, err := it.Interpret(`(define (square x) (* x x))`)
	require.Nil(t, err)
	result, err := it.Interpret(`(square 5)`)
	require.Nil(t, err)
	assert.Equal(t, `25`, result)
}

func TestVarargsLambda(t *testing.T) {
	it := NewInterpreter()
	_, err := it.Interpret(`(define (f a . rest) rest)`)
	require.Nil(t, err)
	result, err := it.Interpret(`(f 1 2 3)`)
	require.Nil(t, err)
	assert.Equal(t, `(2 3)`, result)
}

func TestCond(t *testing.T) {
	verifyInterpret(t, map[string]string{
		`(cond (#f 1) (#t 2) (else 3))`: `2`,
		`(cond (#f 1) (else 3))`:        `3`,
	})
}

func TestCase(t *testing.T) {
	verifyInterpret(t, map[string]string{
		`(case 2 ((1) "one") ((2 3) "two-or-three") (else "other"))`: `"two-or-three"`,
	})
}

func TestUnboundVariable(t *testing.T) {
	verifyInterpretError(t, map[string]string{
		`nosuchvar`: "Getting an unbound variable",
	})
}

func TestNotAFunction(t *testing.T) {
	verifyInterpretError(t, map[string]string{
		`(1 2 3)`: "Not a function",
	})
}

func TestSetUnbound(t *testing.T) {
	verifyInterpretError(t, map[string]string{
		`(set! nosuchvar 1)`: "Setting an unbound variable",
	})
}

func TestAssert(t *testing.T) {
	verifyInterpret(t, map[string]string{
		`(assert 1 1)`: `#t`,
	})
	verifyInterpretError(t, map[string]string{
		`(assert 1 2)`: "Assertion failed",
	})
}

func TestClosureCapturesDefiningEnv(t *testing.T) {
	it := NewInterpreter()
	_, err := it.Interpret(`(define (adder n) (lambda (x) (+ x n)))`)
	require.Nil(t, err)
	_, err = it.Interpret(`(define add5 (adder 5))`)
	require.Nil(t, err)
	result, err := it.Interpret(`(add5 10)`)
	require.Nil(t, err)
	assert.Equal(t, `15`, result)
}
