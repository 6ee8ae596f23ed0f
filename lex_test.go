package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"spaces", " \t\n ", ""},
		{"div", "3 / 2", "3 / 2"},
		{"sub", "3 - 2", "3 - 2"},
		{"decimal", "12.5*3", "12.5 * 3"},
		{"neg", "-2 + 2", "0 - 2 + 2"},
		{"bare-neg", "-", "0 -"},
		{"neg-group", "-(2)", "0 - ( 2 )"},
		{"neg-paren", "(2)+(-2)", "( 2 ) + ( 0 - 2 )"},
		{"neg-nested", "2 * (-(-2))", "2 * ( 0 - ( 0 - 2 ) )"},
		{"sub-group", "(2)-1", "( 2 ) 0 - 1"},
		{"sub-groups", "(1+2) - (3)", "( 1 + 2 ) 0 - ( 3 )"},
		{"spaced-add-neg", "2 + -2", "2 + 0 - 2"},
		{"spaced-mul-neg", "2 * -2", "2 * 0 - 2"},
		{"spaced-ops", "1 + * 2", "1 + * 2"},
		{"mixed", "3 ^ 4 + ( 11 - ( 3 * 2 ) ) / 2", "3 ^ 4 + ( 11 - ( 3 * 2 ) ) / 2"},
		{"joined", "1 2", "12"},
		{"dropped", "( 2 % 2 )", "( 22 )"},
		{"badnum", "1.2.3", "1.2.3"},
		{"dot", ".", "."},
	}
	c := quiet()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := c.Split(tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, toks.String())
		})
	}
}

func TestSplitKinds(t *testing.T) {
	toks, err := quiet().Split("-(1.5)")
	require.NoError(t, err)
	want := Tokens{Num("0"), Op('-'), Open(), Num("1.5"), Close()}
	assert.Equal(t, want, toks)
}

func TestSplitAdjacentOperators(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want AdjacentOperatorError
	}{
		{"mul-neg", "2 *-(-(-2))", AdjacentOperatorError{Col: 4, Prev: "*", Operator: "-"}},
		{"mul-add", "2 *+ 2", AdjacentOperatorError{Col: 4, Prev: "*", Operator: "+"}},
		{"pow", "2 ^^ 3", AdjacentOperatorError{Col: 4, Prev: "^", Operator: "^"}},
		{"negneg", "--1", AdjacentOperatorError{Col: 2, Prev: "-", Operator: "-"}},
		{"pow-neg", "2^-1", AdjacentOperatorError{Col: 3, Prev: "^", Operator: "-"}},
	}
	c := quiet()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := c.Split(tc.src)
			assert.Nil(t, toks)
			var ae *AdjacentOperatorError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, tc.want, *ae)
			assert.Equal(t, tc.want.Col, ae.Pos())
		})
	}
}

func TestSplitDroppedRuneSeparatesOperators(t *testing.T) {
	// Whitespace and other dropped runes both reset the adjacency check.
	c := quiet()
	for _, s := range []string{"2 *%- 3", "2 * - 3", "2 *\t-3"} {
		toks, err := c.Split(s)
		require.NoError(t, err, s)
		assert.Equal(t, "2 * 0 - 3", toks.String(), s)
	}
}
