package sexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	testCases := []struct {
		In  *Value
		Out string
	}{
		{
			NewNumberValue(1),
			"1 ",
		},
		{
			NewNumberValue(-2.5),
			"-2.5 ",
		},
		{
			NewStringValue("hello"),
			"hello ",
		},
		{
			True,
			"T ",
		},
		{
			False,
			"F ",
		},
		{
			NewListValue([]*Value{
				NewNumberValue(1),
				NewNumberValue(2),
				NewNumberValue(3),
			}),
			"(1 2 3 )",
		},
		{
			NewListValue([]*Value{
				NewStringValue("+"),
				NewNumberValue(1),
				NewListValue([]*Value{
					NewStringValue("*"),
					NewNumberValue(2),
					NewNumberValue(3),
				}),
			}),
			"(+ 1 (* 2 3 ))",
		},
		{
			NewListValue([]*Value{}),
			"()",
		},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, testCases[i].In.String())
	}
}

func TestValueEqual(t *testing.T) {
	a := NewListValue([]*Value{
		NewStringValue("+"),
		NewNumberValue(1),
		NewListValue([]*Value{True, False}),
	})
	b := NewListValue([]*Value{
		NewStringValue("+"),
		NewNumberValue(1),
		NewListValue([]*Value{True, False}),
	})

	assert.True(t, a.Equal(b))

	c := NewListValue([]*Value{
		NewStringValue("+"),
		NewNumberValue(1),
		NewListValue([]*Value{True, True}),
	})
	assert.False(t, a.Equal(c))

	assert.False(t, NewNumberValue(1).Equal(NewStringValue("1")))
	assert.True(t, NewBoolValue(true).Equal(True))
}

func TestValuePairs(t *testing.T) {
	v, err := ParseString(`( (one 1 10) 5 (two 2 20) (3 3 30) (three) )`)
	require.NoError(t, err)

	pairs := v.Pairs()
	require.Len(t, pairs, 2)

	assert.Equal(t, "one", pairs[0].Name)
	assert.Equal(t, 1.0, pairs[0].Value.Float64())

	assert.Equal(t, "two", pairs[1].Name)
	assert.Equal(t, 2.0, pairs[1].Value.Float64())
}

func TestValuePairsNonList(t *testing.T) {
	assert.Nil(t, NewNumberValue(1).Pairs())
}
