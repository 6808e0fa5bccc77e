package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode_Scalars(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Value
	}{
		{"null", `null`, Nil{}},
		{"true", `true`, Bool(true)},
		{"false", `false`, Bool(false)},
		{"int", `42`, Int(42)},
		{"negative int", `-7`, Int(-7)},
		{"float", `3.25`, Float(3.25)},
		{"exponent is float", `1e3`, Float(1000)},
		{"string", `"hello"`, String("hello")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode([]byte(tc.in))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDecode_NestedStructure(t *testing.T) {
	in := `{"a": null, "b": [true, 1, 2.5, "x", []], "c": {"inner": false}}`

	got, err := Decode([]byte(in))
	require.NoError(t, err)

	want := AList{
		{Key: "a", Val: Nil{}},
		{Key: "b", Val: List{Bool(true), Int(1), Float(2.5), String("x"), List{}}},
		{Key: "c", Val: AList{{Key: "inner", Val: Bool(false)}}},
	}
	require.Equal(t, want, got)
}

func TestDecode_PreservesKeyOrder(t *testing.T) {
	in := `{"z": 1, "a": 2, "m": 3}`

	got, err := Decode([]byte(in))
	require.NoError(t, err)

	alist, ok := got.(AList)
	require.True(t, ok)
	require.Equal(t, []string{"z", "a", "m"}, []string{alist[0].Key, alist[1].Key, alist[2].Key})
}

func TestDecode_DuplicateKeysKeptInOrder(t *testing.T) {
	got, err := Decode([]byte(`{"k": 1, "k": 2}`))
	require.NoError(t, err)
	require.Equal(t, AList{{Key: "k", Val: Int(1)}, {Key: "k", Val: Int(2)}}, got)
}

func TestDecode_Errors(t *testing.T) {
	for _, in := range []string{``, `undefined`, `{"a":}`, `1 2`} {
		_, err := Decode([]byte(in))
		require.Error(t, err, "input %q", in)
	}
}

func TestDecode_HugeIntegerDegradesToFloat(t *testing.T) {
	got, err := Decode([]byte(`92233720368547758080`))
	require.NoError(t, err)
	require.IsType(t, Float(0), got)
}

func TestAList_GetSearchesLinearly(t *testing.T) {
	a := AList{{Key: "k", Val: Int(1)}, {Key: "k", Val: Int(2)}}

	v, ok := a.Get("k")
	require.True(t, ok)
	require.Equal(t, Int(1), v)

	_, ok = a.Get("missing")
	require.False(t, ok)
}

func TestFormat(t *testing.T) {
	v := AList{
		{Key: "n", Val: Nil{}},
		{Key: "l", Val: List{Bool(true), Int(3), String("s")}},
	}
	require.Equal(t, `(("n" . nil) ("l" . [t 3 "s"]))`, v.Format())
}
