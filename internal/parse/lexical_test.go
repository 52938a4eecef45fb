package parse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJunk(t *testing.T) {
	tests := []struct {
		in   string
		rest string
	}{
		{"", ""},
		{"   \t\r\n", ""},
		{"-- comment", ""},
		{"-- comment\nx", "x"},
		{"/* c */x", "x"},
		{"/* a /* b */x", "x"}, //no nesting
		{" -- c\n /* d */ x", "x"},
		{"y -- z", "y -- z"},
		//-- with nothing before the newline is not a comment
		{"--\nx", "--\nx"},
	}
	for _, test := range tests {
		rest, err := junk(input{src: test.in})
		require.Nil(t, err, "junk(%q)", test.in)
		require.Equal(t, test.rest, rest.rest(), "junk(%q)", test.in)
	}

	_, err := junk(input{src: " /* unterminated"})
	require.NotNil(t, err)
	require.Equal(t, 1, err.off)
	require.Equal(t, "unterminated /* */ comment", err.msg)
}

func TestVar(t *testing.T) {
	tests := []struct {
		in   string
		name string
		rest string
	}{
		{"x", "x", ""},
		{"_a1b rest", "_a1b", " rest"},
		{"CamelCase99", "CamelCase99", ""},
		//no reserved words at the lexical level
		{"true", "true", ""},
		{"x-y", "x", "-y"},
	}
	for _, test := range tests {
		v, rest, err := parseVar(input{src: test.in})
		require.Nil(t, err, "parseVar(%q)", test.in)
		require.Equal(t, test.name, v.Name)
		require.Equal(t, test.rest, rest.rest())
	}

	for _, in := range []string{"", "1x", "Σx", "-a", "'s'"} {
		_, _, err := parseVar(input{src: in})
		require.NotNil(t, err, "parseVar(%q)", in)
	}
}

func TestBool(t *testing.T) {
	b, rest, err := parseBool(input{src: "true"})
	require.Nil(t, err)
	require.True(t, b.Value)
	require.True(t, rest.eof())

	b, rest, err = parseBool(input{src: "falsehood"})
	require.Nil(t, err)
	require.False(t, b.Value)
	require.Equal(t, "hood", rest.rest()) //prefix match, see parseBool

	for _, in := range []string{"", "t", "True", "FALSE"} {
		_, _, err := parseBool(input{src: in})
		require.NotNil(t, err, "parseBool(%q)", in)
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		rest string
	}{
		{"0", 0, ""},
		{"42", 42, ""},
		{"-42", -42, ""},
		{"-0", 0, ""},
		{"007", 7, ""},
		{"123abc", 123, "abc"},
		{"-42hello", -42, "hello"},
		{"9223372036854775807", 9223372036854775807, ""},
		{"-9223372036854775808", -9223372036854775808, ""},
	}
	for _, test := range tests {
		i, rest, err := parseInt(input{src: test.in})
		require.Nil(t, err, "parseInt(%q)", test.in)
		require.Equal(t, test.want, i.Value)
		require.Equal(t, test.rest, rest.rest())
	}

	invalid := []string{"", "-", "--1", "abc", "9223372036854775808", "-9223372036854775809"}
	for _, in := range invalid {
		_, _, err := parseInt(input{src: in})
		require.NotNil(t, err, "parseInt(%q)", in)
	}
}

func TestStr(t *testing.T) {
	tests := []struct {
		in    string
		value string
		rest  string
	}{
		{"''", "", ""},
		{"'hello'", "hello", ""},
		{"'a b'c", "a b", "c"},
		{"'hello'world", "hello", "world"},
		{"'日本'", "日本", ""}, //bytes pass through verbatim
		{"'-- not a comment'", "-- not a comment", ""},
	}
	for _, test := range tests {
		s, rest, err := parseStr(input{src: test.in})
		require.Nil(t, err, "parseStr(%q)", test.in)
		require.Equal(t, test.value, s.Value)
		require.Equal(t, test.rest, rest.rest())
	}

	for _, in := range []string{"", "'", "'abc", "x'y'"} {
		_, _, err := parseStr(input{src: in})
		require.NotNil(t, err, "parseStr(%q)", in)
	}
}
