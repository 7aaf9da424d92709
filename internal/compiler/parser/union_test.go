package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func members(types ...string) []Member {
	out := make([]Member, 0, len(types))
	for _, typ := range types {
		out = append(out, Member{Type: typ})
	}
	return out
}

func TestParseUnion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Member
	}{
		{"single member", "string", members("string")},
		{"two primitives", "boolean | string", members("boolean", "string")},
		{"preserves undefined", "string | undefined", members("string", "undefined")},
		{"preserves duplicates", "number | number", members("number", "number")},
		{"array member", "boolean | string[]", members("boolean", "string[]")},
		{"string literals", `"a" | "b" | "c"`, members(`"a"`, `"b"`, `"c"`)},
		{"literal containing the delimiter", `"a | b" | "c"`, members(`"a | b"`, `"c"`)},
		{
			"object member containing a nested union",
			`{ kind: "x" | "y"; } | number`,
			members(`{ kind: "x" | "y"; }`, "number"),
		},
		{
			"parenthesized union member",
			"(string | number)[] | boolean",
			members("(string | number)[]", "boolean"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUnion(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseUnion_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"dangling delimiter", "string | "},
		{"leading delimiter", " | string"},
		{"empty middle member", "string |  | number"},
		{"unbalanced brackets", "{ foo: string; | number"},
		{"unterminated literal", `"abc | number`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseUnion(tt.input)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestHasTopLevelUnion(t *testing.T) {
	assert.True(t, HasTopLevelUnion("boolean | string"))
	assert.False(t, HasTopLevelUnion("string"))
	assert.False(t, HasTopLevelUnion(`{ a: "x" | "y"; }`))
	assert.False(t, HasTopLevelUnion("(string | number)"))
}
