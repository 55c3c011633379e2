package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_EmptyLine(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   \t  "))
}

func TestTokenize_SimpleWords(t *testing.T) {
	tokens := Tokenize("echo hello world")
	require.Len(t, tokens, 3)
	assert.Equal(t, Token{Kind: Word, Text: "echo"}, tokens[0])
	assert.Equal(t, Token{Kind: Word, Text: "hello"}, tokens[1])
	assert.Equal(t, Token{Kind: Word, Text: "world"}, tokens[2])
}

func TestTokenize_QuotedStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "double quotes",
			input: `echo "hello world"`,
			expected: []Token{
				{Kind: Word, Text: "echo"},
				{Kind: QuotedString, Text: "hello world"},
			},
		},
		{
			name:  "single quotes",
			input: `echo 'hello world'`,
			expected: []Token{
				{Kind: Word, Text: "echo"},
				{Kind: QuotedString, Text: "hello world"},
			},
		},
		{
			name:  "empty quoted string",
			input: `echo ""`,
			expected: []Token{
				{Kind: Word, Text: "echo"},
				{Kind: QuotedString, Text: ""},
			},
		},
		{
			name:  "escaped quote inside double quotes",
			input: `echo "say \"hi\""`,
			expected: []Token{
				{Kind: Word, Text: "echo"},
				{Kind: QuotedString, Text: `say "hi"`},
			},
		},
		{
			name:  "quote kind does not nest",
			input: `echo "it's fine"`,
			expected: []Token{
				{Kind: Word, Text: "echo"},
				{Kind: QuotedString, Text: "it's fine"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestTokenize_UnterminatedQuoteIsLenient(t *testing.T) {
	tokens := Tokenize(`echo "hello wor`)
	require.Len(t, tokens, 2)
	assert.Equal(t, Token{Kind: QuotedString, Text: "hello wor"}, tokens[1])
}

func TestTokenize_Flags(t *testing.T) {
	tokens := Tokenize("echo hi --loud -v")
	require.Len(t, tokens, 4)
	assert.Equal(t, Token{Kind: Flag, Text: "--loud"}, tokens[2])
	assert.Equal(t, Token{Kind: Flag, Text: "-v"}, tokens[3])
}

func TestTokenize_OptionWithValue(t *testing.T) {
	tokens := Tokenize(`chat --name=cj --greeting="hello there"`)
	require.Len(t, tokens, 3)
	assert.Equal(t, Token{Kind: OptionWithValue, Text: "--name=cj"}, tokens[1])
	assert.Equal(t, Token{Kind: OptionWithValue, Text: "--greeting=hello there"}, tokens[2])
}

func TestTokenize_SpecRoundTrip(t *testing.T) {
	tokens := Tokenize(`echo "hello world" --loud`)
	require.Len(t, tokens, 3)
	assert.Equal(t, Token{Kind: Word, Text: "echo"}, tokens[0])
	assert.Equal(t, Token{Kind: QuotedString, Text: "hello world"}, tokens[1])
	assert.Equal(t, Token{Kind: Flag, Text: "--loud"}, tokens[2])
}

func TestTokenize_NeverPanicsOnArbitraryInput(t *testing.T) {
	inputs := []string{
		"--", "-", "---", "=", "a=b", `"`, `'`, `\`, "--=", "--x=",
		"echo -- --flag= 'open", "   --a=b\t-c   word  ",
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() { Tokenize(input) }, "input %q", input)
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "WORD", Word.String())
	assert.Equal(t, "QUOTED_STRING", QuotedString.String())
	assert.Equal(t, "FLAG", Flag.String())
	assert.Equal(t, "OPTION_WITH_VALUE", OptionWithValue.String())
}
