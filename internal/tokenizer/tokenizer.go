// Package tokenizer performs lexical analysis of cmdly input lines.
// It splits a raw line into WORD, QUOTED_STRING, FLAG and OPTION_WITH_VALUE
// tokens, honoring single and double quotes so that quoted substrings become
// single tokens. The tokenizer classifies syntactic shape only; option
// semantics belong to the parser.
package tokenizer

import "strings"

// Kind identifies the lexical class of a token.
type Kind int

// Token kinds produced by Tokenize.
const (
	// Word is a bare word: a command name or positional argument.
	Word Kind = iota
	// QuotedString is a quoted substring with its surrounding quotes removed.
	QuotedString
	// Flag is a dash-prefixed token without a value, e.g. "--loud" or "-v".
	Flag
	// OptionWithValue is a dash-prefixed token carrying "=value",
	// e.g. "--name=cj".
	OptionWithValue
)

// String returns the token kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case Word:
		return "WORD"
	case QuotedString:
		return "QUOTED_STRING"
	case Flag:
		return "FLAG"
	case OptionWithValue:
		return "OPTION_WITH_VALUE"
	default:
		return "UNKNOWN"
	}
}

// Token is a minimal lexical unit: a kind and its literal text.
// For QuotedString the text excludes the surrounding quotes; for
// OptionWithValue any quotes around the value part are removed.
type Token struct {
	Kind Kind
	Text string
}

// Tokenize splits a raw input line into tokens. It never fails: an
// unterminated quote is resolved leniently by treating the remainder of the
// line as part of the open quoted token. Whitespace outside quotes separates
// tokens and is not itself emitted. An empty or whitespace-only line yields
// no tokens.
func Tokenize(line string) []Token {
	var tokens []Token

	i := 0
	n := len(line)
	for i < n {
		c := line[i]

		if c == ' ' || c == '\t' {
			i++
			continue
		}

		if c == '"' || c == '\'' {
			text, next := scanQuoted(line, i)
			tokens = append(tokens, Token{Kind: QuotedString, Text: text})
			i = next
			continue
		}

		if c == '-' {
			text, next := scanBare(line, i)
			i = next
			if strings.Contains(text, "=") {
				tokens = append(tokens, Token{Kind: OptionWithValue, Text: text})
			} else {
				tokens = append(tokens, Token{Kind: Flag, Text: text})
			}
			continue
		}

		text, next := scanBare(line, i)
		tokens = append(tokens, Token{Kind: Word, Text: text})
		i = next
	}

	return tokens
}

// scanQuoted consumes a quoted region starting at the opening quote and
// returns the inner text plus the position after the closing quote. A missing
// closing quote consumes the rest of the line.
func scanQuoted(line string, start int) (string, int) {
	quote := line[start]
	i := start + 1
	var sb strings.Builder
	for i < len(line) {
		c := line[i]
		if c == '\\' && i+1 < len(line) && (line[i+1] == quote || line[i+1] == '\\') {
			sb.WriteByte(line[i+1])
			i += 2
			continue
		}
		if c == quote {
			return sb.String(), i + 1
		}
		sb.WriteByte(c)
		i++
	}
	// Unterminated quote: lenient policy, the remainder is the token.
	return sb.String(), i
}

// scanBare consumes an unquoted run up to the next separator. A quote inside
// the run (as in --name="a b") switches to quoted scanning with the quotes
// dropped, so the whole construct stays one token.
func scanBare(line string, start int) (string, int) {
	i := start
	var sb strings.Builder
	for i < len(line) {
		c := line[i]
		if c == ' ' || c == '\t' {
			break
		}
		if c == '"' || c == '\'' {
			inner, next := scanQuoted(line, i)
			sb.WriteString(inner)
			i = next
			continue
		}
		sb.WriteByte(c)
		i++
	}
	return sb.String(), i
}
