// Package parser turns a token sequence into a structured invocation.
// It has no knowledge of which options a given command accepts; that
// validation belongs to the command implementation itself.
package parser

import (
	"errors"
	"strings"

	"cmdly/internal/tokenizer"
	"cmdly/pkg/shelltypes"
)

// ErrEmptyInvocation is returned when the token sequence contains no command
// name. The shell loop treats it as a no-op rather than a user-facing error.
var ErrEmptyInvocation = errors.New("empty invocation")

// Parse consumes a token sequence and produces an Invocation.
//
// The first token's text, lower-cased, becomes the command name. Remaining
// WORD and QUOTED_STRING tokens become positional arguments in order. FLAG
// tokens set a boolean option to "true"; OPTION_WITH_VALUE tokens set a named
// option to its string value. When an option occurs more than once, the last
// occurrence wins. A dash token with no option name (a bare "--") is kept
// permissively as a positional argument.
func Parse(tokens []tokenizer.Token, raw string) (*shelltypes.Invocation, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyInvocation
	}

	inv := &shelltypes.Invocation{
		Name:    strings.ToLower(tokens[0].Text),
		Args:    []string{},
		Options: make(map[string]string),
		Raw:     raw,
	}

	for _, tok := range tokens[1:] {
		switch tok.Kind {
		case tokenizer.Word, tokenizer.QuotedString:
			inv.Args = append(inv.Args, tok.Text)
		case tokenizer.Flag:
			name := strings.TrimLeft(tok.Text, "-")
			if name == "" {
				inv.Args = append(inv.Args, tok.Text)
				continue
			}
			inv.Options[name] = "true"
		case tokenizer.OptionWithValue:
			name, value := splitOption(tok.Text)
			if name == "" {
				inv.Args = append(inv.Args, tok.Text)
				continue
			}
			inv.Options[name] = value
		}
	}

	return inv, nil
}

// ParseLine tokenizes and parses a raw input line in one step.
func ParseLine(line string) (*shelltypes.Invocation, error) {
	return Parse(tokenizer.Tokenize(line), line)
}

func splitOption(text string) (string, string) {
	trimmed := strings.TrimLeft(text, "-")
	kv := strings.SplitN(trimmed, "=", 2)
	if len(kv) != 2 {
		return trimmed, ""
	}
	return kv[0], kv[1]
}
