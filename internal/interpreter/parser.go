package interpreter

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Command is one parsed line: the action keyword followed by its arguments.
type Command struct {
	Action string   `parser:"@Word"`
	Args   []string `parser:"@Word*"`
}

// Whitespace is the unicode.IsSpace set, so splitting agrees with
// strings.TrimSpace. The two rules together match every rune.
var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[^\s\v\x{85}\p{Z}]+`},
	{Name: "Whitespace", Pattern: `[\s\v\x{85}\p{Z}]+`},
})

var parser = participle.MustBuild[Command](
	participle.Lexer(lineLexer),
	participle.Elide("Whitespace"),
)

// Parse splits a line into action and arguments. Neither is validated here.
func Parse(line string) (*Command, error) {
	if strings.TrimSpace(line) == "" {
		return nil, syntaxErr("Empty command.")
	}
	cmd, err := parser.ParseString("command", line)
	if err != nil {
		// unreachable while the lexer is total
		return nil, syntaxErr("Malformed command.")
	}
	return cmd, nil
}
