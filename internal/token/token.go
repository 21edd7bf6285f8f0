package token

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	LPAREN = "LPAREN" // (
	RPAREN = "RPAREN" // )
	QUOTE  = "QUOTE"  // '

	SYMBOL  = "SYMBOL"  // +, define, my-var
	INTEGER = "INTEGER" // 42, -7
	BOOLEAN = "BOOLEAN" // #t, #f
	STRING  = "STRING"  // "hello"
)

type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}
