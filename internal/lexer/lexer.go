package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/morsel-lang/morsel/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	switch l.ch {
	case 0:
		return l.newToken(token.EOF, "")
	case '(':
		tok := l.newToken(token.LPAREN, "(")
		l.readChar()
		return tok
	case ')':
		tok := l.newToken(token.RPAREN, ")")
		l.readChar()
		return tok
	case '\'':
		tok := l.newToken(token.QUOTE, "'")
		l.readChar()
		return tok
	case '"':
		return l.readString()
	}

	if l.ch == '#' && (l.peekChar() == 't' || l.peekChar() == 'f') {
		return l.readBoolean()
	}

	if unicode.IsDigit(l.ch) || (l.ch == '-' && unicode.IsDigit(l.peekChar())) {
		return l.readNumber()
	}

	return l.readSymbol()
}

func (l *Lexer) newToken(t token.TokenType, lexeme string) token.Token {
	return token.Token{Type: t, Lexeme: lexeme, Line: l.line, Column: l.column}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}
		if l.ch != ';' {
			return
		}
		for l.ch != '\n' && l.ch != 0 {
			l.readChar()
		}
	}
}

// atDelimiter reports whether the current char terminates an atom.
func (l *Lexer) atDelimiter() bool {
	switch l.ch {
	case 0, ' ', '\t', '\n', '\r', '(', ')', '"', ';':
		return true
	}
	return false
}

func (l *Lexer) readBoolean() token.Token {
	tok := l.newToken(token.BOOLEAN, "")
	start := l.position
	l.readChar() // #
	l.readChar() // t or f
	tok.Lexeme = l.input[start:l.position]
	if !l.atDelimiter() {
		// something like #true: not a boolean we recognize
		rest := l.readSymbolLexeme()
		tok.Type = token.ILLEGAL
		tok.Lexeme += rest
	}
	return tok
}

func (l *Lexer) readNumber() token.Token {
	tok := l.newToken(token.INTEGER, "")
	start := l.position
	if l.ch == '-' {
		l.readChar()
	}
	for unicode.IsDigit(l.ch) {
		l.readChar()
	}
	tok.Lexeme = l.input[start:l.position]
	if !l.atDelimiter() {
		// 12abc reads as a single symbol, not a malformed number
		tok.Type = token.SYMBOL
		tok.Lexeme += l.readSymbolLexeme()
	}
	return tok
}

func (l *Lexer) readSymbol() token.Token {
	tok := l.newToken(token.SYMBOL, "")
	tok.Lexeme = l.readSymbolLexeme()
	if tok.Lexeme == "" {
		tok.Type = token.ILLEGAL
		tok.Lexeme = string(l.ch)
		l.readChar()
	}
	return tok
}

func (l *Lexer) readSymbolLexeme() string {
	start := l.position
	for !l.atDelimiter() && l.ch != '\'' {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readString() token.Token {
	tok := l.newToken(token.STRING, "")
	l.readChar() // consume opening quote
	var out []rune
	for l.ch != '"' {
		if l.ch == 0 {
			tok.Type = token.ILLEGAL
			tok.Lexeme = string(out)
			return tok
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case '\\':
				out = append(out, '\\')
			case '"':
				out = append(out, '"')
			default:
				out = append(out, '\\', l.ch)
			}
			l.readChar()
			continue
		}
		out = append(out, l.ch)
		l.readChar()
	}
	l.readChar() // consume closing quote
	tok.Lexeme = string(out)
	return tok
}
