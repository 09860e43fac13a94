/*
 * Soldecl - Parser for the Solbind contract description language
 *
 * Copyright Solbind Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lexer

import (
	"strings"

	"github.com/solbind/soldecl/ast"
)

type lexer struct {
	input  string
	tokens []Token
	// offset is the byte offset of the next unconsumed byte
	offset int
	line   int
	column int
	// lastPos is the position of the most recently consumed byte
	lastPos ast.Position
}

// Lex scans the given source into a token slice.
// Whitespace and comments are emitted as space tokens,
// invalid input as error tokens;
// the slice always ends with an EOF token.
func Lex(input string) []Token {
	l := &lexer{
		input: input,
		line:  1,
	}
	l.run()
	return l.tokens
}

func (l *lexer) pos() ast.Position {
	return ast.Position{
		Offset: l.offset,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *lexer) done() bool {
	return l.offset >= len(l.input)
}

func (l *lexer) peek() byte {
	if l.done() {
		return 0
	}
	return l.input[l.offset]
}

func (l *lexer) peekNext() byte {
	if l.offset+1 >= len(l.input) {
		return 0
	}
	return l.input[l.offset+1]
}

func (l *lexer) advance() {
	l.lastPos = l.pos()
	if l.input[l.offset] == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	l.offset++
}

func (l *lexer) emit(tokenType TokenType, value string, startPos ast.Position) {
	l.tokens = append(
		l.tokens,
		Token{
			Type:  tokenType,
			Value: value,
			Range: ast.Range{
				StartPos: startPos,
				EndPos:   l.lastPos,
			},
		},
	)
}

func (l *lexer) run() {
	for !l.done() {
		startPos := l.pos()
		startOffset := l.offset

		c := l.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			for !l.done() && isSpace(l.peek()) {
				l.advance()
			}
			l.emit(TokenSpace, "", startPos)

		case c == '/' && l.peekNext() == '/':
			for !l.done() && l.peek() != '\n' {
				l.advance()
			}
			l.emit(TokenSpace, "", startPos)

		case c == '/' && l.peekNext() == '*':
			l.scanBlockComment(startPos)

		case isIdentifierStart(c):
			for !l.done() && isIdentifierPart(l.peek()) {
				l.advance()
			}
			l.emit(TokenIdentifier, l.input[startOffset:l.offset], startPos)

		case isDigit(c):
			for !l.done() && isDigit(l.peek()) {
				l.advance()
			}
			l.emit(TokenNumber, l.input[startOffset:l.offset], startPos)

		case c == '"':
			l.scanString(startPos)

		default:
			l.advance()

			var tokenType TokenType
			switch c {
			case '(':
				tokenType = TokenParenOpen
			case ')':
				tokenType = TokenParenClose
			case '{':
				tokenType = TokenBraceOpen
			case '}':
				tokenType = TokenBraceClose
			case '[':
				tokenType = TokenBracketOpen
			case ']':
				tokenType = TokenBracketClose
			case ',':
				tokenType = TokenComma
			case ';':
				tokenType = TokenSemicolon
			case '.':
				tokenType = TokenDot
			case '@':
				tokenType = TokenAt
			default:
				l.emit(TokenError, string(c), startPos)
				continue
			}

			l.emit(tokenType, "", startPos)
		}
	}

	endPos := l.pos()
	l.tokens = append(
		l.tokens,
		Token{
			Type: TokenEOF,
			Range: ast.Range{
				StartPos: endPos,
				EndPos:   endPos,
			},
		},
	)
}

// scanBlockComment consumes a `/* ... */` comment, supporting nesting,
// and emits it as a space token. An unterminated comment is an error token.
func (l *lexer) scanBlockComment(startPos ast.Position) {
	// Skip the `/*`
	l.advance()
	l.advance()

	depth := 1
	for depth > 0 {
		if l.done() {
			l.emit(TokenError, "unterminated block comment", startPos)
			return
		}
		switch {
		case l.peek() == '*' && l.peekNext() == '/':
			l.advance()
			l.advance()
			depth--
		case l.peek() == '/' && l.peekNext() == '*':
			l.advance()
			l.advance()
			depth++
		default:
			l.advance()
		}
	}

	l.emit(TokenSpace, "", startPos)
}

// scanString consumes a double-quoted string literal.
// Only the escapes `\"`, `\\`, `\n`, and `\t` are recognized.
func (l *lexer) scanString(startPos ast.Position) {
	// Skip the opening quote
	l.advance()

	var sb strings.Builder
	for {
		if l.done() || l.peek() == '\n' {
			l.emit(TokenError, "unterminated string literal", startPos)
			return
		}

		c := l.peek()
		switch c {
		case '"':
			l.advance()
			l.emit(TokenString, sb.String(), startPos)
			return

		case '\\':
			l.advance()
			if l.done() {
				l.emit(TokenError, "unterminated string literal", startPos)
				return
			}
			switch l.peek() {
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				l.emit(TokenError, "invalid escape sequence", startPos)
				return
			}
			l.advance()

		default:
			sb.WriteByte(c)
			l.advance()
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentifierStart(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c == '_' || c == '$'
}

func isIdentifierPart(c byte) bool {
	return isIdentifierStart(c) || isDigit(c)
}
