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
	"github.com/solbind/soldecl/errors"
)

type TokenType uint8

const (
	TokenError TokenType = iota
	TokenEOF
	TokenSpace
	TokenNumber
	TokenIdentifier
	TokenString
	TokenParenOpen
	TokenParenClose
	TokenBraceOpen
	TokenBraceClose
	TokenBracketOpen
	TokenBracketClose
	TokenComma
	TokenSemicolon
	TokenDot
	TokenAt
)

func (t TokenType) String() string {
	switch t {
	case TokenError:
		return "error"
	case TokenEOF:
		return "EOF"
	case TokenSpace:
		return "space"
	case TokenNumber:
		return "number"
	case TokenIdentifier:
		return "identifier"
	case TokenString:
		return "string"
	case TokenParenOpen:
		return "'('"
	case TokenParenClose:
		return "')'"
	case TokenBraceOpen:
		return "'{'"
	case TokenBraceClose:
		return "'}'"
	case TokenBracketOpen:
		return "'['"
	case TokenBracketClose:
		return "']'"
	case TokenComma:
		return "','"
	case TokenSemicolon:
		return "';'"
	case TokenDot:
		return "'.'"
	case TokenAt:
		return "'@'"
	}

	panic(errors.NewUnreachableError())
}
