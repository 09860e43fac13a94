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

// Package parser implements a recursive-descent parser
// for the Solbind contract description language.
//
// Parsing is fail-fast: the first grammar violation aborts
// the parse and is returned with its source position;
// no resynchronization across declarations is attempted.
package parser

import (
	"github.com/solbind/soldecl/ast"
	"github.com/solbind/soldecl/parser/lexer"
)

// Config are the parse-time options
type Config struct {
	// DecoratorsEnabled controls whether leading `@` decorators
	// may precede declarations
	DecoratorsEnabled bool
}

var DefaultConfig = Config{
	DecoratorsEnabled: true,
}

type parser struct {
	tokens  []lexer.Token
	current lexer.Token
	cursor  int
	config  Config
}

func newParser(code []byte, config Config) *parser {
	p := &parser{
		tokens: lexer.Lex(string(code)),
		cursor: -1,
		config: config,
	}
	p.next()
	return p
}

// next advances to the next token.
// The cursor never moves past the trailing EOF token.
func (p *parser) next() {
	if p.cursor < len(p.tokens)-1 {
		p.cursor++
	}
	p.current = p.tokens[p.cursor]
}

func (p *parser) skipSpaceAndComments() {
	for p.current.Is(lexer.TokenSpace) {
		p.next()
	}
}

// nextSemanticToken advances and skips any space and comments
func (p *parser) nextSemanticToken() {
	p.next()
	p.skipSpaceAndComments()
}

func (p *parser) syntaxError(message string, params ...any) *SyntaxError {
	return NewSyntaxError(p.current.StartPos, message, params...)
}

func (p *parser) mustOne(tokenType lexer.TokenType) (lexer.Token, error) {
	t := p.current
	if !t.Is(tokenType) {
		return lexer.Token{}, p.syntaxError(
			"expected token %s, got %s",
			tokenType,
			t.Type,
		)
	}
	p.next()
	return t, nil
}

// nonReservedIdentifier requires the current token to be an identifier
// which is not a reserved keyword, and consumes it
func (p *parser) nonReservedIdentifier(errorContext string) (ast.Identifier, error) {
	p.skipSpaceAndComments()

	if !p.current.Is(lexer.TokenIdentifier) {
		return ast.Identifier{}, p.syntaxError(
			"expected identifier %s, got %s",
			errorContext,
			p.current.Type,
		)
	}

	if isKeyword(p.current.Value) {
		return ast.Identifier{}, p.syntaxError(
			"expected identifier %s, got keyword `%s`",
			errorContext,
			p.current.Value,
		)
	}

	identifier := tokenToIdentifier(p.current)
	p.next()
	return identifier, nil
}

func tokenToIdentifier(token lexer.Token) ast.Identifier {
	return ast.NewIdentifier(token.Value, token.StartPos)
}

// ParseFunctionDeclaration parses a single function signature declaration
// and requires the source to contain nothing else
func ParseFunctionDeclaration(code []byte, config Config) (*ast.FunctionDeclaration, error) {
	p := newParser(code, config)

	declaration, err := parseFunctionDeclaration(p)
	if err != nil {
		return nil, Error{Code: code, Errors: []error{err}}
	}

	p.skipSpaceAndComments()
	if !p.current.Is(lexer.TokenEOF) {
		return nil, Error{
			Code: code,
			Errors: []error{
				p.syntaxError("unexpected token: %s", p.current.Type),
			},
		}
	}

	return declaration, nil
}

// ParseProgram parses all declarations in the given source
func ParseProgram(code []byte, config Config) (*ast.Program, error) {
	p := newParser(code, config)

	declarations, err := parseDeclarations(p, lexer.TokenEOF)
	if err != nil {
		return nil, Error{Code: code, Errors: []error{err}}
	}

	return &ast.Program{
		Declarations: declarations,
	}, nil
}
