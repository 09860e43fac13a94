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

package parser

import (
	"math/big"

	"github.com/solbind/soldecl/ast"
	"github.com/solbind/soldecl/parser/lexer"
)

func parseDeclarations(p *parser, endTokenType lexer.TokenType) ([]ast.Declaration, error) {
	var declarations []ast.Declaration

	for {
		p.skipSpaceAndComments()

		switch p.current.Type {
		case lexer.TokenSemicolon:
			// Skip stray semicolons
			p.next()
			continue

		case endTokenType, lexer.TokenEOF:
			return declarations, nil

		default:
			declaration, err := parseDeclaration(p)
			if err != nil {
				return nil, err
			}

			if declaration == nil {
				return nil, p.syntaxError("unexpected token: %s", p.current.Type)
			}

			declarations = append(declarations, declaration)
		}
	}
}

// parseDeclaration parses a single declaration.
// It returns nil without an error if the current token
// does not start any known declaration form.
func parseDeclaration(p *parser) (ast.Declaration, error) {
	p.skipSpaceAndComments()

	switch p.current.Type {
	case lexer.TokenAt:
		return parseFunctionDeclaration(p)

	case lexer.TokenIdentifier:
		if p.current.Value == KeywordFunction {
			return parseFunctionDeclaration(p)
		}

	case lexer.TokenError:
		return nil, p.syntaxError("%s", p.current.Value)
	}

	return nil, nil
}

// parseDecorators parses zero or more leading decorators.
//
//	decorator : '@' identifier ( '(' ( expression ( ',' expression )* ','? )? ')' )?
func parseDecorators(p *parser) ([]*ast.Decorator, error) {
	var decorators []*ast.Decorator

	for {
		p.skipSpaceAndComments()
		if !p.current.Is(lexer.TokenAt) {
			return decorators, nil
		}

		if !p.config.DecoratorsEnabled {
			return nil, p.syntaxError("decorators are not enabled")
		}

		decorator, err := parseDecorator(p)
		if err != nil {
			return nil, err
		}

		decorators = append(decorators, decorator)
	}
}

func parseDecorator(p *parser) (*ast.Decorator, error) {
	startPos := p.current.StartPos

	// Skip the `@`
	p.next()

	identifier, err := p.nonReservedIdentifier("after '@'")
	if err != nil {
		return nil, err
	}

	endPos := identifier.EndPosition()

	var arguments []ast.Expression

	p.skipSpaceAndComments()
	if p.current.Is(lexer.TokenParenOpen) {
		arguments, endPos, err = parseInvocationArguments(p)
		if err != nil {
			return nil, err
		}
	}

	return &ast.Decorator{
		Identifier: identifier,
		Arguments:  arguments,
		StartPos:   startPos,
		EndPos:     endPos,
	}, nil
}

// parseInvocationArguments parses a parenthesized, comma-delimited,
// possibly empty list of primitive expressions.
// The opening paren must be the current token.
func parseInvocationArguments(p *parser) ([]ast.Expression, ast.Position, error) {
	arguments := []ast.Expression{}

	// Skip the `(`
	p.next()

	expectArgument := true

	for {
		p.skipSpaceAndComments()

		switch p.current.Type {
		case lexer.TokenParenClose:
			endPos := p.current.EndPos
			p.next()
			return arguments, endPos, nil

		case lexer.TokenComma:
			if expectArgument {
				return nil, ast.EmptyPosition, p.syntaxError(
					"expected argument or end of argument list, got %s",
					p.current.Type,
				)
			}
			p.next()
			expectArgument = true

		case lexer.TokenEOF:
			return nil, ast.EmptyPosition, p.syntaxError(
				"missing %s at end of argument list",
				lexer.TokenParenClose,
			)

		default:
			if !expectArgument {
				return nil, ast.EmptyPosition, p.syntaxError(
					"expected comma or end of argument list, got %s",
					p.current.Type,
				)
			}

			argument, err := parseExpression(p)
			if err != nil {
				return nil, ast.EmptyPosition, err
			}

			arguments = append(arguments, argument)
			expectArgument = false
		}
	}
}

// parseExpression parses the primitive expression forms
// allowed as decorator and modifier invocation arguments
func parseExpression(p *parser) (ast.Expression, error) {
	switch p.current.Type {
	case lexer.TokenIdentifier:
		token := p.current
		p.next()
		return &ast.IdentifierExpression{
			Identifier: tokenToIdentifier(token),
		}, nil

	case lexer.TokenNumber:
		value, ok := new(big.Int).SetString(p.current.Value, 10)
		if !ok {
			return nil, p.syntaxError("invalid integer literal `%s`", p.current.Value)
		}
		expression := &ast.IntegerExpression{
			Value: value,
			Range: p.current.Range,
		}
		p.next()
		return expression, nil

	case lexer.TokenString:
		expression := &ast.StringExpression{
			Value: p.current.Value,
			Range: p.current.Range,
		}
		p.next()
		return expression, nil

	default:
		return nil, p.syntaxError("expected expression, got %s", p.current.Type)
	}
}
