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

// parseType parses a type annotation.
//
//	type :
//	    ( nominalType | tupleType )
//	    ( '[' number? ']' )*
func parseType(p *parser) (ast.Type, error) {
	p.skipSpaceAndComments()

	var ty ast.Type
	var err error

	switch p.current.Type {
	case lexer.TokenIdentifier:
		ty, err = parseNominalType(p)

	case lexer.TokenParenOpen:
		ty, err = parseTupleType(p)

	default:
		return nil, p.syntaxError("expected type, got %s", p.current.Type)
	}

	if err != nil {
		return nil, err
	}

	return parseArrayPostfixes(p, ty)
}

// parseNominalType parses a possibly dotted type name.
// The first identifier must be the current token.
func parseNominalType(p *parser) (*ast.NominalType, error) {
	if isKeyword(p.current.Value) {
		return nil, p.syntaxError(
			"invalid use of keyword `%s` as type",
			p.current.Value,
		)
	}

	identifier := tokenToIdentifier(p.current)
	p.next()

	var nestedIdentifiers []ast.Identifier

	for p.current.Is(lexer.TokenDot) {
		// Skip the `.`
		p.next()

		if !p.current.Is(lexer.TokenIdentifier) {
			return nil, p.syntaxError(
				"expected identifier after %s, got %s",
				lexer.TokenDot,
				p.current.Type,
			)
		}

		if isKeyword(p.current.Value) {
			return nil, p.syntaxError(
				"invalid use of keyword `%s` as type",
				p.current.Value,
			)
		}

		nestedIdentifiers = append(
			nestedIdentifiers,
			tokenToIdentifier(p.current),
		)
		p.next()
	}

	return &ast.NominalType{
		Identifier:        identifier,
		NestedIdentifiers: nestedIdentifiers,
	}, nil
}

// parseArrayPostfixes wraps the given type in array types,
// one per bracket pair following it
func parseArrayPostfixes(p *parser, ty ast.Type) (ast.Type, error) {
	for {
		p.skipSpaceAndComments()
		if !p.current.Is(lexer.TokenBracketOpen) {
			return ty, nil
		}

		startPos := ty.StartPosition()

		// Skip the `[`
		p.nextSemanticToken()

		var size *ast.IntegerExpression

		if p.current.Is(lexer.TokenNumber) {
			value, ok := new(big.Int).SetString(p.current.Value, 10)
			if !ok {
				return nil, p.syntaxError(
					"invalid integer literal `%s`",
					p.current.Value,
				)
			}
			size = &ast.IntegerExpression{
				Value: value,
				Range: p.current.Range,
			}
			p.nextSemanticToken()
		}

		if !p.current.Is(lexer.TokenBracketClose) {
			return nil, p.syntaxError(
				"expected %s at end of array type, got %s",
				lexer.TokenBracketClose,
				p.current.Type,
			)
		}

		endPos := p.current.EndPos
		p.next()

		if size != nil {
			ty = &ast.ConstantSizedType{
				Type: ty,
				Size: size,
				Range: ast.Range{
					StartPos: startPos,
					EndPos:   endPos,
				},
			}
		} else {
			ty = &ast.VariableSizedType{
				Type: ty,
				Range: ast.Range{
					StartPos: startPos,
					EndPos:   endPos,
				},
			}
		}
	}
}

// parseTupleType parses a parenthesized, comma-delimited type list.
// A trailing comma is recorded, which distinguishes
// the one-element tuple `(T,)` from the parenthesized type `(T)`.
// The opening paren must be the current token.
func parseTupleType(p *parser) (*ast.TupleType, error) {
	startPos := p.current.StartPos

	// Skip the `(`
	p.next()

	var types []ast.Type
	expectType := true

	for {
		p.skipSpaceAndComments()

		switch p.current.Type {
		case lexer.TokenParenClose:
			trailingSeparator := expectType && len(types) > 0
			endPos := p.current.EndPos
			p.next()
			return &ast.TupleType{
				Types:             types,
				TrailingSeparator: trailingSeparator,
				Range: ast.Range{
					StartPos: startPos,
					EndPos:   endPos,
				},
			}, nil

		case lexer.TokenComma:
			if expectType {
				return nil, p.syntaxError(
					"expected type or end of type list, got %s",
					p.current.Type,
				)
			}
			p.next()
			expectType = true

		case lexer.TokenEOF:
			return nil, p.syntaxError(
				"missing %s at end of type list",
				lexer.TokenParenClose,
			)

		default:
			if !expectType {
				return nil, p.syntaxError(
					"expected comma or end of type list, got %s",
					p.current.Type,
				)
			}

			ty, err := parseType(p)
			if err != nil {
				return nil, err
			}

			types = append(types, ty)
			expectType = false
		}
	}
}
