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
	"github.com/solbind/soldecl/ast"
	"github.com/solbind/soldecl/errors"
	"github.com/solbind/soldecl/parser/lexer"
)

// parseFunctionDeclaration parses a function signature declaration.
//
//	functionDeclaration :
//	    decorator*
//	    'function' identifier parameterList
//	    modifierSet
//	    ( 'returns' '(' returnsList ')' )?
//	    ';'
//
// The declaration form has no body. A `{` may syntactically appear
// either where the modifier set is expected or where the terminator
// is expected (when modifiers and returns are omitted); both positions
// are checked so the diagnostic points at the offending brace.
func parseFunctionDeclaration(p *parser) (*ast.FunctionDeclaration, error) {

	decorators, err := parseDecorators(p)
	if err != nil {
		return nil, err
	}

	p.skipSpaceAndComments()
	if !p.current.Is(lexer.TokenIdentifier) ||
		p.current.Value != KeywordFunction {

		return nil, p.syntaxError(
			"expected `%s` keyword, got %s",
			KeywordFunction,
			p.current.Type,
		)
	}

	// Skip the `function` keyword
	p.next()

	identifier, err := p.nonReservedIdentifier("after start of function declaration")
	if err != nil {
		return nil, err
	}

	parameterList, err := parseParameterList(p)
	if err != nil {
		return nil, err
	}

	if err := rejectDeclarationBody(p); err != nil {
		return nil, err
	}

	modifiers, err := parseModifierSet(p)
	if err != nil {
		return nil, err
	}

	var returns *ast.ReturnsClause

	p.skipSpaceAndComments()
	if p.current.Is(lexer.TokenIdentifier) &&
		p.current.Value == KeywordReturns {

		returns, err = parseReturnsClause(p)
		if err != nil {
			return nil, err
		}
	}

	if err := rejectDeclarationBody(p); err != nil {
		return nil, err
	}

	semicolon, err := p.mustOne(lexer.TokenSemicolon)
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDeclaration{
		Decorators:    decorators,
		Identifier:    identifier,
		ParameterList: parameterList,
		Modifiers:     modifiers,
		Returns:       returns,
		SemicolonPos:  semicolon.StartPos,
	}, nil
}

// rejectDeclarationBody fails if the next token opens a body block
func rejectDeclarationBody(p *parser) error {
	p.skipSpaceAndComments()
	if p.current.Is(lexer.TokenBraceOpen) {
		return &DeclarationBodyError{
			Pos: p.current.StartPos,
		}
	}
	return nil
}

// parseParameterList parses a parenthesized, comma-delimited,
// possibly empty parameter list. A trailing comma is permitted.
func parseParameterList(p *parser) (*ast.ParameterList, error) {
	p.skipSpaceAndComments()

	if !p.current.Is(lexer.TokenParenOpen) {
		return nil, p.syntaxError(
			"expected %s as start of parameter list, got %s",
			lexer.TokenParenOpen,
			p.current.Type,
		)
	}

	startPos := p.current.StartPos

	// Skip the `(`
	p.next()

	parameters, trailingSeparator, endPos, err := parseParameters(p)
	if err != nil {
		return nil, err
	}

	return &ast.ParameterList{
		Parameters:        parameters,
		TrailingSeparator: trailingSeparator,
		Range: ast.Range{
			StartPos: startPos,
			EndPos:   endPos,
		},
	}, nil
}

// parseParameters parses the comma-delimited parameters
// up to and including the closing paren.
// The opening paren must already be consumed.
func parseParameters(p *parser) (
	parameters []*ast.Parameter,
	trailingSeparator bool,
	endPos ast.Position,
	err error,
) {
	expectParameter := true

	for {
		p.skipSpaceAndComments()

		switch p.current.Type {
		case lexer.TokenParenClose:
			trailingSeparator = expectParameter && len(parameters) > 0
			endPos = p.current.EndPos
			p.next()
			return parameters, trailingSeparator, endPos, nil

		case lexer.TokenComma:
			if expectParameter {
				return nil, false, ast.EmptyPosition, p.syntaxError(
					"expected parameter or end of parameter list, got %s",
					p.current.Type,
				)
			}
			p.next()
			expectParameter = true

		case lexer.TokenEOF:
			return nil, false, ast.EmptyPosition, p.syntaxError(
				"missing %s at end of parameter list",
				lexer.TokenParenClose,
			)

		default:
			if !expectParameter {
				return nil, false, ast.EmptyPosition, p.syntaxError(
					"expected comma or end of parameter list, got %s",
					p.current.Type,
				)
			}

			var parameter *ast.Parameter
			parameter, err = parseParameter(p)
			if err != nil {
				return nil, false, ast.EmptyPosition, err
			}

			parameters = append(parameters, parameter)
			expectParameter = false
		}
	}
}

// parseParameter parses a single parameter:
// a type, an optional data location, and an optional name
func parseParameter(p *parser) (*ast.Parameter, error) {
	p.skipSpaceAndComments()

	startPos := p.current.StartPos

	ty, err := parseType(p)
	if err != nil {
		return nil, err
	}

	endPos := ty.EndPosition()

	location := ast.DataLocationUnspecified

	p.skipSpaceAndComments()
	if p.current.Is(lexer.TokenIdentifier) {
		if parsedLocation, ok := dataLocation(p.current.Value); ok {
			location = parsedLocation
			endPos = p.current.EndPos
			p.nextSemanticToken()
		}
	}

	var identifier *ast.Identifier
	if p.current.Is(lexer.TokenIdentifier) {
		if isKeyword(p.current.Value) {
			return nil, p.syntaxError(
				"invalid use of keyword `%s` as parameter name",
				p.current.Value,
			)
		}

		name := tokenToIdentifier(p.current)
		identifier = &name
		endPos = p.current.EndPos
		p.next()
	}

	return &ast.Parameter{
		Type:       ty,
		Location:   location,
		Identifier: identifier,
		Range: ast.Range{
			StartPos: startPos,
			EndPos:   endPos,
		},
	}, nil
}

// parseModifierSet parses the modifier set of a declaration.
//
//	modifierSet :
//	    ( visibility | mutability | 'virtual' | override | modifierInvocation )*
//
// At most one visibility, one mutability, one `virtual`,
// and one `override` are permitted.
func parseModifierSet(p *parser) (*ast.FunctionModifiers, error) {
	modifiers := &ast.FunctionModifiers{}

	for {
		p.skipSpaceAndComments()

		if !p.current.Is(lexer.TokenIdentifier) {
			return modifiers, nil
		}

		keyword := p.current.Value
		pos := p.current.StartPos

		switch keyword {
		case KeywordExternal, KeywordPublic, KeywordInternal, KeywordPrivate:
			if modifiers.Visibility != ast.VisibilityNotSpecified {
				return nil, &DuplicateVisibilityModifierError{
					Keyword: keyword,
					Pos:     pos,
				}
			}
			modifiers.Visibility = visibilityModifier(keyword)
			modifiers.VisibilityPos = &pos
			p.next()

		case KeywordPure, KeywordView, KeywordPayable:
			if modifiers.Mutability != ast.MutabilityNotSpecified {
				return nil, &DuplicateMutabilityModifierError{
					Keyword: keyword,
					Pos:     pos,
				}
			}
			modifiers.Mutability = mutabilityModifier(keyword)
			modifiers.MutabilityPos = &pos
			p.next()

		case KeywordVirtual:
			if modifiers.Virtual {
				return nil, &DuplicateModifierError{
					Keyword: KeywordVirtual,
					Pos:     pos,
				}
			}
			modifiers.Virtual = true
			modifiers.VirtualPos = &pos
			p.next()

		case KeywordOverride:
			if modifiers.Override != nil {
				return nil, &DuplicateModifierError{
					Keyword: KeywordOverride,
					Pos:     pos,
				}
			}
			specifier, err := parseOverrideSpecifier(p)
			if err != nil {
				return nil, err
			}
			modifiers.Override = specifier

		case KeywordReturns:
			// Start of the returns clause, not a modifier
			return modifiers, nil

		default:
			invocation, err := parseModifierInvocation(p)
			if err != nil {
				return nil, err
			}
			modifiers.Invocations = append(modifiers.Invocations, invocation)
		}
	}
}

func visibilityModifier(keyword string) ast.Visibility {
	switch keyword {
	case KeywordExternal:
		return ast.VisibilityExternal
	case KeywordPublic:
		return ast.VisibilityPublic
	case KeywordInternal:
		return ast.VisibilityInternal
	case KeywordPrivate:
		return ast.VisibilityPrivate
	default:
		panic(errors.NewUnexpectedError("unexpected visibility keyword: %s", keyword))
	}
}

func mutabilityModifier(keyword string) ast.Mutability {
	switch keyword {
	case KeywordPure:
		return ast.MutabilityPure
	case KeywordView:
		return ast.MutabilityView
	case KeywordPayable:
		return ast.MutabilityPayable
	default:
		panic(errors.NewUnexpectedError("unexpected mutability keyword: %s", keyword))
	}
}

// parseOverrideSpecifier parses an `override` modifier,
// optionally followed by a parenthesized list of base names.
// The `override` keyword must be the current token.
func parseOverrideSpecifier(p *parser) (*ast.OverrideSpecifier, error) {
	startPos := p.current.StartPos
	endPos := p.current.EndPos

	// Skip the `override` keyword
	p.next()

	var overrides []*ast.NominalType

	p.skipSpaceAndComments()
	if p.current.Is(lexer.TokenParenOpen) {
		overrides = []*ast.NominalType{}

		// Skip the `(`
		p.next()

		expectBase := true

		for {
			p.skipSpaceAndComments()

			switch p.current.Type {
			case lexer.TokenParenClose:
				endPos = p.current.EndPos
				p.next()
				return &ast.OverrideSpecifier{
					Overrides: overrides,
					Range: ast.Range{
						StartPos: startPos,
						EndPos:   endPos,
					},
				}, nil

			case lexer.TokenComma:
				if expectBase {
					return nil, p.syntaxError(
						"expected base name or end of override list, got %s",
						p.current.Type,
					)
				}
				p.next()
				expectBase = true

			case lexer.TokenEOF:
				return nil, p.syntaxError(
					"missing %s at end of override list",
					lexer.TokenParenClose,
				)

			default:
				if !expectBase {
					return nil, p.syntaxError(
						"expected comma or end of override list, got %s",
						p.current.Type,
					)
				}

				base, err := parseNominalType(p)
				if err != nil {
					return nil, err
				}

				overrides = append(overrides, base)
				expectBase = false
			}
		}
	}

	return &ast.OverrideSpecifier{
		Overrides: overrides,
		Range: ast.Range{
			StartPos: startPos,
			EndPos:   endPos,
		},
	}, nil
}

// parseModifierInvocation parses a named modifier invocation:
// an identifier with an optional parenthesized argument list
func parseModifierInvocation(p *parser) (*ast.ModifierInvocation, error) {
	identifier, err := p.nonReservedIdentifier("as modifier name")
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

	return &ast.ModifierInvocation{
		Identifier: identifier,
		Arguments:  arguments,
		EndPos:     endPos,
	}, nil
}

// parseReturnsClause parses the `returns` keyword and its
// parenthesized return value list.
// The `returns` keyword must be the current token.
func parseReturnsClause(p *parser) (*ast.ReturnsClause, error) {
	startPos := p.current.StartPos

	// Skip the `returns` keyword
	p.nextSemanticToken()

	if !p.current.Is(lexer.TokenParenOpen) {
		return nil, p.syntaxError(
			"expected %s after `%s`, got %s",
			lexer.TokenParenOpen,
			KeywordReturns,
			p.current.Type,
		)
	}

	// Skip the `(`
	p.next()

	entries, _, endPos, err := parseParameters(p)
	if err != nil {
		return nil, err
	}

	return &ast.ReturnsClause{
		Entries: entries,
		Range: ast.Range{
			StartPos: startPos,
			EndPos:   endPos,
		},
	}, nil
}
