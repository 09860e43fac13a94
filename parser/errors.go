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
	"fmt"
	"strings"

	"github.com/solbind/soldecl/ast"
	"github.com/solbind/soldecl/errors"
	"github.com/solbind/soldecl/pretty"
)

// Error

// Error is the error returned by the parse entry points.
// It carries the parsed code so the error message
// can include a source excerpt.
type Error struct {
	Code   []byte
	Errors []error
}

func (e Error) Error() string {
	var sb strings.Builder
	sb.WriteString("Parsing failed:\n")
	printErr := pretty.NewErrorPrettyPrinter(&sb, false).
		PrettyPrintError(e, "", e.Code)
	if printErr != nil {
		panic(printErr)
	}
	return sb.String()
}

func (e Error) ChildErrors() []error {
	return e.Errors
}

func (e Error) Unwrap() []error {
	return e.Errors
}

// ParseError

type ParseError interface {
	errors.UserError
	ast.HasPosition
	isParseError()
}

// SyntaxError

type SyntaxError struct {
	Message string
	Pos     ast.Position
}

func NewSyntaxError(pos ast.Position, message string, params ...any) *SyntaxError {
	return &SyntaxError{
		Pos:     pos,
		Message: fmt.Sprintf(message, params...),
	}
}

var _ ParseError = &SyntaxError{}

func (*SyntaxError) isParseError() {}

func (*SyntaxError) IsUserError() {}

func (e *SyntaxError) StartPosition() ast.Position {
	return e.Pos
}

func (e *SyntaxError) EndPosition() ast.Position {
	return e.Pos
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// DeclarationBodyError

// DeclarationBodyError is reported when a body block appears
// in a declaration, either in place of the modifier set
// or in place of the terminating semicolon.
// The declaration form is a bare signature and forbids
// an implementation entirely.
type DeclarationBodyError struct {
	Pos ast.Position
}

var _ ParseError = &DeclarationBodyError{}
var _ errors.SecondaryError = &DeclarationBodyError{}

func (*DeclarationBodyError) isParseError() {}

func (*DeclarationBodyError) IsUserError() {}

func (e *DeclarationBodyError) StartPosition() ast.Position {
	return e.Pos
}

func (e *DeclarationBodyError) EndPosition() ast.Position {
	return e.Pos
}

func (e *DeclarationBodyError) Error() string {
	return "declaration cannot have an implementation"
}

func (e *DeclarationBodyError) SecondaryError() string {
	return "remove the body block; the declaration ends with a semicolon"
}

// DuplicateVisibilityModifierError

type DuplicateVisibilityModifierError struct {
	Keyword string
	Pos     ast.Position
}

var _ ParseError = &DuplicateVisibilityModifierError{}
var _ errors.SecondaryError = &DuplicateVisibilityModifierError{}

func (*DuplicateVisibilityModifierError) isParseError() {}

func (*DuplicateVisibilityModifierError) IsUserError() {}

func (e *DuplicateVisibilityModifierError) StartPosition() ast.Position {
	return e.Pos
}

func (e *DuplicateVisibilityModifierError) EndPosition() ast.Position {
	return e.Pos
}

func (e *DuplicateVisibilityModifierError) Error() string {
	return fmt.Sprintf("invalid second visibility modifier `%s`", e.Keyword)
}

func (e *DuplicateVisibilityModifierError) SecondaryError() string {
	return "at most one visibility modifier is permitted"
}

// DuplicateMutabilityModifierError

type DuplicateMutabilityModifierError struct {
	Keyword string
	Pos     ast.Position
}

var _ ParseError = &DuplicateMutabilityModifierError{}
var _ errors.SecondaryError = &DuplicateMutabilityModifierError{}

func (*DuplicateMutabilityModifierError) isParseError() {}

func (*DuplicateMutabilityModifierError) IsUserError() {}

func (e *DuplicateMutabilityModifierError) StartPosition() ast.Position {
	return e.Pos
}

func (e *DuplicateMutabilityModifierError) EndPosition() ast.Position {
	return e.Pos
}

func (e *DuplicateMutabilityModifierError) Error() string {
	return fmt.Sprintf("invalid second mutability modifier `%s`", e.Keyword)
}

func (e *DuplicateMutabilityModifierError) SecondaryError() string {
	return "at most one mutability modifier is permitted"
}

// DuplicateModifierError

// DuplicateModifierError is reported when a single-occurrence
// keyword modifier, `virtual` or `override`, appears twice
type DuplicateModifierError struct {
	Keyword string
	Pos     ast.Position
}

var _ ParseError = &DuplicateModifierError{}
var _ errors.SecondaryError = &DuplicateModifierError{}

func (*DuplicateModifierError) isParseError() {}

func (*DuplicateModifierError) IsUserError() {}

func (e *DuplicateModifierError) StartPosition() ast.Position {
	return e.Pos
}

func (e *DuplicateModifierError) EndPosition() ast.Position {
	return e.Pos
}

func (e *DuplicateModifierError) Error() string {
	return fmt.Sprintf("invalid second `%s` modifier", e.Keyword)
}

func (e *DuplicateModifierError) SecondaryError() string {
	return "remove the duplicate modifier"
}
