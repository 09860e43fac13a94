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

// Package pretty renders errors with source excerpts,
// in the style of modern compiler diagnostics:
//
//	error: unexpected token: ';'
//	 --> example.sol:1:17
//	  |
//	1 | function foo() ; ;
//	  |                  ^
package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora/v4"

	"github.com/solbind/soldecl/ast"
	"github.com/solbind/soldecl/errors"
)

const ErrorPrefix = "error"
const excerptArrow = "--> "
const excerptDots = "... "

func FormatErrorMessage(prefix string, message string, useColor bool) string {
	var builder strings.Builder

	if useColor {
		builder.WriteString(aurora.Red(prefix).Bold().String())
	} else {
		builder.WriteString(prefix)
	}

	builder.WriteString(": ")

	if useColor {
		builder.WriteString(aurora.Bold(message).String())
	} else {
		builder.WriteString(message)
	}

	builder.WriteByte('\n')

	return builder.String()
}

type excerpt struct {
	startPos *ast.Position
	endPos   *ast.Position
	message  string
	isError  bool
}

func newExcerpt(obj any, message string, isError bool) excerpt {
	result := excerpt{
		message: message,
		isError: isError,
	}
	if positioned, hasPosition := obj.(ast.HasPosition); hasPosition {
		startPos := positioned.StartPosition()
		result.startPos = &startPos
		endPos := positioned.EndPosition()
		result.endPos = &endPos
	}
	return result
}

// ErrorPrettyPrinter prints errors and their source excerpts
// to the given writer, optionally with ANSI colors
type ErrorPrettyPrinter struct {
	writer   io.Writer
	useColor bool
}

func NewErrorPrettyPrinter(writer io.Writer, useColor bool) ErrorPrettyPrinter {
	return ErrorPrettyPrinter{
		writer:   writer,
		useColor: useColor,
	}
}

func (p ErrorPrettyPrinter) writeString(str string) error {
	_, err := p.writer.Write([]byte(str))
	return err
}

// PrettyPrintError prints the given error.
// Errors implementing errors.ParentError are unwrapped
// and each child error is printed separately.
func (p ErrorPrettyPrinter) PrettyPrintError(err error, location string, code []byte) error {
	if parent, ok := err.(errors.ParentError); ok {
		childErrors := parent.ChildErrors()
		for i, childErr := range childErrors {
			if i > 0 {
				printErr := p.writeString("\n")
				if printErr != nil {
					return printErr
				}
			}
			printErr := p.PrettyPrintError(childErr, location, code)
			if printErr != nil {
				return printErr
			}
		}
		return nil
	}

	return p.prettyPrintError(err, location, code)
}

func (p ErrorPrettyPrinter) prettyPrintError(err error, location string, code []byte) error {
	printErr := p.writeString(FormatErrorMessage(ErrorPrefix, err.Error(), p.useColor))
	if printErr != nil {
		return printErr
	}

	message := ""
	if secondaryError, ok := err.(errors.SecondaryError); ok {
		message = secondaryError.SecondaryError()
	}

	excerpts := []excerpt{
		newExcerpt(err, message, true),
	}

	return p.writeCodeExcerpts(excerpts, location, code)
}

func (p ErrorPrettyPrinter) writeCodeExcerpts(
	excerpts []excerpt,
	location string,
	code []byte,
) error {
	lines := strings.Split(string(code), "\n")

	var lastLineNumber int

	for i, excerpt := range excerpts {

		lineNumberString := ""
		lineNumberLength := 0
		if excerpt.startPos != nil {
			plainLineNumberString := strconv.Itoa(excerpt.startPos.Line)
			lineNumberLength = len(plainLineNumberString)

			lineNumberString = plainLineNumberString + " | "
			if p.useColor {
				lineNumberString = colorizeMeta(lineNumberString)
			}
		}

		// write arrow, location, and position (if any)
		if i == 0 {
			err := p.writeCodeExcerptLocation(location, lineNumberLength, excerpt.startPos)
			if err != nil {
				return err
			}
		}

		// code, if position, line number, and line available
		if excerpt.startPos == nil ||
			len(lines) == 0 ||
			excerpt.startPos.Line < 1 ||
			excerpt.startPos.Line > len(lines) {

			continue
		}

		if i > 0 && lastLineNumber != 0 && excerpt.startPos.Line-1 > lastLineNumber {
			dots := excerptDots
			if p.useColor {
				dots = colorizeMeta(dots)
			}
			err := p.writeString(dots + "\n")
			if err != nil {
				return err
			}
		}
		lastLineNumber = excerpt.startPos.Line

		// prepare empty line numbers
		emptyLineNumbers := strings.Repeat(" ", lineNumberLength+1) + "|"
		if p.useColor {
			emptyLineNumbers = colorizeMeta(emptyLineNumbers)
		}

		// empty line
		err := p.writeString(emptyLineNumbers + "\n")
		if err != nil {
			return err
		}

		// line number
		err = p.writeString(lineNumberString)
		if err != nil {
			return err
		}

		// code line
		line := lines[excerpt.startPos.Line-1]
		err = p.writeString(line + "\n")
		if err != nil {
			return err
		}

		// indicator line
		err = p.writeString(emptyLineNumbers + " ")
		if err != nil {
			return err
		}

		for i := 0; i <= excerpt.startPos.Column-1; i++ {
			str := " "

			// keep tabs to ensure the indicator line
			// aligns with the code line above
			if i < len(line) && line[i] == '\t' {
				str = "\t"
			}

			err = p.writeString(str)
			if err != nil {
				return err
			}
		}

		columns := 1
		if excerpt.endPos != nil && excerpt.endPos.Line == excerpt.startPos.Line {
			endColumn := excerpt.endPos.Column
			startColumn := excerpt.startPos.Column
			if endColumn >= startColumn {
				columns = endColumn - startColumn + 1
			}
		}

		indicator := "-"
		if excerpt.isError {
			indicator = "^"
		}

		indicators := strings.Repeat(indicator, columns)
		if p.useColor {
			indicators = colorizeError(indicators)
		}
		err = p.writeString(indicators)
		if err != nil {
			return err
		}

		if excerpt.message != "" {
			message := excerpt.message
			err = p.writeString(" ")
			if err != nil {
				return err
			}

			if p.useColor {
				message = colorizeError(message)
			}
			err = p.writeString(message)
			if err != nil {
				return err
			}
		}

		err = p.writeString("\n")
		if err != nil {
			return err
		}
	}

	return nil
}

func (p ErrorPrettyPrinter) writeCodeExcerptLocation(
	location string,
	lineNumberLength int,
	startPosition *ast.Position,
) error {
	// write spaces before arrow
	for i := 0; i < lineNumberLength; i++ {
		err := p.writeString(" ")
		if err != nil {
			return err
		}
	}

	// write arrow
	arrow := excerptArrow
	if p.useColor {
		arrow = colorizeMeta(arrow)
	}
	err := p.writeString(arrow)
	if err != nil {
		return err
	}

	// write location, if any
	if location != "" {
		err = p.writeString(location)
		if err != nil {
			return err
		}
	}

	// write position (line and column)
	if startPosition != nil {
		_, err := fmt.Fprintf(p.writer, ":%d:%d", startPosition.Line, startPosition.Column)
		if err != nil {
			return err
		}
	}

	return p.writeString("\n")
}

func colorizeError(message string) string {
	return aurora.Red(message).Bold().String()
}

func colorizeMeta(meta string) string {
	return aurora.Blue(meta).String()
}
