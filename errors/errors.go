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

package errors

import (
	"fmt"
	"runtime/debug"
)

// InternalError is an implementation error, e.g. an unreachable code path
// (UnreachableError). Internal errors must always be propagated up the call
// stack and never be caught.
type InternalError interface {
	error
	IsInternalError()
}

// UserError is an error in the parsed source, e.g. a syntax error.
type UserError interface {
	error
	IsUserError()
}

// SecondaryError may be implemented by errors
// which provide an additional hint beyond the main message.
type SecondaryError interface {
	SecondaryError() string
}

// ParentError is an error that contains one or more child errors.
type ParentError interface {
	error
	ChildErrors() []error
}

// UnreachableError

// UnreachableError is an internal error for a code path
// which should never have been taken.
type UnreachableError struct {
	Stack []byte
}

var _ InternalError = UnreachableError{}

func NewUnreachableError() *UnreachableError {
	return &UnreachableError{Stack: debug.Stack()}
}

func (e UnreachableError) IsInternalError() {}

func (e UnreachableError) Error() string {
	return fmt.Sprintf("unreachable\n%s", e.Stack)
}

// UnexpectedError

// UnexpectedError is an internal error
// for an invariant violation with a description.
type UnexpectedError struct {
	Err error
}

var _ InternalError = UnexpectedError{}

func NewUnexpectedError(message string, arg ...any) *UnexpectedError {
	return &UnexpectedError{Err: fmt.Errorf(message, arg...)}
}

func (e UnexpectedError) IsInternalError() {}

func (e UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected: %s", e.Err.Error())
}

func (e UnexpectedError) Unwrap() error {
	return e.Err
}
