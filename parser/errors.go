package parser

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/csskit/scanner"
)

// Error is a single parse diagnostic, located at the token which triggered
// it. Pos is a byte offset into the (preprocessed) input, Line is 1-based.
type Error struct {
	Message string
	Line    int
	Pos     int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (line %d, pos %d)", e.Message, e.Line, e.Pos)
}

// ErrorList collects the diagnostics of one parse call, in source order.
// An empty list means the input parsed cleanly.
type ErrorList []*Error

func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", el[0], len(el)-1)
}

// Err returns an error equivalent to the list, or nil if the list is empty.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

func errorAt(tok scanner.Token, format string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Pos:     tok.Start,
	}
}

func expected(tok scanner.Token, context, what string) *Error {
	return errorAt(tok, "%s: %s expected, found %s", context, what, tok.Type)
}
