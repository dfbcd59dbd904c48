package csskit

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/csskit/ast"
	"github.com/npillmayer/csskit/parser"
)

// Parse parses a stylesheet. The returned AST is always usable; if parts
// of the input had to be dropped or repaired, the returned error is a
// parser.ErrorList with one entry per problem.
func Parse(css string) (*ast.Stylesheet, error) {
	sheet, errs := parser.Parse(css)
	return sheet, errs.Err()
}

// ParseLocation parses a stylesheet from an HTTP(S) URL or a file path.
func ParseLocation(loc string) (*ast.Stylesheet, error) {
	sheet, errs, err := parser.ParseLocation(loc)
	if err != nil {
		return nil, err
	}
	return sheet, errs.Err()
}

// ParseDeclarations parses a bare declaration list, as found in an inline
// style attribute.
func ParseDeclarations(css string) ([]ast.Declaration, error) {
	decls, errs := parser.ParseDeclarations(css)
	return decls, errs.Err()
}
