/*
Package csskit provides an error-resilient parser for a subset of CSS,
intended for styling trees of visual elements in applications which are
not web browsers, e.g. drawing editors or typesetters.

The module splits into focused packages:

▪︎ scanner tokenizes CSS text, with single-token pushback for the parser.

▪︎ ast holds the stylesheet syntax tree: rules, selectors, declarations,
built from closed sum types.

▪︎ parser turns token streams into ASTs with per-rule error recovery:
broken constructs are dropped or repaired, diagnostics are collected, and
the rest of the stylesheet survives.

▪︎ style and cssom define the boundary types which styling engines consume,
with cssom/astadapter as the bridge from parsed ASTs (including <style>
elements extracted from HTML documents).

This root package is a thin facade over package parser for the common
cases.

Parsing deliberately stops at raw values: declaration terms and at-rule
bodies are preserved as balanced token runs for downstream interpreters.
Cascading, selector matching and value conversion are jobs of the
consuming engine.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package csskit
