// Package params turns a loosely specified set of physical inputs into a
// consistent set of drive parameters.
//
// The drive strength can be given in four interchangeable ways. Exactly one is
// authoritative, chosen by fixed precedence:
//
//  1. Rabi frequency
//  2. saturation parameter
//  3. laser intensity
//  4. laser power and beam waist
//
// [Resolve] fills in the other two members of the (saturation parameter, Rabi
// frequency, laser intensity) triple from the authoritative one. Missing
// mandatory inputs are reported as [*MissingInputError], which callers can tell
// apart from text that failed to parse ([*ParseError]).
package params
