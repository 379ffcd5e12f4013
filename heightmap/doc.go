// Package heightmap reads and writes the text form of an elevation grid:
// one row per line, one symbol per cell.
//
// The lexer splits input into rows and line breaks; blank lines and
// blanks around a row are ignored, while a blank inside a row is reported
// as an invalid symbol. Each symbol is converted with an elevation.Alphabet.
//
// Errors:
//
//   - ErrSyntax: the document could not be tokenised (e.g. a bare '\r').
//   - elevation.ErrInvalidSymbol, prefixed with name:line:column.
//   - grid.ErrEmptyGrid, grid.ErrNonRectangular.
//   - elevation.ErrInvalidAlphabet for a bad alphabet.
package heightmap
