// Package buffer is the text state behind the editor's hidden input field:
// lines of runes, a caret, an optional selection, and undo history.
//
// Coordinates are 0-based (Row, Col) in runes. Ranges are half-open
// selections in document coordinates: [Start, End). Global offsets count
// one rune per line break.
package buffer
