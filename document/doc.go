// Package document implements the editor's text model: mutable contents,
// derived lines, and a pluggable per-line tokenization engine.
//
// Offsets are 0-based rune indices. Token ranges are half-open [Start, End)
// and relative to a single line. Global indices address the document as if
// its lines were joined by a single '\n' rune.
package document
