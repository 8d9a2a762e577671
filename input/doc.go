// Package input implements the hidden text field that receives keyboard input
// for the editor.
//
// A Field owns a buffer.Buffer and reports edits the way a native text input
// does: change notifications carry the full text, select notifications carry
// the selection as global rune offsets, and blur notifications mark loss of
// focus. Programmatic SetText and Focus calls do not notify.
package input
