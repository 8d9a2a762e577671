// Package editor implements the code editor widget: a Controller that renders
// a document onto a drawing Surface once per animation frame, and a Bubble
// Tea Model that hosts it in a terminal program.
//
// The controller owns view state only. Text lives in a document.Document and
// keystrokes arrive through a hidden TextInput whose change, select and blur
// notifications drive re-renders. The host supplies the frame loop: Render
// returns whether another frame should be scheduled.
package editor
