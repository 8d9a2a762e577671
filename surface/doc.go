// Package surface provides drawing targets for the editor renderer.
//
// Grid rasterizes draw calls into terminal cells and renders them with
// lipgloss. Recorder keeps a log of draw calls and is meant for tests and
// for hosts that replay frames onto their own backends.
package surface
