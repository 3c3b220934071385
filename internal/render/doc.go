// Package render formats search results and directory trees for the terminal.
//
// Styling goes through lipgloss. Whether colour is used is decided once per
// command by DetectColor and passed down as a Styles value, so rendering
// functions never inspect the environment themselves.
package render
