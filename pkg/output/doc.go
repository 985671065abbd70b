// Package output renders reconciliation results for humans and machines.
//
// A Format selects the rendering: rich terminal output (pterm and lipgloss
// styling), plain text, JSON, or YAML. FormatAuto picks between terminal
// and text by probing the destination with isatty and termenv, honoring
// NO_COLOR.
package output
