package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/pathmend/pathmend/pkg/reconcile"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	ChangedColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}

	UnchangedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Medium gray
		Dark:  "#ADB5BD",
	}

	FailedColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	PathColor = lipgloss.AdaptiveColor{
		Light: "#007ACC", // Blue
		Dark:  "#3D9EFF",
	}

	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#212529", // Almost black
		Dark:  "#F8F9FA", // Almost white
	}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	ChangedStyle = lipgloss.NewStyle().
			Foreground(ChangedColor).
			Bold(true)

	UnchangedStyle = lipgloss.NewStyle().
			Foreground(UnchangedColor)

	FailedStyle = lipgloss.NewStyle().
			Foreground(FailedColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor)

	DetailStyle = lipgloss.NewStyle().
			Foreground(UnchangedColor).
			Italic(true)
)

// StateStyle returns the appropriate pterm style for an outcome state
func StateStyle(state reconcile.State) *pterm.Style {
	switch state {
	case reconcile.StateChanged:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case reconcile.StateUnchanged:
		return pterm.NewStyle(pterm.FgGray)
	case reconcile.StateFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgDefault)
	}
}
