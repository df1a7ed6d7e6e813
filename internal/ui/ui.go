// Package ui renders terminal progress for scaffold runs, falling back to
// plain log lines when no TTY is attached.
package ui

import "os"

// Theme holds the colors used by interactive components.
type Theme struct {
	NoColor bool
	Colors  ThemeColors
}

// ThemeColors are hex color strings.
type ThemeColors struct {
	Primary   string
	Secondary string
}

// DefaultTheme returns the brand theme. NO_COLOR in the environment
// disables color.
func DefaultTheme() *Theme {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &Theme{
		NoColor: noColor,
		Colors: ThemeColors{
			Primary:   "#FF6B35",
			Secondary: "#1E90FF",
		},
	}
}

// Progress creates progress bars.
type Progress interface {
	// Start creates a determinate progress bar with the given total.
	Start(title string, total int) ProgressBar
}

// ProgressBar tracks completion of a fixed number of steps.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

// NopProgress discards all progress updates.
type NopProgress struct{}

// Start returns a bar that does nothing.
func (NopProgress) Start(string, int) ProgressBar { return nopBar{} }

type nopBar struct{}

func (nopBar) Increment(int)   {}
func (nopBar) SetTitle(string) {}
func (nopBar) Done()           {}
