package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops detail.
	LayoutCompactWidth = 100

	// LayoutExtraWideWidth gives the players pane a larger share.
	LayoutExtraWideWidth = 160
)

// Pane sizing.
const (
	// chromeHeight covers the header and command bar.
	chromeHeight = 2

	// logPaneHeight is the full height of the log box, borders included.
	logPaneHeight = 10

	// cardHeight is the number of lines one player card takes in the list.
	cardHeight = 2

	// formMinWidth keeps the form inputs usable on narrow terminals.
	formMinWidth = 32
)

// Log display limits.
const (
	// LogTailLines is how many lines of the roster log the log pane keeps.
	LogTailLines = 200
)
