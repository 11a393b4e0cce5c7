// Package cli implements the non-interactive roster commands: list, show,
// add, rm and logs. Output is styled with lipgloss and written to any
// io.Writer. When a terminal is available, add prompts for missing fields.
package cli
