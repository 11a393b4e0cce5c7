// Package logtail reads the tail of roster's log file.
//
// The log pane in the TUI and the `roster logs` command both show the most
// recent lines of <log_dir>/roster.log. Read scans the file once and keeps at
// most 2*maxLines lines in memory, so large logs are cheap to tail:
//
//	lines, err := logtail.Read(cfg.LogPath(), 200)
//
// ReadMatching applies a case-insensitive substring filter before the limit,
// which makes it easy to pull out only the failure lines:
//
//	lines, err := logtail.ReadMatching(cfg.LogPath(), 50, "trouble")
//
// A log that does not exist yet yields no lines and no error.
package logtail
