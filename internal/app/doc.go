// Package app is the composition root for roster.
//
// Load resolves configuration (flags, then environment and .env, then
// ~/.config/roster/config.toml, then defaults), builds the Puppy Bowl client
// for the cohort's collection URL and wraps it in a roster.API. Both the TUI
// and the headless commands start from it.
//
// Run additionally redirects the standard logger to <log_dir>/roster.log,
// loads UI preferences and hands everything to the ui package:
//
//	Run()
//	  ├─ config.LoadDotEnv / config.Load
//	  ├─ puppybowl.NewClient(cfg.CollectionURL())
//	  ├─ tea.LogToFile(cfg.LogPath())
//	  ├─ prefs.Load
//	  └─ ui.Run   blocks until quit or ctx is cancelled
//
// OpenLog is the headless counterpart of the log redirect: it appends to the
// same file and falls back to another writer when the file cannot be opened.
package app
