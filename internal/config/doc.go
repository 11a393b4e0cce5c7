// Package config resolves where roster finds the players API and where it
// writes its log.
//
// # Resolution Order
//
// Each field is taken from the first source that sets it:
//
//  1. Command-line overrides (-api, -cohort)
//  2. Environment: ROSTER_API_BASE, ROSTER_COHORT, ROSTER_LOG_DIR
//  3. The TOML config file (default ~/.config/roster/config.toml)
//  4. Built-in defaults
//
// LoadDotEnv can be called first to seed the environment from a .env file;
// variables already present in the environment are left alone.
//
// # Default Values
//
//   - API base:  https://fsa-puppy-bowl.herokuapp.com
//   - Cohort:    2302-ACC-CT-WEB-PT-A
//   - Log dir:   ~/.local/share/roster
//   - Log file:  <log_dir>/roster.log
//
// # TOML Format
//
//	api_base = "https://fsa-puppy-bowl.herokuapp.com"
//	cohort = "2302-ACC-CT-WEB-PT-A"
//	log_dir = "~/.local/share/roster"
//
// All fields are optional and blank values count as unset. Tilde expansion
// is applied to log_dir.
//
// # Collection URL
//
// CollectionURL joins the base and cohort into the single endpoint every
// request targets:
//
//	<api_base>/api/<cohort>/players
//
// # Error Handling
//
// Load fails on unreadable or unparsable config files. A missing file is
// not an error, so roster runs without any configuration.
package config
