// Package config loads studentsearch settings.
//
// Settings come from a TOML file, by default
// ~/.config/studentsearch/config.toml. A missing file is not an error; the
// defaults below apply. After the file, environment variables override
// individual values, and LoadDotEnv can seed those variables from a .env
// file without clobbering anything already exported.
//
// # TOML Format
//
//	debounce_ms = 120
//	default_branch = "CSE"
//	seed_file = "~/roster.yaml"
//	log_file = "~/.local/state/studentsearch/studentsearch.log"
//	log_level = "info"
//
// Every field is optional. Blank strings fall back to defaults and paths get
// tilde expansion. debounce_ms = 0 is honoured and means "use the debouncer's
// built-in delay".
//
// # Environment
//
//   - STUDENTSEARCH_DEBOUNCE_MS
//   - STUDENTSEARCH_SEED_FILE
//   - STUDENTSEARCH_LOG_FILE
//   - STUDENTSEARCH_LOG_LEVEL
//
// # Errors
//
// Load fails on unreadable files, TOML syntax errors, an unknown
// default_branch, a negative debounce and a non-numeric debounce override.
package config
