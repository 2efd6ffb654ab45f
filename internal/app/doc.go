// Package app is the composition root for studentsearch.
//
// # Overview
//
// This package wires together configuration, logging, the record store and
// the UI. Both entry points share the same startup sequence:
//
//  1. Load ./.env (or Options.EnvFile) without overriding the environment
//  2. Read ~/.config/studentsearch/config.toml and apply env overrides
//  3. Apply command line overrides from Options
//  4. Build the zap file logger
//  5. Fill the roster from the built-in seed or a YAML seed file
//
// Run then starts the Bubble Tea UI and blocks until it exits. List prints
// the filtered roster once and returns.
//
// # Error Handling
//
// Startup errors (bad config, unreadable seed, invalid log level) are
// returned wrapped to the caller. Preference problems never fail startup;
// prefs.Load falls back to defaults.
//
// # Records
//
// Records only live in memory. A seed file is read, never written.
package app
