// Package app contains the CLI application logic: configuration,
// logger setup, catalog loading and the showcase build-and-dump
// lifecycle, decoupled from the entrypoint.
package app
