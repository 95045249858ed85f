// Package cli parses command-line flags into a config, wires the logger and
// the dispatcher together, and maps failures to process exit codes.
package cli
