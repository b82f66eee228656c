// Package cli implements the guidgen command-line interface.
//
// The surface is deliberately flat and closed: a count option (-n), version
// and help requests, or free seed text. All arguments after the program name
// are joined with single spaces into one string before classification, so
// multi-word seed text needs no quoting. Run writes to injected stdout and
// stderr writers and returns the process exit code instead of exiting, which
// keeps the whole surface testable in-process.
package cli
