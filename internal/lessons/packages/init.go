package packages

import (
	"fmt"
	"io"
	"slices"
)

// initLog records package initialization once, when the program starts.
// Package-level variables initialize in dependency order, then every init
// function runs in the order it appears.
var initLog []string

var first = record("var first (depends on second)", second)
var second = record("var second", "")

func record(msg, dep string) string {
	initLog = append(initLog, msg)
	return msg + dep
}

func init() {
	initLog = append(initLog, "init() #1")
}

func init() {
	initLog = append(initLog, "init() #2")
}

func demoInit(w io.Writer) {
	_ = first
	for i, step := range slices.Clone(initLog) {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}
	fmt.Fprintln(w, "  Imported packages finish initializing before the importer starts.")
}
