// Package menu implements the interactive lesson menu: an immutable, ordered
// catalog of lessons and a dispatcher that renders it, reads one line at a
// time and runs the selected lesson.
//
// The dispatcher is single-threaded. The only points where it blocks are the
// two line reads per iteration: the selection read and the continue-prompt
// read. A failed read is fatal and is returned to the caller.
package menu
