// Package history provides bounded undo/redo stacks of reversible commands.
//
// A History owns the target it mutates and every command pushed onto it.
// Commands run against the target only through Execute, Undo and Redo, so
// the done stack always describes the path from the initial state to the
// current one.
//
// Histories are not safe for concurrent use. The editor drives them from a
// single event loop.
package history
