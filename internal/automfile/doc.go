// Package automfile loads an automaton.Automaton from a pair of text
// files: a header (alphabet, declared states, initial state) and a body
// (marked states, transitions). It is the one place in the module that
// talks to the filesystem.
//
// Header format, one directive per line:
//
//	INITIAL <id>
//	STATE <id> <label>
//	EVENT <id> <label> <observable:0|1> <controllable:0|1>
//
// Body format, one directive per line:
//
//	MARKED <id>
//	TRANSITION <from> <event-id> <to>
//
// Blank lines and lines starting with "#" are ignored in both files.
package automfile
