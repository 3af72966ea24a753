// Package gohocon implements a streaming parser for the HOCON
// configuration language: a buffered UTF-8 lexer, an event-driven
// grammar that enforces HOCON's concatenation and implicit-separator
// rules, and a tree-building sink that performs HOCON's key-sort and
// duplicate-key merge post-processing.
//
// Include resolution and substitution resolution are explicitly out of
// scope: substitutions are preserved as markers in the tree for an
// external resolver.
//
//	tree, err := gohocon.ParseString("config", `a.b = 1, a.c = 2`)
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println(tree.Obj.Entries[0].Key) // Output: a
package gohocon
