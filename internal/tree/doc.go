// Package tree describes directory layouts as element trees and writes them
// to a filesystem.
//
// A tree is built from Directory and File nodes. Paths are never set by
// hand: AddChild derives the child's path from its parent and calls Rebase
// to fix up every descendant, so a subtree assembled first and attached
// later still ends up with consistent paths.
//
//	root := tree.NewDirectory("")
//	tree.Rebase(root, base)
//	root.AddChild(tree.NewDirectory("config").
//		AddChild(tree.NewFile("config.toml").WithFormat(format.TOML).WithContent(cfg)))
//	err := tree.NewWriter(fs, log).Write(root)
package tree
