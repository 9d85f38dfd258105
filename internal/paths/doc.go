// Package paths implements the structured path model shared by every resolver.
//
// A Path is a slash-delimited sequence of Elements with absolute and directory
// flags. A Path parsed from a delimited regular expression holds exactly one
// regex Element and is never split or normalized.
//
// Paths are values. Methods that change a path either take a pointer receiver
// and copy the element slice before writing, or return a new Path; copies of a
// Path never observe each other's changes.
package paths
