// Package pattern classifies path strings as literal, glob or delimited regular
// expression and compiles them into reusable matchers.
//
// Regex detection always wins over glob detection: a string like "/^blog/i"
// is a regex even though it could be read as a path. A regex is recognised
// only when it is fully delimited and its body compiles, so probing never
// fails loudly on malformed input.
//
// Glob syntax:
//   - `*` matches any run of characters except "/"
//   - `?` matches one character except "/"
//   - `{a,b,c}` matches any of the comma-separated alternatives (nestable)
//   - `\x` matches x literally
package pattern
