// Callisto is a source-code formatter driven by state-space search.
//
// Instead of fixed layout templates, Callisto tokenizes a file, enumerates
// the possible line-break decisions at each token boundary, and searches
// for the cheapest layout that satisfies the formatting rules those
// decisions activate.
//
// Usage:
//
//	# Print the formatted file to stdout
//	callisto fmt main.go
//
//	# Rewrite files in place
//	callisto fmt --write ./...
//
//	# Show what would change
//	callisto fmt --diff main.go
//
//	# Format only files with uncommitted changes
//	callisto fmt --write --changed
//
//	# Reformat continuously as files change
//	callisto watch .
//
//	# Explain the layout decisions for a file
//	callisto explain main.go
//
// For complete documentation, see: https://github.com/mercator-hq/callisto
package main

func main() {
	Execute()
}
