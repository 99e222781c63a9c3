// Package treesitter provides tree-sitter backed tokenizer frontends for the
// formatting engine. Each frontend parses source with the corresponding
// grammar, walks the concrete syntax tree, and emits the leaf nodes as
// classified tokens with their original byte offsets.
//
// Supported grammars: Go, JavaScript and Python. JSON files are tokenized
// through the JavaScript grammar, of which JSON is a subset.
package treesitter
