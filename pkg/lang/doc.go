// Package lang defines the tokenizer contract between language frontends and
// the formatting engine, plus a registry mapping file extensions to
// frontends.
//
// A frontend reduces a source file to the flat token slice the engine
// operates on. Frontends only tokenize and classify; they carry no layout
// opinion of their own. The shipped frontends live in the treesitter
// subpackage.
package lang
