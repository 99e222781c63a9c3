package treesitter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"

	"mercator-hq/callisto/pkg/format/token"
	"mercator-hq/callisto/pkg/lang"
)

// Tokenizer is a tree-sitter backed frontend for one grammar.
type Tokenizer struct {
	language string
	grammar  *sitter.Language

	// tree-sitter parsers are not safe for concurrent use; one parse at a
	// time per frontend.
	mu     sync.Mutex
	parser *sitter.Parser
}

// NewGo returns the Go frontend.
func NewGo() *Tokenizer { return newTokenizer("go", golang.GetLanguage()) }

// NewJavaScript returns the JavaScript frontend, also used for JSON.
func NewJavaScript() *Tokenizer { return newTokenizer("javascript", javascript.GetLanguage()) }

// NewPython returns the Python frontend.
func NewPython() *Tokenizer { return newTokenizer("python", python.GetLanguage()) }

func newTokenizer(language string, grammar *sitter.Language) *Tokenizer {
	parser := sitter.NewParser()
	parser.SetLanguage(grammar)
	return &Tokenizer{language: language, grammar: grammar, parser: parser}
}

// Language returns the grammar name.
func (t *Tokenizer) Language() string { return t.language }

// Close releases the underlying parser.
func (t *Tokenizer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.parser.Close()
}

// Tokenize parses src and emits the concrete syntax tree's leaf nodes as
// classified tokens in source order.
func (t *Tokenizer) Tokenize(ctx context.Context, src []byte) ([]token.Token, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tree, err := t.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s parse failed: %w", t.language, err)
	}
	defer tree.Close()

	var tokens []token.Token
	collectLeaves(tree.RootNode(), src, &tokens)
	return tokens, nil
}

// collectLeaves walks the tree depth-first and appends every leaf node as a
// token. Zero-width leaves (missing nodes inserted by error recovery) are
// skipped.
func collectLeaves(node *sitter.Node, src []byte, out *[]token.Token) {
	count := int(node.ChildCount())
	if count == 0 {
		start, end := int(node.StartByte()), int(node.EndByte())
		if end <= start {
			return
		}
		text := string(src[start:end])
		*out = append(*out, token.Token{
			Text:  text,
			Start: start,
			End:   end,
			Class: classify(node.Type(), text),
		})
		return
	}
	for i := 0; i < count; i++ {
		collectLeaves(node.Child(i), src, out)
	}
}

// classify maps a leaf node to its layout class. Node types are preferred
// over raw text where grammars disagree on punctuation.
func classify(nodeType, text string) token.Class {
	if strings.Contains(nodeType, "comment") {
		return token.ClassComment
	}
	switch text {
	case "(", "[", "{":
		return token.ClassOpenBracket
	case ")", "]", "}":
		return token.ClassCloseBracket
	case ",":
		return token.ClassSeparator
	case ";":
		return token.ClassTerminator
	}
	return token.ClassOther
}

// RegisterAll registers the shipped frontends on a registry with their usual
// extensions.
func RegisterAll(r *lang.Registry) {
	r.Register(NewGo(), ".go")
	js := NewJavaScript()
	r.Register(js, ".js", ".mjs", ".json")
	r.Register(NewPython(), ".py")
}
