// Package document models the rich-text editor's JSON documents and renders
// them to sanitized HTML for the public site.
package document

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/daniilsolovey/news-cms/internal/embed"
)

const TypeDoc = "doc"

var ErrInvalidDocument = errors.New("invalid document")

type Mark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

type Node struct {
	Type    string         `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []Node         `json:"content,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
	Text    string         `json:"text,omitempty"`
}

// Parse decodes an editor document. The root node must be a doc.
func Parse(data []byte) (*Node, error) {
	var root Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if root.Type != TypeDoc {
		return nil, fmt.Errorf("%w: root node is %q", ErrInvalidDocument, root.Type)
	}

	return &root, nil
}

// Empty returns a document holding a single empty paragraph, which is what
// the editor produces for a blank article.
func Empty() *Node {
	return &Node{Type: TypeDoc, Content: []Node{{Type: "paragraph"}}}
}

// FromEmbeds wraps embed nodes into a document.
func FromEmbeds(nodes []embed.Node) *Node {
	doc := &Node{Type: TypeDoc, Content: make([]Node, 0, len(nodes))}
	for _, n := range nodes {
		doc.Content = append(doc.Content, Node{Type: n.Type, Attrs: n.Attrs})
	}

	return doc
}

func (n *Node) Marshal() ([]byte, error) {
	return json.Marshal(n)
}

// Walk visits n and its descendants depth first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for i := range n.Content {
		n.Content[i].Walk(fn)
	}
}
