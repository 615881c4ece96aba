package newsportal

import (
	"fmt"

	"github.com/daniilsolovey/news-cms/internal/document"
	"github.com/daniilsolovey/news-cms/internal/embed"
)

// ResolveEmbed turns a pasted URL into an embed node and its preview.
// embed.ErrUnsupportedURL is returned when no platform matches.
func (u *Manager) ResolveEmbed(rawURL string) (embed.Node, embed.Fragment, error) {
	registry := u.renderer.Embeds()

	node, err := registry.Resolve(rawURL)
	if err != nil {
		u.metrics.EmbedResolves.WithLabelValues(labelUnsupported).Inc()
		return embed.Node{}, embed.Fragment{}, err
	}

	fragment, err := registry.Render(node)
	if err != nil {
		return embed.Node{}, embed.Fragment{}, fmt.Errorf("render %s embed: %w", node.Type, err)
	}
	u.metrics.EmbedResolves.WithLabelValues(node.Type).Inc()

	return node, fragment, nil
}

// ParseEmbeds builds a document out of the embeds found in pasted HTML.
func (u *Manager) ParseEmbeds(html string) (*document.Node, document.Rendered, error) {
	nodes, err := u.renderer.Embeds().ParseHTML(html)
	if err != nil {
		return nil, document.Rendered{}, fmt.Errorf("parse html: %w", err)
	}

	for _, n := range nodes {
		u.metrics.EmbedResolves.WithLabelValues(n.Type).Inc()
	}

	doc := document.FromEmbeds(nodes)
	return doc, u.renderer.Render(doc), nil
}

// EmbedTypes lists the node types of the supported platforms in resolve
// order.
func (u *Manager) EmbedTypes() []string {
	providers := u.renderer.Embeds().Providers()
	types := make([]string, len(providers))
	for i, p := range providers {
		types[i] = p.Type()
	}

	return types
}
