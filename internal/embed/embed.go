// Package embed holds the editor's third-party media nodes. Every provider
// turns a pasted URL into canonical node attributes and renders those
// attributes back into embed markup. Providers never depend on each other.
package embed

import (
	"errors"
	"fmt"
	"html/template"
	"regexp"
	"strings"
)

// MaxURLLength bounds the input accepted by Resolve.
const MaxURLLength = 2048

var (
	ErrUnsupportedURL = errors.New("unsupported embed url")
	ErrUnknownType    = errors.New("unknown embed type")
	ErrInvalidAttrs   = errors.New("invalid embed attributes")
)

// Node is an embed node of the editor document.
type Node struct {
	Type  string `json:"type"`
	Attrs Attrs  `json:"attrs"`
}

// Fragment is rendered embed markup. Script is the platform loader the page
// has to include, empty for plain iframes.
type Fragment struct {
	HTML   template.HTML
	Script string
}

type Provider interface {
	// Type is the node type stored in the document.
	Type() string
	// Match returns canonical attributes when rawURL belongs to the provider.
	Match(rawURL string) (Attrs, bool)
	// Render validates stored attributes and renders them.
	Render(attrs Attrs) (Fragment, error)
	// FrameSource matches the iframe src the provider renders, nil when it
	// does not render iframes.
	FrameSource() *regexp.Regexp
}

type Registry struct {
	providers []Provider
	byType    map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{
		byType: make(map[string]Provider, len(providers)),
	}
	for _, p := range providers {
		r.Register(p)
	}

	return r
}

// Default returns a registry with every supported platform.
func Default() *Registry {
	r := NewRegistry(
		YouTube{},
		Twitter{},
		TikTok{},
		Instagram{},
		Vimeo{},
		Spotify{},
		GoogleMaps{},
	)
	r.Register(Image{}, "image")

	return r
}

// Register appends p to the resolve order. Aliases are extra node types
// rendered by p.
func (r *Registry) Register(p Provider, aliases ...string) {
	r.providers = append(r.providers, p)
	r.byType[p.Type()] = p
	for _, alias := range aliases {
		r.byType[alias] = p
	}
}

func (r *Registry) Providers() []Provider {
	return r.providers
}

// IsEmbed reports whether nodeType is rendered by a provider.
func (r *Registry) IsEmbed(nodeType string) bool {
	_, ok := r.byType[nodeType]
	return ok
}

// Resolve asks the providers in registration order and returns the node of
// the first one matching rawURL.
func (r *Registry) Resolve(rawURL string) (Node, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return Node{}, ErrUnsupportedURL
	}
	if len(rawURL) > MaxURLLength {
		return Node{}, fmt.Errorf("%w: url longer than %d bytes", ErrUnsupportedURL, MaxURLLength)
	}

	for _, p := range r.providers {
		if attrs, ok := p.Match(rawURL); ok {
			return Node{Type: p.Type(), Attrs: attrs}, nil
		}
	}

	return Node{}, fmt.Errorf("%w: %s", ErrUnsupportedURL, rawURL)
}

func (r *Registry) Render(n Node) (Fragment, error) {
	p, ok := r.byType[n.Type]
	if !ok {
		return Fragment{}, fmt.Errorf("%w: %q", ErrUnknownType, n.Type)
	}

	return p.Render(n.Attrs)
}

// FrameSources lists the iframe src patterns of all providers.
func (r *Registry) FrameSources() []*regexp.Regexp {
	var sources []*regexp.Regexp
	for _, p := range r.providers {
		if re := p.FrameSource(); re != nil {
			sources = append(sources, re)
		}
	}

	return sources
}

func matchFirst(patterns []*regexp.Regexp, s string) (int, []string) {
	for i, re := range patterns {
		if m := re.FindStringSubmatch(s); m != nil {
			return i, m
		}
	}

	return -1, nil
}

func invalid(nodeType, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidAttrs, nodeType, reason)
}
