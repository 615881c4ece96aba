package embed

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	platformQuotes = "blockquote.twitter-tweet, blockquote.instagram-media, blockquote.tiktok-embed"
	embedSelector  = "iframe[src], " + platformQuotes + ", img[src], a[href]"
)

// ParseHTML extracts embed nodes from pasted markup in document order.
// Elements that do not resolve to a provider are skipped.
func (r *Registry) ParseHTML(fragment string) ([]Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	nodes := []Node{}
	doc.Find(embedSelector).Each(func(_ int, s *goquery.Selection) {
		for _, candidate := range candidates(s) {
			if n, err := r.Resolve(candidate); err == nil {
				nodes = append(nodes, r.withElementAttrs(n, s))
				return
			}
		}
	})

	return nodes, nil
}

// candidates lists the URLs an element may embed, most specific first.
func candidates(s *goquery.Selection) []string {
	switch goquery.NodeName(s) {
	case "iframe", "img":
		src, _ := s.Attr("src")
		if strings.HasPrefix(src, "//") {
			src = "https:" + src
		}
		return []string{src}
	case "blockquote":
		var urls []string
		for _, attr := range []string{"data-instgrm-permalink", "cite"} {
			if v, ok := s.Attr(attr); ok {
				urls = append(urls, v)
			}
		}
		s.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			href, _ := a.Attr("href")
			urls = append(urls, href)
		})
		return urls
	case "a":
		// links inside platform blockquotes belong to the blockquote
		if s.ParentsFiltered(platformQuotes).Length() > 0 {
			return nil
		}
		href, _ := s.Attr("href")
		return []string{href}
	}

	return nil
}

// withElementAttrs keeps the alt text, title and width of pasted images.
func (r *Registry) withElementAttrs(n Node, s *goquery.Selection) Node {
	if goquery.NodeName(s) != "img" {
		return n
	}

	for _, attr := range []string{"alt", "title"} {
		if v, ok := s.Attr(attr); ok {
			n.Attrs[attr] = strings.TrimSpace(v)
		}
	}
	if v, ok := s.Attr("width"); ok {
		if w, ok := (Attrs{"width": v}).Int("width"); ok && w > 0 {
			n.Attrs = ResizeImage(n.Attrs, w)
		}
	}

	return n
}
