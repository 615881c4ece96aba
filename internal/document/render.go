package document

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/daniilsolovey/news-cms/internal/embed"
)

// Rendered is a document as HTML. Scripts are the platform loaders the page
// must include for the embeds, each listed once.
type Rendered struct {
	HTML    string   `json:"html"`
	Scripts []string `json:"scripts"`
}

type Renderer struct {
	embeds *embed.Registry
	policy *bluemonday.Policy
}

func NewRenderer(embeds *embed.Registry) *Renderer {
	return &Renderer{
		embeds: embeds,
		policy: NewPolicy(embeds),
	}
}

func (r *Renderer) Embeds() *embed.Registry {
	return r.embeds
}

// Validate checks that every embed node of doc renders.
func (r *Renderer) Validate(doc *Node) error {
	var err error
	doc.Walk(func(n *Node) {
		if err != nil || !r.embeds.IsEmbed(n.Type) {
			return
		}
		if _, renderErr := r.embeds.Render(embed.Node{Type: n.Type, Attrs: n.Attrs}); renderErr != nil {
			err = fmt.Errorf("%s node: %w", n.Type, renderErr)
		}
	})

	return err
}

// Render turns doc into sanitized HTML. Embeds that fail to render are
// left out.
func (r *Renderer) Render(doc *Node) Rendered {
	w := &writer{
		embeds:  r.embeds,
		scripts: []string{},
		seen:    map[string]struct{}{},
	}
	w.node(doc)

	return Rendered{
		HTML:    r.policy.Sanitize(w.buf.String()),
		Scripts: w.scripts,
	}
}

type writer struct {
	buf     strings.Builder
	embeds  *embed.Registry
	scripts []string
	seen    map[string]struct{}
}

func (w *writer) node(n *Node) {
	switch n.Type {
	case TypeDoc:
		w.children(n)
	case "paragraph":
		w.wrap("p", n)
	case "heading":
		level, _ := embed.Attrs(n.Attrs).Int("level")
		if level < 1 || level > 6 {
			level = 2
		}
		w.wrap("h"+strconv.Itoa(level), n)
	case "text":
		w.text(n)
	case "hardBreak":
		w.buf.WriteString("<br>")
	case "horizontalRule":
		w.buf.WriteString("<hr>")
	case "blockquote":
		w.wrap("blockquote", n)
	case "bulletList":
		w.wrap("ul", n)
	case "orderedList":
		start, _ := embed.Attrs(n.Attrs).Int("start")
		if start > 1 {
			w.buf.WriteString(`<ol start="` + strconv.Itoa(start) + `">`)
		} else {
			w.buf.WriteString("<ol>")
		}
		w.children(n)
		w.buf.WriteString("</ol>")
	case "listItem":
		w.wrap("li", n)
	case "codeBlock":
		w.codeBlock(n)
	default:
		if w.embeds.IsEmbed(n.Type) {
			w.embed(n)
			return
		}
		w.children(n)
	}
}

func (w *writer) children(n *Node) {
	for i := range n.Content {
		w.node(&n.Content[i])
	}
}

func (w *writer) wrap(tag string, n *Node) {
	w.buf.WriteString("<" + tag + ">")
	w.children(n)
	w.buf.WriteString("</" + tag + ">")
}

func (w *writer) text(n *Node) {
	var closing []string
	for _, m := range n.Marks {
		open, closeTag, ok := markTags(m)
		if !ok {
			continue
		}
		w.buf.WriteString(open)
		closing = append(closing, closeTag)
	}

	w.buf.WriteString(html.EscapeString(n.Text))

	for i := len(closing) - 1; i >= 0; i-- {
		w.buf.WriteString(closing[i])
	}
}

func (w *writer) codeBlock(n *Node) {
	lang := embed.Attrs(n.Attrs).String("language")
	if lang != "" {
		w.buf.WriteString(`<pre><code class="language-` + html.EscapeString(lang) + `">`)
	} else {
		w.buf.WriteString("<pre><code>")
	}
	for _, c := range n.Content {
		w.buf.WriteString(html.EscapeString(c.Text))
	}
	w.buf.WriteString("</code></pre>")
}

func (w *writer) embed(n *Node) {
	fragment, err := w.embeds.Render(embed.Node{Type: n.Type, Attrs: n.Attrs})
	if err != nil {
		return
	}

	w.buf.WriteString(string(fragment.HTML))
	if fragment.Script == "" {
		return
	}
	if _, ok := w.seen[fragment.Script]; !ok {
		w.seen[fragment.Script] = struct{}{}
		w.scripts = append(w.scripts, fragment.Script)
	}
}

var simpleMarks = map[string]string{
	"bold":        "strong",
	"italic":      "em",
	"strike":      "s",
	"underline":   "u",
	"code":        "code",
	"highlight":   "mark",
	"subscript":   "sub",
	"superscript": "sup",
}

func markTags(m Mark) (string, string, bool) {
	if tag, ok := simpleMarks[m.Type]; ok {
		return "<" + tag + ">", "</" + tag + ">", true
	}
	if m.Type != "link" {
		return "", "", false
	}

	href := embed.Attrs(m.Attrs).String("href")
	if href == "" {
		return "", "", false
	}

	return `<a href="` + html.EscapeString(href) + `" target="_blank">`, "</a>", true
}
