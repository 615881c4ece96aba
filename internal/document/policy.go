package document

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/daniilsolovey/news-cms/internal/embed"
)

var (
	embedClass  = regexp.MustCompile(`^embed(?: embed-[A-Za-z]+)?$`)
	tweetClass  = regexp.MustCompile(`^twitter-tweet$`)
	codeClass   = regexp.MustCompile(`^language-[\w+-]+$`)
	lazy        = regexp.MustCompile(`^lazy$`)
	blankTarget = regexp.MustCompile(`^_blank$`)
	frameSize   = regexp.MustCompile(`^(?:\d{1,4}|100%)$`)
	frameAllow  = regexp.MustCompile(`^[a-z; -]+$`)
)

// NewPolicy extends the user generated content policy with the markup the
// embed providers render. Iframes are only kept when their src is one the
// registry produces.
func NewPolicy(embeds *embed.Registry) *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowDataAttributes()
	p.AllowAttrs("class").Matching(embedClass).OnElements("div", "figure")
	p.AllowAttrs("class").Matching(tweetClass).OnElements("blockquote")
	p.AllowAttrs("class").Matching(codeClass).OnElements("code")
	p.AllowAttrs("loading").Matching(lazy).OnElements("img", "iframe")
	p.AllowAttrs("start").Matching(bluemonday.Integer).OnElements("ol")
	p.AllowAttrs("target").Matching(blankTarget).OnElements("a")

	sources := embeds.FrameSources()
	if len(sources) == 0 {
		return p
	}

	p.AllowElements("iframe")
	p.AllowAttrs("src").Matching(anyOf(sources)).OnElements("iframe")
	p.AllowAttrs("width", "height").Matching(frameSize).OnElements("iframe")
	p.AllowAttrs("allow").Matching(frameAllow).OnElements("iframe")
	p.AllowAttrs("frameborder").Matching(bluemonday.Integer).OnElements("iframe")
	p.AllowAttrs("title", "allowfullscreen").OnElements("iframe")

	return p
}

func anyOf(patterns []*regexp.Regexp) *regexp.Regexp {
	parts := make([]string, len(patterns))
	for i, re := range patterns {
		parts[i] = "(?:" + re.String() + ")"
	}

	return regexp.MustCompile(strings.Join(parts, "|"))
}
