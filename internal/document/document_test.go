package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/news-cms/internal/embed"
)

const article = `{
  "type": "doc",
  "content": [
    {"type": "heading", "attrs": {"level": 2}, "content": [{"type": "text", "text": "Match report"}]},
    {"type": "paragraph", "content": [
      {"type": "text", "text": "Hello", "marks": [{"type": "bold"}]},
      {"type": "text", "text": " world "},
      {"type": "text", "text": "story", "marks": [{"type": "link", "attrs": {"href": "https://example.com/story"}}]}
    ]},
    {"type": "youtube", "attrs": {"videoId": "dQw4w9WgXcQ", "start": 90}},
    {"type": "twitter", "attrs": {"tweetId": "20", "username": "jack"}},
    {"type": "twitter", "attrs": {"tweetId": "21", "username": "jack"}},
    {"type": "resizableImage", "attrs": {"src": "https://cdn.example.com/a.png", "alt": "cover", "width": 480}},
    {"type": "paragraph", "content": [{"type": "text", "text": "<script>alert(1)</script>"}]}
  ]
}`

func TestParse(t *testing.T) {
	t.Run("ValidDocument", func(t *testing.T) {
		doc, err := Parse([]byte(article))
		require.NoError(t, err)
		assert.Equal(t, TypeDoc, doc.Type)
		assert.Len(t, doc.Content, 7)
	})

	t.Run("RootMustBeDoc", func(t *testing.T) {
		_, err := Parse([]byte(`{"type":"paragraph"}`))
		assert.True(t, errors.Is(err, ErrInvalidDocument))
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		_, err := Parse([]byte(`{"type":`))
		assert.True(t, errors.Is(err, ErrInvalidDocument))
	})
}

func TestRenderer_Render(t *testing.T) {
	renderer := NewRenderer(embed.Default())
	doc, err := Parse([]byte(article))
	require.NoError(t, err)

	rendered := renderer.Render(doc)

	assert.Contains(t, rendered.HTML, "<h2>Match report</h2>")
	assert.Contains(t, rendered.HTML, "<strong>Hello</strong>")
	assert.Contains(t, rendered.HTML, `href="https://example.com/story"`)
	assert.Contains(t, rendered.HTML, "nofollow")
	assert.Contains(t, rendered.HTML, `src="https://www.youtube.com/embed/dQw4w9WgXcQ?start=90"`)
	assert.Contains(t, rendered.HTML, `class="twitter-tweet"`)
	assert.Contains(t, rendered.HTML, `src="https://cdn.example.com/a.png"`)
	assert.Contains(t, rendered.HTML, `width="480"`)
	assert.NotContains(t, rendered.HTML, "<script")
	assert.Equal(t, []string{"https://platform.twitter.com/widgets.js"}, rendered.Scripts)
}

func TestRenderer_Render_DropsInvalidEmbeds(t *testing.T) {
	renderer := NewRenderer(embed.Default())
	doc := &Node{Type: TypeDoc, Content: []Node{
		{Type: "youtube", Attrs: map[string]any{"videoId": "nope", "src": "https://evil.example.com/"}},
		{Type: "paragraph", Content: []Node{{Type: "text", Text: "kept"}}},
	}}

	rendered := renderer.Render(doc)

	assert.NotContains(t, rendered.HTML, "iframe")
	assert.NotContains(t, rendered.HTML, "evil.example.com")
	assert.Contains(t, rendered.HTML, "<p>kept</p>")
	assert.Empty(t, rendered.Scripts)
}

func TestRenderer_Render_ListsAndCode(t *testing.T) {
	renderer := NewRenderer(embed.Default())
	doc := &Node{Type: TypeDoc, Content: []Node{
		{Type: "orderedList", Attrs: map[string]any{"start": float64(3)}, Content: []Node{
			{Type: "listItem", Content: []Node{{Type: "paragraph", Content: []Node{{Type: "text", Text: "third"}}}}},
		}},
		{Type: "codeBlock", Attrs: map[string]any{"language": "go"}, Content: []Node{{Type: "text", Text: "x := 1 < 2"}}},
		{Type: "horizontalRule"},
	}}

	rendered := renderer.Render(doc)

	assert.Contains(t, rendered.HTML, `<ol start="3"><li><p>third</p></li></ol>`)
	assert.Contains(t, rendered.HTML, `<code class="language-go">x := 1 &lt; 2</code>`)
	assert.Contains(t, rendered.HTML, "<hr")
}

func TestRenderer_Validate(t *testing.T) {
	renderer := NewRenderer(embed.Default())

	t.Run("ValidDocument", func(t *testing.T) {
		doc, err := Parse([]byte(article))
		require.NoError(t, err)
		assert.NoError(t, renderer.Validate(doc))
	})

	t.Run("NestedInvalidEmbed", func(t *testing.T) {
		doc := &Node{Type: TypeDoc, Content: []Node{
			{Type: "blockquote", Content: []Node{
				{Type: "spotify", Attrs: map[string]any{"src": "https://open.spotify.com/user/x"}},
			}},
		}}

		err := renderer.Validate(doc)
		require.Error(t, err)
		assert.True(t, errors.Is(err, embed.ErrInvalidAttrs))
		assert.Contains(t, err.Error(), "spotify")
	})
}

func TestPolicy_StripsForeignFrames(t *testing.T) {
	policy := NewPolicy(embed.Default())

	out := policy.Sanitize(`<iframe src="https://evil.example.com/"></iframe><iframe src="https://player.vimeo.com/video/76979871"></iframe>`)

	assert.NotContains(t, out, "evil.example.com")
	assert.Contains(t, out, `src="https://player.vimeo.com/video/76979871"`)
}

func TestFromEmbeds(t *testing.T) {
	doc := FromEmbeds([]embed.Node{
		{Type: "vimeo", Attrs: embed.Attrs{"videoId": "76979871"}},
	})

	require.Len(t, doc.Content, 1)
	assert.Equal(t, TypeDoc, doc.Type)
	assert.Equal(t, "vimeo", doc.Content[0].Type)
	assert.Equal(t, "76979871", doc.Content[0].Attrs["videoId"])
}

func TestPolicy_CodeLanguageClass(t *testing.T) {
	policy := NewPolicy(embed.Default())

	out := policy.Sanitize(`<pre><code class="language-c++">a</code></pre><pre><code class="evil">b</code></pre>`)

	assert.Contains(t, out, `<code class="language-c++">a</code>`)
	assert.Contains(t, out, `<code>b</code>`)
}
