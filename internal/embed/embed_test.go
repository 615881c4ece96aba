package embed

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Resolve(t *testing.T) {
	registry := Default()

	tests := []struct {
		name     string
		url      string
		wantType string
		want     Attrs
	}{
		{
			name:     "youtube watch url",
			url:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantType: "youtube",
			want:     Attrs{"videoId": "dQw4w9WgXcQ", "start": 0, "src": "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		},
		{
			name:     "youtube short link with seconds",
			url:      "https://youtu.be/dQw4w9WgXcQ?t=90",
			wantType: "youtube",
			want:     Attrs{"videoId": "dQw4w9WgXcQ", "start": 90, "src": "https://www.youtube.com/embed/dQw4w9WgXcQ?start=90"},
		},
		{
			name:     "youtube watch url with extra params and minutes",
			url:      "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ&t=1m30s",
			wantType: "youtube",
			want:     Attrs{"videoId": "dQw4w9WgXcQ", "start": 90},
		},
		{
			name:     "youtube shorts without scheme",
			url:      "youtube.com/shorts/dQw4w9WgXcQ",
			wantType: "youtube",
			want:     Attrs{"videoId": "dQw4w9WgXcQ"},
		},
		{
			name:     "youtube embed url with start",
			url:      "https://www.youtube.com/embed/dQw4w9WgXcQ?start=42",
			wantType: "youtube",
			want:     Attrs{"videoId": "dQw4w9WgXcQ", "start": 42},
		},
		{
			name:     "tweet on twitter.com",
			url:      "https://twitter.com/jack/status/20",
			wantType: "twitter",
			want:     Attrs{"tweetId": "20", "username": "jack", "url": "https://twitter.com/jack/status/20"},
		},
		{
			name:     "post on x.com with tracking",
			url:      "https://x.com/NASA/status/1790000000000000000?s=20",
			wantType: "twitter",
			want:     Attrs{"tweetId": "1790000000000000000", "username": "NASA"},
		},
		{
			name:     "tweet web status without user",
			url:      "https://mobile.twitter.com/i/web/status/1234567890",
			wantType: "twitter",
			want:     Attrs{"tweetId": "1234567890", "username": "", "url": "https://twitter.com/i/status/1234567890"},
		},
		{
			name:     "tweet embed page",
			url:      "https://platform.twitter.com/embed/Tweet.html?dnt=true&id=1234567890",
			wantType: "twitter",
			want:     Attrs{"tweetId": "1234567890"},
		},
		{
			name:     "tiktok video",
			url:      "https://www.tiktok.com/@scout2015/video/6718335390845095173",
			wantType: "tiktok",
			want:     Attrs{"videoId": "6718335390845095173", "username": "scout2015", "src": "https://www.tiktok.com/embed/v2/6718335390845095173"},
		},
		{
			name:     "tiktok embed",
			url:      "https://www.tiktok.com/embed/v2/6718335390845095173",
			wantType: "tiktok",
			want:     Attrs{"videoId": "6718335390845095173", "username": ""},
		},
		{
			name:     "tiktok mobile share",
			url:      "https://m.tiktok.com/v/6718335390845095173.html",
			wantType: "tiktok",
			want:     Attrs{"videoId": "6718335390845095173"},
		},
		{
			name:     "instagram post",
			url:      "https://www.instagram.com/p/CxYz123AbC/",
			wantType: "instagram",
			want:     Attrs{"postId": "CxYz123AbC", "kind": "p", "src": "https://www.instagram.com/p/CxYz123AbC/embed"},
		},
		{
			name:     "instagram reels normalised",
			url:      "https://instagram.com/reels/CxYz123AbC",
			wantType: "instagram",
			want:     Attrs{"kind": "reel", "url": "https://www.instagram.com/reel/CxYz123AbC/"},
		},
		{
			name:     "instagram reel under profile",
			url:      "https://www.instagram.com/natgeo/reel/CxYz123AbC/?igsh=1",
			wantType: "instagram",
			want:     Attrs{"postId": "CxYz123AbC", "kind": "reel"},
		},
		{
			name:     "instagram short domain",
			url:      "instagr.am/p/CxYz123AbC",
			wantType: "instagram",
			want:     Attrs{"postId": "CxYz123AbC"},
		},
		{
			name:     "vimeo public video",
			url:      "https://vimeo.com/76979871",
			wantType: "vimeo",
			want:     Attrs{"videoId": "76979871", "hash": "", "src": "https://player.vimeo.com/video/76979871"},
		},
		{
			name:     "vimeo unlisted video",
			url:      "https://vimeo.com/76979871/8272103f6e",
			wantType: "vimeo",
			want:     Attrs{"hash": "8272103f6e", "src": "https://player.vimeo.com/video/76979871?h=8272103f6e"},
		},
		{
			name:     "vimeo player with hash",
			url:      "https://player.vimeo.com/video/76979871?h=8272103f6e&badge=0",
			wantType: "vimeo",
			want:     Attrs{"videoId": "76979871", "hash": "8272103f6e"},
		},
		{
			name:     "vimeo channel",
			url:      "https://vimeo.com/channels/staffpicks/76979871",
			wantType: "vimeo",
			want:     Attrs{"videoId": "76979871"},
		},
		{
			name:     "spotify track",
			url:      "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC?si=abc",
			wantType: "spotify",
			want:     Attrs{"kind": "track", "spotifyId": "4uLU6hMCjMI75M1A2tKUQC", "height": 152, "src": "https://open.spotify.com/embed/track/4uLU6hMCjMI75M1A2tKUQC"},
		},
		{
			name:     "spotify localised album",
			url:      "https://open.spotify.com/intl-de/album/1DFixLWuPkv3KT3TnV35m3",
			wantType: "spotify",
			want:     Attrs{"kind": "album", "height": 352},
		},
		{
			name:     "spotify uri",
			url:      "spotify:playlist:37i9dQZF1DXcBWIGoYBM5M",
			wantType: "spotify",
			want:     Attrs{"kind": "playlist", "spotifyId": "37i9dQZF1DXcBWIGoYBM5M"},
		},
		{
			name:     "google maps embed",
			url:      "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d2624.99",
			wantType: "googleMaps",
			want:     Attrs{"pb": "!1m18!1m12!1m3!1d2624.99", "src": "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d2624.99"},
		},
		{
			name:     "google maps place",
			url:      "https://www.google.com/maps/place/Eiffel+Tower/@48.8583701,2.2944813,17z/data=!3m1",
			wantType: "googleMaps",
			want: Attrs{
				"query": "Eiffel Tower",
				"lat":   "48.8583701",
				"lng":   "2.2944813",
				"zoom":  17,
				"src":   "https://maps.google.com/maps?q=Eiffel+Tower&z=17&output=embed",
			},
		},
		{
			name:     "google maps coordinates",
			url:      "https://www.google.com/maps/@40.7128,-74.0060,12z",
			wantType: "googleMaps",
			want:     Attrs{"query": "40.7128,-74.0060", "zoom": 12, "src": "https://maps.google.com/maps?q=40.7128%2C-74.0060&z=12&output=embed"},
		},
		{
			name:     "google maps search",
			url:      "https://maps.google.com/?q=Times+Square",
			wantType: "googleMaps",
			want:     Attrs{"query": "Times Square", "src": "https://maps.google.com/maps?q=Times+Square&output=embed"},
		},
		{
			name:     "image url",
			url:      "https://cdn.example.com/photos/cat.JPG",
			wantType: "resizableImage",
			want:     Attrs{"src": "https://cdn.example.com/photos/cat.JPG", "align": "center"},
		},
		{
			name:     "object storage image",
			url:      "  https://files.example.com/storage/v1/object/public/news/cover  ",
			wantType: "resizableImage",
			want:     Attrs{"src": "https://files.example.com/storage/v1/object/public/news/cover"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := registry.Resolve(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, node.Type)
			for key, value := range tt.want {
				assert.Equal(t, value, node.Attrs[key], "attribute %q", key)
			}
		})
	}
}

func TestRegistry_Resolve_Unsupported(t *testing.T) {
	registry := Default()

	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"plain page", "https://example.com/article.html"},
		{"youtube id too short", "https://www.youtube.com/watch?v=short"},
		{"youtube id too long", "https://youtu.be/dQw4w9WgXcQX"},
		{"youtube channel", "https://www.youtube.com/channel/UCuAXFkgsw1L7xaCfnd5JJOw"},
		{"twitter profile", "https://twitter.com/jack"},
		{"tiktok short link", "https://vm.tiktok.com/ZMabc/"},
		{"instagram profile", "https://www.instagram.com/natgeo/"},
		{"vimeo page", "https://vimeo.com/about"},
		{"spotify user", "https://open.spotify.com/user/spotify"},
		{"google search", "https://www.google.com/search?q=maps"},
		{"javascript image", "javascript:alert(1).png"},
		{"too long", "https://youtu.be/dQw4w9WgXcQ?x=" + strings.Repeat("a", MaxURLLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := registry.Resolve(tt.url)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsupportedURL))
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := map[string]int{
		"":       0,
		"90":     90,
		"90s":    90,
		"1m":     60,
		"1m30s":  90,
		"1h2m3s": 3723,
		"abc":    0,
	}

	for value, want := range tests {
		assert.Equal(t, want, parseTimestamp(value), "timestamp %q", value)
	}
}

func TestRegistry_Render(t *testing.T) {
	registry := Default()

	t.Run("YouTubeFromResolvedNode", func(t *testing.T) {
		node, err := registry.Resolve("https://youtu.be/dQw4w9WgXcQ?t=90")
		require.NoError(t, err)

		fragment, err := registry.Render(node)
		require.NoError(t, err)
		html := string(fragment.HTML)
		assert.Contains(t, html, `<iframe src="https://www.youtube.com/embed/dQw4w9WgXcQ?start=90"`)
		assert.Contains(t, html, `width="640"`)
		assert.Contains(t, html, "allowfullscreen")
		assert.Empty(t, fragment.Script)
	})

	t.Run("StoredSrcIsNotTrusted", func(t *testing.T) {
		fragment, err := registry.Render(Node{Type: "youtube", Attrs: Attrs{
			"videoId": "dQw4w9WgXcQ",
			"src":     "https://evil.example.com/",
		}})
		require.NoError(t, err)
		assert.Contains(t, string(fragment.HTML), "https://www.youtube.com/embed/dQw4w9WgXcQ")
		assert.NotContains(t, string(fragment.HTML), "evil.example.com")
	})

	t.Run("FallsBackToSrcWithoutID", func(t *testing.T) {
		fragment, err := registry.Render(Node{Type: "youtube", Attrs: Attrs{
			"src": "https://www.youtube.com/embed/dQw4w9WgXcQ",
		}})
		require.NoError(t, err)
		assert.Contains(t, string(fragment.HTML), "https://www.youtube.com/embed/dQw4w9WgXcQ")
	})

	t.Run("TamperedAttributesAreRejected", func(t *testing.T) {
		_, err := registry.Render(Node{Type: "youtube", Attrs: Attrs{
			"videoId": `x"><script>alert(1)</script>`,
			"src":     "javascript:alert(1)",
		}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidAttrs))
	})

	t.Run("DimensionsAreClamped", func(t *testing.T) {
		fragment, err := registry.Render(Node{Type: "vimeo", Attrs: Attrs{
			"videoId": "76979871",
			"width":   float64(5000),
			"height":  "10",
		}})
		require.NoError(t, err)
		assert.Contains(t, string(fragment.HTML), `width="1920"`)
		assert.Contains(t, string(fragment.HTML), `height="120"`)
	})

	t.Run("TweetNeedsWidgetScript", func(t *testing.T) {
		fragment, err := registry.Render(Node{Type: "twitter", Attrs: Attrs{"tweetId": "20", "username": "jack"}})
		require.NoError(t, err)
		assert.Equal(t, twitterScript, fragment.Script)
		assert.Contains(t, string(fragment.HTML), `class="twitter-tweet"`)
		assert.Contains(t, string(fragment.HTML), `href="https://twitter.com/jack/status/20"`)
	})

	t.Run("SpotifyUsesFullWidth", func(t *testing.T) {
		fragment, err := registry.Render(Node{Type: "spotify", Attrs: Attrs{"kind": "episode", "spotifyId": "4uLU6hMCjMI75M1A2tKUQC"}})
		require.NoError(t, err)
		assert.Contains(t, string(fragment.HTML), `width="100%"`)
		assert.Contains(t, string(fragment.HTML), `height="152"`)
	})

	t.Run("GoogleMapsFromQuery", func(t *testing.T) {
		fragment, err := registry.Render(Node{Type: "googleMaps", Attrs: Attrs{"query": "Times Square"}})
		require.NoError(t, err)
		assert.Contains(t, string(fragment.HTML), "https://maps.google.com/maps?q=Times")
	})

	t.Run("ImageAliasAndClamp", func(t *testing.T) {
		fragment, err := registry.Render(Node{Type: "image", Attrs: Attrs{
			"src":   "https://cdn.example.com/a.png",
			"alt":   "A cat",
			"width": 5000,
			"align": "sideways",
		}})
		require.NoError(t, err)
		html := string(fragment.HTML)
		assert.Contains(t, html, `src="https://cdn.example.com/a.png"`)
		assert.Contains(t, html, `alt="A cat"`)
		assert.Contains(t, html, `width="1200"`)
		assert.Contains(t, html, `data-align="center"`)
		assert.Contains(t, html, `loading="lazy"`)
	})

	t.Run("ImageWithScriptSrcIsRejected", func(t *testing.T) {
		_, err := registry.Render(Node{Type: "resizableImage", Attrs: Attrs{"src": "javascript:alert(1).png"}})
		assert.True(t, errors.Is(err, ErrInvalidAttrs))
	})

	t.Run("UnknownType", func(t *testing.T) {
		_, err := registry.Render(Node{Type: "myspace"})
		assert.True(t, errors.Is(err, ErrUnknownType))
	})
}

func TestRegistry_IsEmbedAndFrameSources(t *testing.T) {
	registry := Default()

	assert.True(t, registry.IsEmbed("youtube"))
	assert.True(t, registry.IsEmbed("image"))
	assert.False(t, registry.IsEmbed("paragraph"))
	assert.Len(t, registry.FrameSources(), 6)
	assert.Len(t, registry.Providers(), 8)
}

func TestResizeImage(t *testing.T) {
	original := Attrs{"src": "https://cdn.example.com/a.png"}

	assert.Equal(t, MinImageWidth, ResizeImage(original, 10)["width"])
	assert.Equal(t, 320, ResizeImage(original, 320)["width"])
	assert.Equal(t, MaxImageWidth, ResizeImage(original, 99999)["width"])
	assert.NotContains(t, original, "width")
}

func TestRegistry_ParseHTML(t *testing.T) {
	registry := Default()

	fragment := `
<p>Intro <a href="https://example.com/about">about</a></p>
<iframe src="//www.youtube.com/embed/dQw4w9WgXcQ" width="560" height="315"></iframe>
<blockquote class="twitter-tweet">
  <p>hello <a href="https://twitter.com/hashtag/go">#go</a></p>
  <a href="https://twitter.com/jack/status/20?ref_src=twsrc">March 21, 2006</a>
</blockquote>
<script async src="https://platform.twitter.com/widgets.js"></script>
<img src="https://cdn.example.com/a.png" alt="A cat" width="300">
<p>Watch <a href="https://vimeo.com/76979871">this</a></p>`

	nodes, err := registry.ParseHTML(fragment)
	require.NoError(t, err)
	require.Len(t, nodes, 4)

	assert.Equal(t, "youtube", nodes[0].Type)
	assert.Equal(t, "dQw4w9WgXcQ", nodes[0].Attrs["videoId"])

	assert.Equal(t, "twitter", nodes[1].Type)
	assert.Equal(t, "20", nodes[1].Attrs["tweetId"])

	assert.Equal(t, "resizableImage", nodes[2].Type)
	assert.Equal(t, "A cat", nodes[2].Attrs["alt"])
	assert.Equal(t, 300, nodes[2].Attrs["width"])

	assert.Equal(t, "vimeo", nodes[3].Type)
}

func TestRegistry_ParseHTML_NothingFound(t *testing.T) {
	nodes, err := Default().ParseHTML("<p>just text</p>")
	require.NoError(t, err)
	assert.NotNil(t, nodes)
	assert.Empty(t, nodes)
}

func TestRegistry_ParseHTML_PlainQuoteLinks(t *testing.T) {
	fragment := `
<blockquote><p>As shown in <a href="https://youtu.be/dQw4w9WgXcQ">the video</a></p></blockquote>
<blockquote class="twitter-tweet"><p><a href="https://twitter.com/hashtag/go">#go</a></p><a href="https://twitter.com/jack/status/20">t</a></blockquote>`

	nodes, err := Default().ParseHTML(fragment)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "youtube", nodes[0].Type)
	assert.Equal(t, "dQw4w9WgXcQ", nodes[0].Attrs["videoId"])
	assert.Equal(t, "twitter", nodes[1].Type)
}
