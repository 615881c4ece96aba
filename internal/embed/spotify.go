package embed

import (
	"fmt"
	"regexp"
)

var (
	spotifyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(?:https?://)?open\.spotify\.com/(?:intl-[a-z]{2}(?:-[A-Za-z]{2})?/)?(?:embed/)?(track|album|playlist|episode|show|artist)/([A-Za-z0-9]{22})(?:[/?#]|$)`),
		regexp.MustCompile(`^spotify:(track|album|playlist|episode|show|artist):([A-Za-z0-9]{22})$`),
	}
	spotifyID    = regexp.MustCompile(`^[A-Za-z0-9]{22}$`)
	spotifyKind  = regexp.MustCompile(`^(?:track|album|playlist|episode|show|artist)$`)
	spotifyFrame = regexp.MustCompile(`^https://open\.spotify\.com/embed/(?:track|album|playlist|episode|show|artist)/[A-Za-z0-9]{22}$`)
)

// Spotify embeds tracks, albums, playlists, podcast shows and episodes.
type Spotify struct{}

func (Spotify) Type() string { return "spotify" }

func (Spotify) FrameSource() *regexp.Regexp { return spotifyFrame }

func (Spotify) Match(rawURL string) (Attrs, bool) {
	_, m := matchFirst(spotifyPatterns, rawURL)
	if m == nil {
		return nil, false
	}

	return Attrs{
		"kind":      m[1],
		"spotifyId": m[2],
		"src":       spotifySrc(m[1], m[2]),
		"height":    spotifyHeight(m[1]),
	}, true
}

func (s Spotify) Render(a Attrs) (Fragment, error) {
	kind, id := a.String("kind"), a.String("spotifyId")
	if !spotifyKind.MatchString(kind) || !spotifyID.MatchString(id) {
		m, ok := s.Match(a.String("src"))
		if !ok {
			return Fragment{}, invalid(s.Type(), "no spotify id")
		}
		kind, id = m.String("kind"), m.String("spotifyId")
	}

	return renderFrame(frame{
		Type:   s.Type(),
		Src:    spotifySrc(kind, id),
		Width:  "100%",
		Height: px(a.dimension("height", spotifyHeight(kind), 80, 1000)),
		Title:  "Spotify player",
		Allow:  "autoplay; clipboard-write; encrypted-media; fullscreen; picture-in-picture",
	})
}

func spotifySrc(kind, id string) string {
	return fmt.Sprintf("https://open.spotify.com/embed/%s/%s", kind, id)
}

// spotifyHeight is the compact player for single items, the list player
// otherwise.
func spotifyHeight(kind string) int {
	if kind == "track" || kind == "episode" {
		return 152
	}

	return 352
}
