package embed

import (
	"fmt"
	"regexp"
)

var (
	instagramPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(?:https?://)?(?:www\.)?instagram\.com/(?:[A-Za-z0-9_.]{1,30}/)?(p|reels?|tv)/([A-Za-z0-9_-]{5,40})(?:[/?#]|$)`),
		regexp.MustCompile(`^(?:https?://)?(?:www\.)?instagr\.am/(p|reel|tv)/([A-Za-z0-9_-]{5,40})(?:[/?#]|$)`),
	}
	instagramCode  = regexp.MustCompile(`^[A-Za-z0-9_-]{5,40}$`)
	instagramFrame = regexp.MustCompile(`^https://www\.instagram\.com/(?:p|reel|tv)/[A-Za-z0-9_-]{5,40}/embed$`)
)

// Instagram embeds posts, reels and IGTV videos.
type Instagram struct{}

func (Instagram) Type() string { return "instagram" }

func (Instagram) FrameSource() *regexp.Regexp { return instagramFrame }

func (Instagram) Match(rawURL string) (Attrs, bool) {
	_, m := matchFirst(instagramPatterns, rawURL)
	if m == nil {
		return nil, false
	}

	kind := m[1]
	if kind == "reels" {
		kind = "reel"
	}
	url := fmt.Sprintf("https://www.instagram.com/%s/%s/", kind, m[2])

	return Attrs{
		"postId": m[2],
		"kind":   kind,
		"url":    url,
		"src":    url + "embed",
	}, true
}

func (i Instagram) Render(a Attrs) (Fragment, error) {
	code, kind := a.String("postId"), a.String("kind")
	if !instagramCode.MatchString(code) || (kind != "p" && kind != "reel" && kind != "tv") {
		m, ok := i.Match(a.String("url"))
		if !ok {
			return Fragment{}, invalid(i.Type(), "no post code")
		}
		code, kind = m.String("postId"), m.String("kind")
	}

	return renderFrame(frame{
		Type:   i.Type(),
		Src:    fmt.Sprintf("https://www.instagram.com/%s/%s/embed", kind, code),
		Width:  px(a.dimension("width", 400, 320, 800)),
		Height: px(a.dimension("height", 480, 240, 1200)),
		Title:  "Instagram post",
	})
}
