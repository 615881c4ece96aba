package embed

import (
	"regexp"
)

var (
	vimeoPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(?:https?://)?(?:www\.)?vimeo\.com/(?:channels/[A-Za-z0-9_-]+/|groups/[A-Za-z0-9_-]+/videos/|album/\d+/video/|video/)?(\d{6,12})(?:/([0-9a-f]{6,20}))?(?:[/?#]|$)`),
		regexp.MustCompile(`^(?:https?://)?player\.vimeo\.com/video/(\d{6,12})(?:\?(?:[^#]*&)?h=([0-9a-f]{6,20}))?(?:[?&#]|$)`),
	}
	vimeoID    = regexp.MustCompile(`^\d{6,12}$`)
	vimeoHash  = regexp.MustCompile(`^[0-9a-f]{6,20}$`)
	vimeoFrame = regexp.MustCompile(`^https://player\.vimeo\.com/video/\d{6,12}(?:\?h=[0-9a-f]{6,20})?$`)
)

// Vimeo embeds public and unlisted videos. The hash of an unlisted video is
// kept, the player refuses to play it otherwise.
type Vimeo struct{}

func (Vimeo) Type() string { return "vimeo" }

func (Vimeo) FrameSource() *regexp.Regexp { return vimeoFrame }

func (Vimeo) Match(rawURL string) (Attrs, bool) {
	_, m := matchFirst(vimeoPatterns, rawURL)
	if m == nil {
		return nil, false
	}

	return Attrs{
		"videoId": m[1],
		"hash":    m[2],
		"src":     vimeoSrc(m[1], m[2]),
	}, true
}

func (v Vimeo) Render(a Attrs) (Fragment, error) {
	id, hash := a.String("videoId"), a.String("hash")
	if !vimeoID.MatchString(id) || (hash != "" && !vimeoHash.MatchString(hash)) {
		m, ok := v.Match(a.String("src"))
		if !ok {
			return Fragment{}, invalid(v.Type(), "no video id")
		}
		id, hash = m.String("videoId"), m.String("hash")
	}

	return renderFrame(frame{
		Type:       v.Type(),
		Src:        vimeoSrc(id, hash),
		Width:      px(a.dimension("width", 640, 200, 1920)),
		Height:     px(a.dimension("height", 360, 120, 1080)),
		Title:      "Vimeo video player",
		Allow:      "autoplay; fullscreen; picture-in-picture",
		FullScreen: true,
	})
}

func vimeoSrc(id, hash string) string {
	src := "https://player.vimeo.com/video/" + id
	if hash != "" {
		src += "?h=" + hash
	}

	return src
}
