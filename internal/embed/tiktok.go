package embed

import (
	"regexp"
)

var (
	tiktokPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(?:https?://)?(?:www\.|m\.)?tiktok\.com/@([A-Za-z0-9_.]{1,24})/video/(\d{8,20})(?:[/?#]|$)`),
		regexp.MustCompile(`^(?:https?://)?(?:www\.)?tiktok\.com/embed(?:/v2)?/(\d{8,20})(?:[/?#]|$)`),
		regexp.MustCompile(`^(?:https?://)?(?:www\.|m\.)?tiktok\.com/v/(\d{8,20})(?:\.html)?(?:[/?#]|$)`),
	}
	tiktokID    = regexp.MustCompile(`^\d{8,20}$`)
	tiktokFrame = regexp.MustCompile(`^https://www\.tiktok\.com/embed/v2/\d{8,20}$`)
)

type TikTok struct{}

func (TikTok) Type() string { return "tiktok" }

func (TikTok) FrameSource() *regexp.Regexp { return tiktokFrame }

func (t TikTok) Match(rawURL string) (Attrs, bool) {
	i, m := matchFirst(tiktokPatterns, rawURL)
	switch i {
	case 0:
		return tiktokAttrs(m[1], m[2]), true
	case 1, 2:
		return tiktokAttrs("", m[1]), true
	}

	return nil, false
}

func (t TikTok) Render(a Attrs) (Fragment, error) {
	id := a.String("videoId")
	if !tiktokID.MatchString(id) {
		m, ok := t.Match(a.String("src"))
		if !ok {
			return Fragment{}, invalid(t.Type(), "no video id")
		}
		id = m.String("videoId")
	}

	return renderFrame(frame{
		Type:       t.Type(),
		Src:        tiktokSrc(id),
		Width:      px(a.dimension("width", 340, 200, 1080)),
		Height:     px(a.dimension("height", 700, 300, 1920)),
		Title:      "TikTok video",
		FullScreen: true,
	})
}

func tiktokAttrs(user, id string) Attrs {
	return Attrs{
		"videoId":  id,
		"username": user,
		"src":      tiktokSrc(id),
	}
}

func tiktokSrc(id string) string {
	return "https://www.tiktok.com/embed/v2/" + id
}
