package embed

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
)

var (
	youtubePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(?:https?://)?(?:www\.|m\.|music\.)?youtube\.com/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]{11})(?:[&#]|$)`),
		regexp.MustCompile(`^(?:https?://)?youtu\.be/([A-Za-z0-9_-]{11})(?:[?#]|$)`),
		regexp.MustCompile(`^(?:https?://)?(?:www\.|m\.)?youtube(?:-nocookie)?\.com/(?:embed|shorts|live|v)/([A-Za-z0-9_-]{11})(?:[/?#]|$)`),
	}
	youtubeID        = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	youtubeTimestamp = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s?)?$`)
	youtubeFrame     = regexp.MustCompile(`^https://www\.youtube(?:-nocookie)?\.com/embed/[A-Za-z0-9_-]{11}(?:\?start=\d+)?$`)
)

// YouTube embeds videos, shorts and live streams. NoCookie switches the
// player to the privacy-enhanced host.
type YouTube struct {
	NoCookie bool
}

func (YouTube) Type() string { return "youtube" }

func (y YouTube) FrameSource() *regexp.Regexp { return youtubeFrame }

func (y YouTube) Match(rawURL string) (Attrs, bool) {
	_, m := matchFirst(youtubePatterns, rawURL)
	if m == nil {
		return nil, false
	}

	return y.attrs(m[1], youtubeStart(rawURL)), true
}

func (y YouTube) Render(a Attrs) (Fragment, error) {
	id := a.String("videoId")
	start, _ := a.Int("start")
	if !youtubeID.MatchString(id) {
		m, ok := y.Match(a.String("src"))
		if !ok {
			return Fragment{}, invalid(y.Type(), "no video id")
		}
		id = m.String("videoId")
		start, _ = m.Int("start")
	}

	return renderFrame(frame{
		Type:       y.Type(),
		Src:        y.src(id, start),
		Width:      px(a.dimension("width", 640, 200, 1920)),
		Height:     px(a.dimension("height", 480, 120, 1080)),
		Title:      "YouTube video player",
		FullScreen: true,
	})
}

func (y YouTube) attrs(id string, start int) Attrs {
	return Attrs{
		"videoId": id,
		"start":   start,
		"src":     y.src(id, start),
		"width":   640,
		"height":  480,
	}
}

func (y YouTube) src(id string, start int) string {
	host := "www.youtube.com"
	if y.NoCookie {
		host = "www.youtube-nocookie.com"
	}
	src := fmt.Sprintf("https://%s/embed/%s", host, id)
	if start > 0 {
		src += "?start=" + strconv.Itoa(start)
	}

	return src
}

// youtubeStart reads the t or start parameter from the query or fragment.
func youtubeStart(rawURL string) int {
	u, err := url.Parse(withScheme(rawURL))
	if err != nil {
		return 0
	}

	q := u.Query()
	value := q.Get("t")
	if value == "" {
		value = q.Get("start")
	}
	if value == "" && u.Fragment != "" {
		if fq, err := url.ParseQuery(u.Fragment); err == nil {
			value = fq.Get("t")
		}
	}

	return parseTimestamp(value)
}

// parseTimestamp accepts 90, 90s, 1m30s and 1h2m3s.
func parseTimestamp(value string) int {
	m := youtubeTimestamp.FindStringSubmatch(value)
	if m == nil {
		return 0
	}

	total := 0
	for i, mult := range []int{3600, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0
		}
		total += n * mult
	}

	return total
}
