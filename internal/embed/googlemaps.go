package embed

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const maxMapQuery = 256

var (
	mapsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(?:https?://)?(?:www\.)?google\.[a-z]{2,3}(?:\.[a-z]{2})?/maps/embed\?pb=([A-Za-z0-9!.:%_*-]+)$`),
		regexp.MustCompile(`^(?:https?://)?(?:www\.)?google\.[a-z]{2,3}(?:\.[a-z]{2})?/maps/place/([^/?#\s]+)(?:/@(-?\d{1,3}(?:\.\d+)?),(-?\d{1,3}(?:\.\d+)?),(\d{1,2}(?:\.\d+)?)z)?`),
		regexp.MustCompile(`^(?:https?://)?(?:www\.)?google\.[a-z]{2,3}(?:\.[a-z]{2})?/maps/@(-?\d{1,3}(?:\.\d+)?),(-?\d{1,3}(?:\.\d+)?),(\d{1,2}(?:\.\d+)?)z`),
		regexp.MustCompile(`^(?:https?://)?(?:maps\.google\.[a-z]{2,3}(?:\.[a-z]{2})?/(?:maps)?|(?:www\.)?google\.[a-z]{2,3}(?:\.[a-z]{2})?/maps/?)\?(?:[^#]*&)?q=([^&#\s]+)`),
	}
	mapsPB    = regexp.MustCompile(`^[A-Za-z0-9!.:%_*-]+$`)
	mapsCoord = regexp.MustCompile(`^-?\d{1,3}(?:\.\d+)?$`)
	mapsFrame = regexp.MustCompile(`^https://(?:www\.google\.com/maps/embed\?pb=[A-Za-z0-9!.:%_*-]+|maps\.google\.com/maps\?q=[^&\s]+(?:&z=\d{1,2})?&output=embed)$`)
)

// GoogleMaps embeds share-dialog embed URLs as they are and turns place,
// coordinate and search links into a query embed.
type GoogleMaps struct{}

func (GoogleMaps) Type() string { return "googleMaps" }

func (GoogleMaps) FrameSource() *regexp.Regexp { return mapsFrame }

func (GoogleMaps) Match(rawURL string) (Attrs, bool) {
	i, m := matchFirst(mapsPatterns, rawURL)
	switch i {
	case 0:
		return Attrs{"pb": m[1], "src": mapsEmbedSrc(m[1])}, true
	case 1:
		query := mapsUnescape(m[1])
		if query == "" {
			return nil, false
		}
		return mapsQueryAttrs(query, m[2], m[3], mapsZoom(m[4])), true
	case 2:
		return mapsQueryAttrs(m[1]+","+m[2], m[1], m[2], mapsZoom(m[3])), true
	case 3:
		query := mapsUnescape(m[1])
		if query == "" {
			return nil, false
		}
		return mapsQueryAttrs(query, "", "", 0), true
	}

	return nil, false
}

func (g GoogleMaps) Render(a Attrs) (Fragment, error) {
	src, ok := g.canonicalSrc(a)
	if !ok {
		return Fragment{}, invalid(g.Type(), "no place")
	}

	return renderFrame(frame{
		Type:       g.Type(),
		Src:        src,
		Width:      px(a.dimension("width", 600, 200, 1920)),
		Height:     px(a.dimension("height", 450, 150, 1080)),
		Title:      "Google Maps",
		Allow:      "fullscreen",
		FullScreen: true,
	})
}

func (g GoogleMaps) canonicalSrc(a Attrs) (string, bool) {
	if pb := a.String("pb"); pb != "" && mapsPB.MatchString(pb) {
		return mapsEmbedSrc(pb), true
	}

	query := a.String("query")
	if query != "" && len(query) <= maxMapQuery {
		zoom, _ := a.Int("zoom")
		return mapsQuerySrc(query, zoom), true
	}

	if m, ok := g.Match(a.String("src")); ok {
		return m.String("src"), true
	}

	return "", false
}

func mapsQueryAttrs(query, lat, lng string, zoom int) Attrs {
	a := Attrs{
		"query": query,
		"src":   mapsQuerySrc(query, zoom),
	}
	if mapsCoord.MatchString(lat) && mapsCoord.MatchString(lng) {
		a["lat"] = lat
		a["lng"] = lng
	}
	if zoom > 0 {
		a["zoom"] = zoom
	}

	return a
}

func mapsEmbedSrc(pb string) string {
	return "https://www.google.com/maps/embed?pb=" + pb
}

func mapsQuerySrc(query string, zoom int) string {
	src := "https://maps.google.com/maps?q=" + url.QueryEscape(query)
	if zoom > 0 {
		src += "&z=" + strconv.Itoa(clamp(zoom, 1, 21))
	}

	return src + "&output=embed"
}

func mapsZoom(value string) int {
	if value == "" {
		return 0
	}
	z, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}

	return clamp(int(z), 1, 21)
}

func mapsUnescape(value string) string {
	unescaped, err := url.QueryUnescape(value)
	if err != nil {
		return ""
	}
	unescaped = strings.TrimSpace(unescaped)
	if len(unescaped) > maxMapQuery {
		return ""
	}

	return unescaped
}
