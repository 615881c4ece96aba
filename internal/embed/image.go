package embed

import (
	"regexp"
	"strconv"
)

const (
	MinImageWidth = 80
	MaxImageWidth = 1200

	maxImageText = 300
)

var imagePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^https?://[^\s"'<>?#]+\.(?:png|jpe?g|gif|webp|avif)(?:\?[^\s"'<>#]*)?$`),
	regexp.MustCompile(`^https?://[^\s"'<>?#]+/storage/v1/object/public/[^\s"'<>]+$`),
}

// Image is the resizable image node. Its width is chosen in the editor by
// dragging and kept within [MinImageWidth, MaxImageWidth].
type Image struct{}

func (Image) Type() string { return "resizableImage" }

func (Image) FrameSource() *regexp.Regexp { return nil }

func (Image) Match(rawURL string) (Attrs, bool) {
	if i, _ := matchFirst(imagePatterns, rawURL); i < 0 {
		return nil, false
	}

	return Attrs{
		"src":   rawURL,
		"alt":   "",
		"title": "",
		"align": "center",
	}, true
}

func (img Image) Render(a Attrs) (Fragment, error) {
	src := a.String("src")
	if i, _ := matchFirst(imagePatterns, src); i < 0 {
		return Fragment{}, invalid(img.Type(), "src is not an image url")
	}

	width := ""
	if w, ok := a.Int("width"); ok && w > 0 {
		width = strconv.Itoa(clamp(w, MinImageWidth, MaxImageWidth))
	}

	html, err := execute("image", struct {
		Src, Alt, Title, Width, Align string
	}{
		Src:   src,
		Alt:   truncate(a.String("alt"), maxImageText),
		Title: truncate(a.String("title"), maxImageText),
		Width: width,
		Align: imageAlign(a.String("align")),
	})
	if err != nil {
		return Fragment{}, err
	}

	return Fragment{HTML: html}, nil
}

// ResizeImage returns a copy of a with the width clamped into the allowed
// range.
func ResizeImage(a Attrs, width int) Attrs {
	c := a.clone()
	c["width"] = clamp(width, MinImageWidth, MaxImageWidth)

	return c
}

func imageAlign(align string) string {
	switch align {
	case "left", "center", "right":
		return align
	}

	return "center"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n])
}
