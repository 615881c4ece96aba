package embed

import (
	"bytes"
	"html/template"
	"strconv"
)

const defaultAllow = "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture; web-share"

var templates = template.Must(template.New("embed").Parse(`
{{- define "iframe" -}}
<div data-type="{{.Type}}" class="embed embed-{{.Type}}"><iframe src="{{.Src}}" width="{{.Width}}" height="{{.Height}}" title="{{.Title}}" frameborder="0" loading="lazy" allow="{{.Allow}}"{{if .FullScreen}} allowfullscreen{{end}}></iframe></div>
{{- end -}}
{{- define "tweet" -}}
<div data-type="twitter" data-tweet-id="{{.ID}}" class="embed embed-twitter"><blockquote class="twitter-tweet" data-dnt="true"><a href="{{.URL}}">{{.URL}}</a></blockquote></div>
{{- end -}}
{{- define "image" -}}
<figure data-type="resizableImage" data-align="{{.Align}}" class="embed embed-image"><img src="{{.Src}}" alt="{{.Alt}}"{{if .Title}} title="{{.Title}}"{{end}}{{if .Width}} width="{{.Width}}"{{end}} loading="lazy"></figure>
{{- end -}}
`))

type frame struct {
	Type       string
	Src        string
	Width      string
	Height     string
	Title      string
	Allow      string
	FullScreen bool
}

func px(n int) string {
	return strconv.Itoa(n)
}

func renderFrame(f frame) (Fragment, error) {
	if f.Allow == "" {
		f.Allow = defaultAllow
	}
	html, err := execute("iframe", f)
	if err != nil {
		return Fragment{}, err
	}

	return Fragment{HTML: html}, nil
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil //nolint:gosec // produced by html/template
}
