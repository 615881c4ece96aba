package embed

import (
	"fmt"
	"regexp"
)

const twitterScript = "https://platform.twitter.com/widgets.js"

var (
	twitterPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(?:https?://)?(?:www\.|mobile\.)?(?:twitter|x)\.com/([A-Za-z0-9_]{1,15})/status(?:es)?/(\d{1,20})(?:[/?#]|$)`),
		regexp.MustCompile(`^(?:https?://)?(?:www\.|mobile\.)?(?:twitter|x)\.com/i/web/status/(\d{1,20})(?:[/?#]|$)`),
		regexp.MustCompile(`^(?:https?://)?platform\.twitter\.com/embed/Tweet\.html\?(?:[^#]*&)?id=(\d{1,20})(?:[&#]|$)`),
	}
	tweetID         = regexp.MustCompile(`^\d{1,20}$`)
	twitterUsername = regexp.MustCompile(`^[A-Za-z0-9_]{1,15}$`)
)

// Twitter embeds posts from twitter.com and x.com through the widgets script.
type Twitter struct{}

func (Twitter) Type() string { return "twitter" }

func (Twitter) FrameSource() *regexp.Regexp { return nil }

func (t Twitter) Match(rawURL string) (Attrs, bool) {
	i, m := matchFirst(twitterPatterns, rawURL)
	switch i {
	case 0:
		return t.attrs(m[1], m[2]), true
	case 1, 2:
		return t.attrs("", m[1]), true
	}

	return nil, false
}

func (t Twitter) Render(a Attrs) (Fragment, error) {
	id, user := a.String("tweetId"), a.String("username")
	if !tweetID.MatchString(id) || (user != "" && !twitterUsername.MatchString(user)) {
		m, ok := t.Match(a.String("url"))
		if !ok {
			return Fragment{}, invalid(t.Type(), "no tweet id")
		}
		id, user = m.String("tweetId"), m.String("username")
	}

	html, err := execute("tweet", struct{ ID, URL string }{ID: id, URL: tweetURL(user, id)})
	if err != nil {
		return Fragment{}, err
	}

	return Fragment{HTML: html, Script: twitterScript}, nil
}

func (Twitter) attrs(user, id string) Attrs {
	if user == "i" {
		user = ""
	}

	return Attrs{
		"tweetId":  id,
		"username": user,
		"url":      tweetURL(user, id),
	}
}

func tweetURL(user, id string) string {
	if user == "" {
		return fmt.Sprintf("https://twitter.com/i/status/%s", id)
	}

	return fmt.Sprintf("https://twitter.com/%s/status/%s", user, id)
}
