package newsportal

import "github.com/daniilsolovey/news-cms/internal/db"

type NewsList []News

type Categories []Category

func NewNewsList(in []db.News) NewsList {
	out := make(NewsList, len(in))
	for i := range in {
		out[i] = NewNewsSummary(&in[i])
	}

	return out
}

func NewCategories(in []db.Category) Categories {
	out := make(Categories, len(in))
	for i := range in {
		out[i] = NewCategory(&in[i])
	}

	return out
}

func (ll NewsList) Titles() []string {
	titles := make([]string, len(ll))
	for i := range ll {
		titles[i] = ll[i].Title
	}

	return titles
}
