package domain

type Gallery struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	MediaNum  int        `json:"nb_media"`
	Thumbnail *Thumbnail `json:"thumbnail,omitempty"`
}

type Color struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Country struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Tag struct {
	Name       string `json:"name"`
	Popularity int    `json:"popularity"`
}

func (t Tag) String() string {
	return t.Name
}

// TagRanking selects which tag ranking getTags returns.
type TagRanking string

const (
	TagRankingUsed     TagRanking = "Used"
	TagRankingSearched TagRanking = "Searched"
)
