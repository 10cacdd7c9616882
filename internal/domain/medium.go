package domain

// MediaType is the catalog's numeric media type id.
type MediaType int

const (
	MediaTypeUnknown      MediaType = 0
	MediaTypePhoto        MediaType = 1
	MediaTypeIllustration MediaType = 2
	MediaTypeVector       MediaType = 3
)

func (t MediaType) String() string {
	switch t {
	case MediaTypePhoto:
		return "photo"
	case MediaTypeIllustration:
		return "illustration"
	case MediaTypeVector:
		return "vector"
	default:
		return "unknown"
	}
}

type Thumbnail struct {
	URL     string `json:"url"`
	HTMLTag string `json:"html_tag,omitempty"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// License is one license a medium can be bought under.
type License struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// LicenseDetails holds the output dimensions of a license as reported by getMediaData.
type LicenseDetails struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	DPI    int    `json:"dpi"`
	Ratio  string `json:"ratio,omitempty"`
	Phrase string `json:"phrase,omitempty"`
}

// Medium is one media record of a search result.
type Medium struct {
	ID          int        `json:"id"`
	Title       string     `json:"title,omitempty"`
	CreatorID   int        `json:"creator_id,omitempty"`
	CreatorName string     `json:"creator_name,omitempty"`
	Thumbnail   *Thumbnail `json:"thumbnail,omitempty"`
	Views       int        `json:"nb_views,omitempty"`     // Only with detailed results
	Downloads   int        `json:"nb_downloads,omitempty"` // Only with detailed results
	Keywords    []string   `json:"keywords,omitempty"`
	Licenses    []License  `json:"licenses,omitempty"`
}

// MediumDetails is the full record of a medium returned by getMediaData.
type MediumDetails struct {
	Medium

	MediaType              MediaType                 `json:"media_type"`
	Country                *Country                  `json:"country,omitempty"`
	RepresentativeCategory *Category                 `json:"representative_category,omitempty"` // Deepest node, parents linked
	ConceptualCategory     *Category                 `json:"conceptual_category,omitempty"`     // Deepest node, parents linked
	LicenseDetails         map[string]LicenseDetails `json:"licenses_details,omitempty"`
}

// CompImage is the comp (preview) image of a medium.
type CompImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
