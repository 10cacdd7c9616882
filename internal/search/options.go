package search

import "fotolia/catalog/internal/domain"

const (
	DefaultPerPage = 50
	MaxPerPage     = 64
	DefaultPage    = 1
)

// Options describes one logical search. Nil pointers and zero values fall back to
// the documented defaults; explicit false or 0 behind a pointer is kept as is.
type Options struct {
	PerPage         *int
	Page            *int
	DetailedResults *bool
	Language        domain.Language      // Empty uses the client language
	ContentTypes    []domain.ContentType // Nil means all content types
	OnlyLicenses    []string

	Words     string
	CreatorID int
	MediaID   int
	ModelID   int
	SerieID   int
	SimiliaID int

	RepresentativeCategory *domain.Category
	ConceptualCategory     *domain.Category
	Gallery                *domain.Gallery
	Color                  *domain.Color
	Country                *domain.Country

	Offensive bool
	Isolated  bool
	Panoramic bool

	Orientation   domain.Orientation
	Order         domain.Order
	ThumbnailSize domain.ThumbnailSize
}

func Int(n int) *int {
	return &n
}

func Bool(b bool) *bool {
	return &b
}

func (o Options) perPage() int {
	if o.PerPage == nil {
		return DefaultPerPage
	}
	return *o.PerPage
}

func (o Options) page() int {
	if o.Page == nil {
		return DefaultPage
	}
	return *o.Page
}

func (o Options) detailedResults() bool {
	if o.DetailedResults == nil {
		return true
	}
	return *o.DetailedResults
}

func (o Options) contentTypes() []domain.ContentType {
	if o.ContentTypes == nil {
		return []domain.ContentType{domain.ContentTypeAll}
	}
	return o.ContentTypes
}

// WithPage returns a copy of the options that requests another page.
func (o Options) WithPage(page int) Options {
	c := o
	c.Page = Int(page)
	if o.PerPage != nil {
		c.PerPage = Int(*o.PerPage)
	}
	if o.DetailedResults != nil {
		c.DetailedResults = Bool(*o.DetailedResults)
	}
	if o.ContentTypes != nil {
		c.ContentTypes = append([]domain.ContentType{}, o.ContentTypes...)
	}
	if o.OnlyLicenses != nil {
		c.OnlyLicenses = append([]string{}, o.OnlyLicenses...)
	}
	return c
}
