package search

import (
	"context"

	"fotolia/catalog/internal/domain"
)

// Page is one fetched page of a logical search. It is immutable once returned.
type Page struct {
	number  int
	perPage int
	total   int
	media   []*domain.Medium
	pages   *Pages
}

// Number returns the 1-based page number.
func (p *Page) Number() int {
	return p.number
}

func (p *Page) PerPage() int {
	return p.perPage
}

// Total returns the result count reported for the whole logical search.
func (p *Page) Total() int {
	return p.total
}

// Media returns the media of the page in response order.
func (p *Page) Media() []*domain.Medium {
	return p.media
}

func (p *Page) Len() int {
	return len(p.media)
}

// At returns the i-th medium of the page.
func (p *Page) At(i int) *domain.Medium {
	return p.media[i]
}

// Pages returns the sequence this page belongs to.
func (p *Page) Pages() *Pages {
	return p.pages
}

// Previous returns the preceding page, or nil on the first page.
func (p *Page) Previous(ctx context.Context) (*Page, error) {
	if p == nil || p.pages == nil || p.number <= 1 {
		return nil, nil
	}
	return p.pages.At(ctx, p.number-2)
}

// Next returns the following page, or nil on the last page.
func (p *Page) Next(ctx context.Context) (*Page, error) {
	if p == nil || p.pages == nil || p.number >= p.pages.Len() {
		return nil, nil
	}
	return p.pages.At(ctx, p.number)
}
