package search

import (
	"context"
	"iter"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Pages holds every page of one logical search. Pages are fetched on first access and
// kept for the lifetime of the sequence; failed fetches are not kept.
type Pages struct {
	searcher *Searcher
	options  Options
	count    int

	mutex sync.Mutex
	pages map[int]*Page
}

func newPages(searcher *Searcher, options Options, count int) *Pages {
	return &Pages{
		searcher: searcher,
		options:  options,
		count:    count,
		pages:    make(map[int]*Page),
	}
}

func (p *Pages) seed(page *Page) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.pages[page.number-1] = page
}

// Len returns the number of pages, computed once from the first fetched page.
func (p *Pages) Len() int {
	return p.count
}

// Cached reports whether page n is already fetched.
func (p *Pages) Cached(n int) bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	_, ok := p.pages[n]
	return ok
}

// At returns page n, counted from 0. Indices outside [0, Len()) are not checked and are
// sent to the catalog as they are.
func (p *Pages) At(ctx context.Context, n int) (*Page, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if page, ok := p.pages[n]; ok {
		return page, nil
	}

	log.Debugf("Fetching page %d of %d", n+1, p.count)

	page, err := p.searcher.fetch(ctx, p.options.WithPage(n+1), p)
	if err != nil {
		return nil, err
	}

	p.pages[n] = page
	return page, nil
}

// All iterates the pages in ascending order, fetching those not yet cached. Iteration
// stops after the first failed fetch, which is yielded with a nil page.
func (p *Pages) All(ctx context.Context) iter.Seq2[*Page, error] {
	return func(yield func(*Page, error) bool) {
		for n := 0; n < p.count; n++ {
			page, err := p.At(ctx, n)
			if !yield(page, err) || err != nil {
				return
			}
		}
	}
}

// ForEach calls fn for every page in ascending order and stops at the first error.
func (p *Pages) ForEach(ctx context.Context, fn func(*Page) error) error {
	for page, err := range p.All(ctx) {
		if err != nil {
			return err
		}
		if err := fn(page); err != nil {
			return err
		}
	}
	return nil
}
