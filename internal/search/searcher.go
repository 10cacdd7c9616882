package search

import (
	"context"
	"fmt"

	"fotolia/catalog/internal/client"
	"fotolia/catalog/internal/domain"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

const (
	methodSearchResults = "getSearchResults"
	fieldTotal          = "nb_results"
)

// Searcher runs logical searches against the catalog.
type Searcher struct {
	caller   client.Caller
	language domain.Language
}

// NewSearcher binds searches to a caller. Options without a language use the given one.
func NewSearcher(caller client.Caller, language domain.Language) *Searcher {
	if language == "" {
		language = domain.DefaultLanguage
	}
	return &Searcher{
		caller:   caller,
		language: language,
	}
}

// Search fetches the requested page of a new logical search. The returned page seeds
// the page sequence that every page of this search shares.
func (s *Searcher) Search(ctx context.Context, opts Options) (*Page, error) {
	if s == nil || s.caller == nil {
		return nil, &domain.ConfigurationError{Component: "searcher", Reason: "no remote caller bound"}
	}
	return s.fetch(ctx, opts, nil)
}

func (s *Searcher) fetch(ctx context.Context, opts Options, pages *Pages) (*Page, error) {
	params := BuildParams(opts, s.language)

	log.Debugf("Searching page %d with %d media per page", opts.page(), opts.perPage())

	response, err := s.caller.Call(ctx, methodSearchResults, params)
	if err != nil {
		return nil, err
	}

	record, ok := client.AsRecord(response)
	if !ok {
		return nil, fmt.Errorf("unexpected %s response of type %T", methodSearchResults, response)
	}

	total, err := cast.ToIntE(record[fieldTotal])
	if err != nil {
		return nil, fmt.Errorf("invalid %s in %s response: %w", fieldTotal, methodSearchResults, err)
	}

	entries := client.Entries(record, fieldTotal)
	media := make([]*domain.Medium, 0, len(entries))
	for _, entry := range entries {
		medium, err := client.ParseMedium(entry.Record)
		if err != nil {
			log.Warnf("Skipping search result %s: %v", entry.Key, err)
			continue
		}
		media = append(media, medium)
	}

	page := &Page{
		number:  opts.page(),
		perPage: opts.perPage(),
		total:   total,
		media:   media,
	}

	if pages == nil {
		pages = newPages(s, opts, pageCount(total, page.perPage))
		pages.seed(page)
	}
	page.pages = pages

	return page, nil
}

func pageCount(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
