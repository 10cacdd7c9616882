package main

import (
	"encoding/json"
	"io"

	"fotolia/catalog/internal/domain"
	"fotolia/catalog/internal/search"
)

type pageOutput struct {
	Page    int              `json:"page"`
	Pages   int              `json:"pages"`
	PerPage int              `json:"per_page"`
	Total   int              `json:"total"`
	Media   []*domain.Medium `json:"media"`
}

func newPageOutput(page *search.Page) pageOutput {
	return pageOutput{
		Page:    page.Number(),
		Pages:   page.Pages().Len(),
		PerPage: page.PerPage(),
		Total:   page.Total(),
		Media:   page.Media(),
	}
}

// writeLines writes every value as one JSON document per line.
func writeLines[T any](w io.Writer, values ...T) error {
	encoder := json.NewEncoder(w)
	for _, value := range values {
		if err := encoder.Encode(value); err != nil {
			return err
		}
	}
	return nil
}
