package search

import (
	"testing"

	"fotolia/catalog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var filterKeys = []string{
	"content_type:photo",
	"content_type:illustration",
	"content_type:vector",
	"content_type:all",
	"offensive:2",
	"isolated:on",
	"panoramic:on",
	"license_L:on",
	"license_XL:on",
	"license_XXL:on",
	"license_X:on",
	"license_E:on",
	"orientation",
}

func TestBuildParamsDefaults(t *testing.T) {
	params := BuildParams(Options{}, domain.LanguageGerman)

	assert.Equal(t, 4, params["language_id"])
	assert.Equal(t, 50, params["limit"])
	assert.Equal(t, 1, params["offset"])
	assert.Equal(t, "relevance", params["order"])
	assert.Equal(t, 110, params["thumbnail_size"])
	assert.Equal(t, 1, params["detail_level"])

	for _, key := range []string{"words", "creator_id", "cat1_id", "cat2_id", "gallery_id", "color_name", "country_id", "media_id", "model_id", "serie_id", "similia_id"} {
		assert.NotContains(t, params, key)
	}

	filters := params["filters"].(map[string]interface{})
	assert.Equal(t, 1, filters["content_type:all"])
	assert.Equal(t, 0, filters["content_type:photo"])
	assert.Equal(t, "all", filters["orientation"])
}

func TestBuildParamsOffset(t *testing.T) {
	tests := []struct {
		page    int
		perPage int
		want    int
	}{
		{page: 1, perPage: 50, want: 1},
		{page: 3, perPage: 50, want: 101},
		{page: 2, perPage: 10, want: 11},
		{page: 0, perPage: 10, want: -9},
	}

	for _, tt := range tests {
		params := BuildParams(Options{Page: Int(tt.page), PerPage: Int(tt.perPage)}, domain.DefaultLanguage)
		assert.Equal(t, tt.want, params["offset"], "page %d per page %d", tt.page, tt.perPage)
		assert.Equal(t, tt.perPage, params["limit"])
	}
}

func TestBuildParamsKeepsExplicitFalsyValues(t *testing.T) {
	params := BuildParams(Options{DetailedResults: Bool(false), PerPage: Int(0)}, domain.DefaultLanguage)

	assert.NotContains(t, params, "detail_level")
	assert.Equal(t, 0, params["limit"])
	assert.Equal(t, 1, params["offset"])
}

func TestBuildParamsFilterCompleteness(t *testing.T) {
	optionSets := []Options{
		{},
		{ContentTypes: []domain.ContentType{}},
		{ContentTypes: []domain.ContentType{domain.ContentTypePhoto, domain.ContentTypeVector}},
		{Offensive: true, Isolated: true, Panoramic: true, Orientation: domain.OrientationVertical},
		{OnlyLicenses: []string{"XL", "E", "bogus"}},
	}

	for _, opts := range optionSets {
		filters := BuildParams(opts, domain.DefaultLanguage)["filters"].(map[string]interface{})
		require.Len(t, filters, len(filterKeys))
		for _, key := range filterKeys {
			require.Contains(t, filters, key)
			if key == "orientation" {
				assert.IsType(t, "", filters[key])
				continue
			}
			assert.Contains(t, []interface{}{0, 1}, filters[key], key)
		}
	}
}

func TestBuildParamsFlags(t *testing.T) {
	filters := BuildParams(Options{
		ContentTypes: []domain.ContentType{domain.ContentTypePhoto, domain.ContentTypeVector},
		OnlyLicenses: []string{"XL", "E"},
		Isolated:     true,
		Orientation:  domain.OrientationHorizontal,
	}, domain.DefaultLanguage)["filters"].(map[string]interface{})

	assert.Equal(t, 1, filters["content_type:photo"])
	assert.Equal(t, 0, filters["content_type:illustration"])
	assert.Equal(t, 1, filters["content_type:vector"])
	assert.Equal(t, 0, filters["content_type:all"])
	assert.Equal(t, 1, filters["isolated:on"])
	assert.Equal(t, 0, filters["offensive:2"])
	assert.Equal(t, 1, filters["license_XL:on"])
	assert.Equal(t, 1, filters["license_E:on"])
	assert.Equal(t, 0, filters["license_L:on"])
	assert.Equal(t, "horizontal", filters["orientation"])
}

func TestBuildParamsReferences(t *testing.T) {
	params := BuildParams(Options{
		Language:               domain.LanguageJapanese,
		Words:                  "forest",
		CreatorID:              12,
		SimiliaID:              99,
		RepresentativeCategory: &domain.Category{ID: 100, Kind: domain.CategoryKindRepresentative},
		ConceptualCategory:     &domain.Category{ID: 200, Kind: domain.CategoryKindConceptual},
		Gallery:                &domain.Gallery{ID: 7},
		Color:                  &domain.Color{ID: 3, Name: "green"},
		Country:                &domain.Country{ID: 33},
		Order:                  domain.OrderDownloads,
		ThumbnailSize:          domain.ThumbnailLarge,
	}, domain.DefaultLanguage)

	assert.Equal(t, 9, params["language_id"])
	assert.Equal(t, "forest", params["words"])
	assert.Equal(t, 12, params["creator_id"])
	assert.Equal(t, 99, params["similia_id"])
	assert.Equal(t, 100, params["cat1_id"])
	assert.Equal(t, 200, params["cat2_id"])
	assert.Equal(t, 7, params["gallery_id"])
	assert.Equal(t, "green", params["color_name"])
	assert.Equal(t, 33, params["country_id"])
	assert.Equal(t, "nb_downloads", params["order"])
	assert.Equal(t, 400, params["thumbnail_size"])
}

func TestBuildParamsOmitsMismatchedReferences(t *testing.T) {
	params := BuildParams(Options{
		RepresentativeCategory: &domain.Category{ID: 200, Kind: domain.CategoryKindConceptual},
		ConceptualCategory:     &domain.Category{ID: 100, Kind: domain.CategoryKindRepresentative},
		Color:                  &domain.Color{ID: 3},
	}, domain.DefaultLanguage)

	assert.NotContains(t, params, "cat1_id")
	assert.NotContains(t, params, "cat2_id")
	assert.NotContains(t, params, "color_name")
}

func TestWithPageCopies(t *testing.T) {
	original := Options{PerPage: Int(10), ContentTypes: []domain.ContentType{domain.ContentTypePhoto}}
	copied := original.WithPage(3)

	assert.Equal(t, 1, original.page())
	assert.Equal(t, 3, copied.page())

	*copied.PerPage = 20
	copied.ContentTypes[0] = domain.ContentTypeVector
	assert.Equal(t, 10, original.perPage())
	assert.Equal(t, domain.ContentTypePhoto, original.ContentTypes[0])
}
