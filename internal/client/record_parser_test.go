package client

import (
	"testing"

	"fotolia/catalog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntriesOrdering(t *testing.T) {
	response := map[string]interface{}{
		"nb_results": int64(4),
		"10":         map[string]interface{}{"id": int64(10)},
		"2":          map[string]interface{}{"id": int64(2)},
		"beta":       map[string]interface{}{"id": int64(99)},
		"alpha":      map[string]interface{}{"id": int64(98)},
		"note":       "not a record",
	}

	entries := Entries(response, "nb_results")

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		keys = append(keys, entry.Key)
	}
	assert.Equal(t, []string{"2", "10", "alpha", "beta"}, keys)
}

func TestRecordsFromArray(t *testing.T) {
	records := Records([]interface{}{
		map[string]interface{}{"id": int64(1)},
		"skipped",
		map[string]interface{}{"id": int64(2)},
	})
	require.Len(t, records, 2)
	assert.EqualValues(t, 2, records[1]["id"])

	assert.Nil(t, Records("scalar"))
}

func TestParseMedium(t *testing.T) {
	medium, err := ParseMedium(map[string]interface{}{
		"id":                 int64(1001),
		"title":              "Forest path",
		"creator_id":         "55",
		"creator_name":       "jdoe",
		"thumbnail_html_tag": `<img src="http://static.example/1001_110.jpg" width="110" height="73" alt="">`,
		"nb_views":           int64(321),
		"keywords":           "forest, path ,,trees",
		"licenses": []interface{}{
			map[string]interface{}{"name": "L", "price": int64(3)},
			map[string]interface{}{"name": "XL", "price": "5"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1001, medium.ID)
	assert.Equal(t, 55, medium.CreatorID)
	assert.Equal(t, 321, medium.Views)
	assert.Equal(t, []string{"forest", "path", "trees"}, medium.Keywords)
	assert.Equal(t, []domain.License{{Name: "L", Price: 3}, {Name: "XL", Price: 5}}, medium.Licenses)

	require.NotNil(t, medium.Thumbnail)
	assert.Equal(t, "http://static.example/1001_110.jpg", medium.Thumbnail.URL)
	assert.Equal(t, 110, medium.Thumbnail.Width)
	assert.Equal(t, 73, medium.Thumbnail.Height)
}

func TestParseMediumExplicitThumbnailWins(t *testing.T) {
	medium, err := ParseMedium(map[string]interface{}{
		"id":                 int64(7),
		"thumbnail_url":      "http://static.example/explicit.jpg",
		"thumbnail_width":    int64(400),
		"thumbnail_height":   int64(300),
		"thumbnail_html_tag": `<img src="http://static.example/tag.jpg" width="110" height="73">`,
	})
	require.NoError(t, err)
	assert.Equal(t, "http://static.example/explicit.jpg", medium.Thumbnail.URL)
	assert.Equal(t, 400, medium.Thumbnail.Width)
}

func TestParseMediumWithoutID(t *testing.T) {
	_, err := ParseMedium(map[string]interface{}{"title": "orphan"})
	assert.Error(t, err)
}

func TestParseKeywordsList(t *testing.T) {
	keywords := parseKeywords([]interface{}{
		map[string]interface{}{"name": "sky"},
		"cloud",
		map[string]interface{}{"name": ""},
	})
	assert.Equal(t, []string{"sky", "cloud"}, keywords)
}

func TestParseCategoryFallsBackToKey(t *testing.T) {
	parent := &domain.Category{ID: 1, Kind: domain.CategoryKindConceptual}
	category, err := ParseCategory(map[string]interface{}{"name": "Nature"}, "12", domain.CategoryKindConceptual, parent)
	require.NoError(t, err)

	assert.Equal(t, 12, category.ID)
	assert.Equal(t, "12", category.Key)
	assert.Same(t, parent, category.Parent)
}

func TestParseMediumDetails(t *testing.T) {
	details, err := ParseMediumDetails(map[string]interface{}{
		"id":            int64(1001),
		"title":         "Forest path",
		"media_type_id": int64(1),
		"country_id":    int64(33),
		"country_name":  "France",
		"keywords": []interface{}{
			map[string]interface{}{"name": "forest"},
		},
		"cat1_hierarchy": []interface{}{
			map[string]interface{}{"id": int64(100), "name": "Nature"},
			map[string]interface{}{"id": int64(110), "name": "Forests"},
		},
		"licenses_details": map[string]interface{}{
			"L": map[string]interface{}{"width": int64(2000), "height": int64(1333), "dpi": int64(300), "ratio": 1.5, "phrase": "Large"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.MediaTypePhoto, details.MediaType)
	assert.Equal(t, &domain.Country{ID: 33, Name: "France"}, details.Country)
	assert.Equal(t, []string{"forest"}, details.Keywords)
	assert.Nil(t, details.ConceptualCategory)

	require.NotNil(t, details.RepresentativeCategory)
	assert.Equal(t, 110, details.RepresentativeCategory.ID)
	assert.Equal(t, domain.CategoryKindRepresentative, details.RepresentativeCategory.Kind)
	require.NotNil(t, details.RepresentativeCategory.Parent)
	assert.Equal(t, "Nature", details.RepresentativeCategory.Parent.Name)
	assert.Nil(t, details.RepresentativeCategory.Parent.Parent)

	require.Contains(t, details.LicenseDetails, "L")
	assert.Equal(t, 2000, details.LicenseDetails["L"].Width)
	assert.Equal(t, "1.5", details.LicenseDetails["L"].Ratio)
}

func TestParseUserData(t *testing.T) {
	user, err := ParseUserData(map[string]interface{}{
		"id":              int64(8),
		"language_id":     int64(4),
		"nb_credits":      int64(20),
		"credit_value":    1.2,
		"currency_name":   "Euro",
		"currency_symbol": "€",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageGerman, user.Language)
	assert.Equal(t, 20, user.Credits)
	assert.InDelta(t, 1.2, user.CreditValue, 0.0001)

	user, err = ParseUserData(map[string]interface{}{"id": int64(8), "language_id": int64(10)})
	require.NoError(t, err)
	assert.Equal(t, domain.Language(""), user.Language)
}

func TestParseUserStats(t *testing.T) {
	stats, err := ParseUserStats(map[string]interface{}{
		"nb_media_uploaded": int64(12),
		"nb_media_sold":     "4",
		"ranking_absolute":  int64(900),
	})
	require.NoError(t, err)
	assert.Equal(t, &domain.UserStats{MediaUploaded: 12, MediaSold: 4, RankingAbsolute: 900}, stats)
}
