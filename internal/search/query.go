package search

import (
	"slices"

	"fotolia/catalog/internal/domain"
)

const (
	paramLanguageID    = "language_id"
	paramWords         = "words"
	paramCreatorID     = "creator_id"
	paramGalleryID     = "gallery_id"
	paramColorName     = "color_name"
	paramCountryID     = "country_id"
	paramMediaID       = "media_id"
	paramModelID       = "model_id"
	paramSerieID       = "serie_id"
	paramSimiliaID     = "similia_id"
	paramFilters       = "filters"
	paramOrder         = "order"
	paramLimit         = "limit"
	paramOffset        = "offset"
	paramThumbnailSize = "thumbnail_size"
	paramDetailLevel   = "detail_level"

	filterOrientation = "orientation"
)

// BuildParams translates options into the getSearchResults request. Numeric ranges are
// not checked; the catalog rejects what it does not accept.
func BuildParams(opts Options, defaultLanguage domain.Language) map[string]interface{} {
	perPage := opts.perPage()
	page := opts.page()

	language := opts.Language
	if language == "" {
		language = defaultLanguage
	}

	params := map[string]interface{}{
		paramLanguageID: language.ID(),
		paramFilters:    buildFilters(opts),
		paramLimit:      perPage,
		paramOffset:     (page-1)*perPage + 1,
	}

	if opts.Words != "" {
		params[paramWords] = opts.Words
	}

	setID(params, paramCreatorID, opts.CreatorID)
	setID(params, paramMediaID, opts.MediaID)
	setID(params, paramModelID, opts.ModelID)
	setID(params, paramSerieID, opts.SerieID)
	setID(params, paramSimiliaID, opts.SimiliaID)

	setCategory(params, domain.CategoryKindRepresentative, opts.RepresentativeCategory)
	setCategory(params, domain.CategoryKindConceptual, opts.ConceptualCategory)

	if opts.Gallery != nil {
		params[paramGalleryID] = opts.Gallery.ID
	}
	if opts.Color != nil && opts.Color.Name != "" {
		params[paramColorName] = opts.Color.Name
	}
	if opts.Country != nil {
		params[paramCountryID] = opts.Country.ID
	}

	order := opts.Order
	if order == "" {
		order = domain.OrderRelevance
	}
	params[paramOrder] = string(order)

	thumbnailSize := opts.ThumbnailSize
	if thumbnailSize == 0 {
		thumbnailSize = domain.ThumbnailMedium
	}
	params[paramThumbnailSize] = int(thumbnailSize)

	if opts.detailedResults() {
		params[paramDetailLevel] = 1
	}

	return params
}

func setID(params map[string]interface{}, key string, id int) {
	if id != 0 {
		params[key] = id
	}
}

// setCategory omits categories of the wrong kind.
func setCategory(params map[string]interface{}, kind domain.CategoryKind, category *domain.Category) {
	if category == nil || category.Kind != kind {
		return
	}
	params[kind.SearchParam()] = category.ID
}

// buildFilters returns every filter key, unrequested flags set to 0.
func buildFilters(opts Options) map[string]interface{} {
	contentTypes := opts.contentTypes()

	filters := make(map[string]interface{}, len(domain.ContentTypes)+len(domain.LicenseCodes)+4)

	for _, contentType := range domain.ContentTypes {
		filters["content_type:"+string(contentType)] = flag(slices.Contains(contentTypes, contentType))
	}

	filters["offensive:2"] = flag(opts.Offensive)
	filters["isolated:on"] = flag(opts.Isolated)
	filters["panoramic:on"] = flag(opts.Panoramic)

	for _, license := range domain.LicenseCodes {
		filters["license_"+license+":on"] = flag(slices.Contains(opts.OnlyLicenses, license))
	}

	orientation := opts.Orientation
	if orientation == "" {
		orientation = domain.OrientationAll
	}
	filters[filterOrientation] = string(orientation)

	return filters
}

func flag(on bool) int {
	if on {
		return 1
	}
	return 0
}
