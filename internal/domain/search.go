package domain

// ContentType limits a search to some kinds of media.
type ContentType string

const (
	ContentTypePhoto        ContentType = "photo"
	ContentTypeIllustration ContentType = "illustration"
	ContentTypeVector       ContentType = "vector"
	ContentTypeAll          ContentType = "all"
)

var ContentTypes = []ContentType{
	ContentTypePhoto,
	ContentTypeIllustration,
	ContentTypeVector,
	ContentTypeAll,
}

// Orientation restricts a search to horizontal or vertical media.
type Orientation string

const (
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
	OrientationAll        Orientation = "all"
)

// Order sorts a search result set.
type Order string

const (
	OrderRelevance Order = "relevance"
	OrderPrice     Order = "price_1"      // Price ascending
	OrderCreation  Order = "creation"     // Creation date descending
	OrderViews     Order = "nb_views"     // Views descending
	OrderDownloads Order = "nb_downloads" // Downloads descending
)

// ThumbnailSize is the edge length in pixels of thumbnails in a result set.
type ThumbnailSize int

const (
	ThumbnailSmall  ThumbnailSize = 30
	ThumbnailMedium ThumbnailSize = 110
	ThumbnailLarge  ThumbnailSize = 400 // Watermarked
)

// License codes accepted by the license filters.
const (
	LicenseL         = "L"
	LicenseXL        = "XL"
	LicenseXXL       = "XXL"
	LicenseExtended  = "X"
	LicenseExclusive = "E"
)

var LicenseCodes = []string{
	LicenseL,
	LicenseXL,
	LicenseXXL,
	LicenseExtended,
	LicenseExclusive,
}
