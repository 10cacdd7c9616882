package client

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"fotolia/catalog/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-viper/mapstructure/v2"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// Entry is one keyed record of a struct-shaped response.
type Entry struct {
	Key    string
	Record map[string]interface{}
}

// AsRecord returns v as a decoded XML-RPC struct.
func AsRecord(v interface{}) (map[string]interface{}, bool) {
	record, ok := v.(map[string]interface{})
	return record, ok
}

// Entries returns the record-valued members of a struct response ordered by key.
// Numeric keys sort numerically and precede other keys, which sort lexically.
// Members named in skip and members that are not structs are left out.
func Entries(response map[string]interface{}, skip ...string) []Entry {
	skipped := make(map[string]struct{}, len(skip))
	for _, key := range skip {
		skipped[key] = struct{}{}
	}

	entries := make([]Entry, 0, len(response))
	for key, value := range response {
		if _, ok := skipped[key]; ok {
			continue
		}
		record, ok := AsRecord(value)
		if !ok {
			continue
		}
		entries = append(entries, Entry{Key: key, Record: record})
	}

	sort.Slice(entries, func(i, j int) bool {
		return keyLess(entries[i].Key, entries[j].Key)
	})

	return entries
}

// Records returns the records of an array response, or of a struct response in key order.
func Records(response interface{}) []map[string]interface{} {
	switch value := response.(type) {
	case []interface{}:
		records := make([]map[string]interface{}, 0, len(value))
		for _, item := range value {
			if record, ok := AsRecord(item); ok {
				records = append(records, record)
			}
		}
		return records
	case map[string]interface{}:
		entries := Entries(value)
		records := make([]map[string]interface{}, 0, len(entries))
		for _, entry := range entries {
			records = append(records, entry.Record)
		}
		return records
	default:
		return nil
	}
}

func keyLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)

	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

func decodeRecord(record map[string]interface{}, target interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(record)
}

type thumbnailRecord struct {
	URL     string `mapstructure:"thumbnail_url"`
	HTMLTag string `mapstructure:"thumbnail_html_tag"`
	Width   int    `mapstructure:"thumbnail_width"`
	Height  int    `mapstructure:"thumbnail_height"`
}

type mediumRecord struct {
	Thumbnail thumbnailRecord `mapstructure:",squash"`

	ID          int         `mapstructure:"id"`
	Title       string      `mapstructure:"title"`
	CreatorID   int         `mapstructure:"creator_id"`
	CreatorName string      `mapstructure:"creator_name"`
	Views       int         `mapstructure:"nb_views"`
	Downloads   int         `mapstructure:"nb_downloads"`
	Keywords    interface{} `mapstructure:"keywords"`
	Licenses    interface{} `mapstructure:"licenses"`
}

type licenseRecord struct {
	Name  string `mapstructure:"name"`
	Price int    `mapstructure:"price"`
}

// ParseMedium decodes one media record of a search response.
func ParseMedium(record map[string]interface{}) (*domain.Medium, error) {
	var raw mediumRecord
	if err := decodeRecord(record, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode medium: %w", err)
	}

	if raw.ID == 0 {
		return nil, fmt.Errorf("medium record has no id")
	}

	licenses, err := parseLicenses(raw.Licenses)
	if err != nil {
		return nil, fmt.Errorf("medium %d: %w", raw.ID, err)
	}

	return &domain.Medium{
		ID:          raw.ID,
		Title:       raw.Title,
		CreatorID:   raw.CreatorID,
		CreatorName: raw.CreatorName,
		Thumbnail:   parseThumbnail(raw.Thumbnail),
		Views:       raw.Views,
		Downloads:   raw.Downloads,
		Keywords:    parseKeywords(raw.Keywords),
		Licenses:    licenses,
	}, nil
}

func parseLicenses(value interface{}) ([]domain.License, error) {
	records := Records(value)
	if len(records) == 0 {
		return nil, nil
	}

	licenses := make([]domain.License, 0, len(records))
	for _, record := range records {
		var raw licenseRecord
		if err := decodeRecord(record, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode license: %w", err)
		}
		licenses = append(licenses, domain.License{Name: raw.Name, Price: raw.Price})
	}
	return licenses, nil
}

// parseKeywords accepts a comma separated string or a list of {name} records or strings.
func parseKeywords(value interface{}) []string {
	var keywords []string

	switch v := value.(type) {
	case string:
		for _, keyword := range strings.Split(v, ",") {
			if keyword = strings.TrimSpace(keyword); keyword != "" {
				keywords = append(keywords, keyword)
			}
		}
	case []interface{}:
		for _, item := range v {
			var keyword string
			if record, ok := AsRecord(item); ok {
				keyword = cast.ToString(record["name"])
			} else {
				keyword = cast.ToString(item)
			}
			if keyword = strings.TrimSpace(keyword); keyword != "" {
				keywords = append(keywords, keyword)
			}
		}
	}

	return keywords
}

func parseThumbnail(raw thumbnailRecord) *domain.Thumbnail {
	if raw.URL == "" && raw.HTMLTag == "" {
		return nil
	}

	thumbnail := &domain.Thumbnail{
		URL:     raw.URL,
		HTMLTag: raw.HTMLTag,
		Width:   raw.Width,
		Height:  raw.Height,
	}

	if raw.HTMLTag != "" && (thumbnail.URL == "" || thumbnail.Width == 0 || thumbnail.Height == 0) {
		src, width, height, ok := parseThumbnailTag(raw.HTMLTag)
		if ok {
			if thumbnail.URL == "" {
				thumbnail.URL = src
			}
			if thumbnail.Width == 0 {
				thumbnail.Width = width
			}
			if thumbnail.Height == 0 {
				thumbnail.Height = height
			}
		}
	}

	return thumbnail
}

// parseThumbnailTag reads the source and size of the first img element of an HTML fragment.
func parseThumbnailTag(tag string) (src string, width, height int, ok bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(tag))
	if err != nil {
		log.Debugf("Failed to parse thumbnail tag: %v", err)
		return "", 0, 0, false
	}

	img := doc.Find("img").First()
	if img.Length() == 0 {
		return "", 0, 0, false
	}

	src = img.AttrOr("src", "")
	width = cast.ToInt(img.AttrOr("width", "0"))
	height = cast.ToInt(img.AttrOr("height", "0"))

	return src, width, height, true
}

type categoryRecord struct {
	ID   int    `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

// ParseCategory decodes one category record listed under key.
func ParseCategory(record map[string]interface{}, key string, kind domain.CategoryKind, parent *domain.Category) (*domain.Category, error) {
	var raw categoryRecord
	if err := decodeRecord(record, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode category %s: %w", key, err)
	}

	if raw.ID == 0 {
		raw.ID = cast.ToInt(key)
	}

	return &domain.Category{
		ID:     raw.ID,
		Name:   raw.Name,
		Key:    key,
		Kind:   kind,
		Parent: parent,
	}, nil
}

// parseHierarchy links a root-first list of category records and returns the deepest node.
func parseHierarchy(value interface{}, kind domain.CategoryKind) (*domain.Category, error) {
	var current *domain.Category

	for _, record := range Records(value) {
		category, err := ParseCategory(record, cast.ToString(record["id"]), kind, current)
		if err != nil {
			return nil, err
		}
		current = category
	}

	return current, nil
}

type galleryRecord struct {
	Thumbnail thumbnailRecord `mapstructure:",squash"`

	ID       int    `mapstructure:"id"`
	Name     string `mapstructure:"name"`
	MediaNum int    `mapstructure:"nb_media"`
}

// ParseGallery decodes one gallery record.
func ParseGallery(record map[string]interface{}) (*domain.Gallery, error) {
	var raw galleryRecord
	if err := decodeRecord(record, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode gallery: %w", err)
	}

	return &domain.Gallery{
		ID:        raw.ID,
		Name:      raw.Name,
		MediaNum:  raw.MediaNum,
		Thumbnail: parseThumbnail(raw.Thumbnail),
	}, nil
}

// ParseColor decodes one color record.
func ParseColor(record map[string]interface{}) (*domain.Color, error) {
	var raw categoryRecord
	if err := decodeRecord(record, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode color: %w", err)
	}
	return &domain.Color{ID: raw.ID, Name: raw.Name}, nil
}

// ParseCountry decodes one country record.
func ParseCountry(record map[string]interface{}) (*domain.Country, error) {
	var raw categoryRecord
	if err := decodeRecord(record, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode country: %w", err)
	}
	return &domain.Country{ID: raw.ID, Name: raw.Name}, nil
}

type tagRecord struct {
	Name       string `mapstructure:"name"`
	Popularity int    `mapstructure:"popularity"`
}

// ParseTag decodes one tag record.
func ParseTag(record map[string]interface{}) (*domain.Tag, error) {
	var raw tagRecord
	if err := decodeRecord(record, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode tag: %w", err)
	}
	return &domain.Tag{Name: raw.Name, Popularity: raw.Popularity}, nil
}

type mediumDetailsRecord struct {
	MediaTypeID    int         `mapstructure:"media_type_id"`
	CountryID      int         `mapstructure:"country_id"`
	CountryName    string      `mapstructure:"country_name"`
	Representative interface{} `mapstructure:"cat1_hierarchy"`
	Conceptual     interface{} `mapstructure:"cat2_hierarchy"`
	LicenseDetails interface{} `mapstructure:"licenses_details"`
}

type licenseDetailsRecord struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	DPI    int    `mapstructure:"dpi"`
	Ratio  string `mapstructure:"ratio"`
	Phrase string `mapstructure:"phrase"`
}

// ParseMediumDetails decodes a getMediaData response.
func ParseMediumDetails(record map[string]interface{}) (*domain.MediumDetails, error) {
	var raw mediumDetailsRecord
	if err := decodeRecord(record, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode medium details: %w", err)
	}

	medium, err := ParseMedium(record)
	if err != nil {
		return nil, err
	}

	details := &domain.MediumDetails{
		Medium:    *medium,
		MediaType: domain.MediaType(raw.MediaTypeID),
	}

	if raw.CountryID != 0 || raw.CountryName != "" {
		details.Country = &domain.Country{ID: raw.CountryID, Name: raw.CountryName}
	}

	if details.RepresentativeCategory, err = parseHierarchy(raw.Representative, domain.CategoryKindRepresentative); err != nil {
		return nil, err
	}
	if details.ConceptualCategory, err = parseHierarchy(raw.Conceptual, domain.CategoryKindConceptual); err != nil {
		return nil, err
	}

	if licenseRecords, ok := AsRecord(raw.LicenseDetails); ok {
		details.LicenseDetails = make(map[string]domain.LicenseDetails, len(licenseRecords))
		for _, entry := range Entries(licenseRecords) {
			var rawDetails licenseDetailsRecord
			if err := decodeRecord(entry.Record, &rawDetails); err != nil {
				return nil, fmt.Errorf("failed to decode license details %s: %w", entry.Key, err)
			}
			details.LicenseDetails[entry.Key] = domain.LicenseDetails(rawDetails)
		}
	}

	return details, nil
}

// ParseCompImage decodes a getMediaComp response.
func ParseCompImage(record map[string]interface{}) (*domain.CompImage, error) {
	var raw struct {
		URL    string `mapstructure:"url"`
		Width  int    `mapstructure:"width"`
		Height int    `mapstructure:"height"`
	}
	if err := decodeRecord(record, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode comp image: %w", err)
	}
	return &domain.CompImage{URL: raw.URL, Width: raw.Width, Height: raw.Height}, nil
}

type userDataRecord struct {
	ID             int     `mapstructure:"id"`
	LanguageID     int     `mapstructure:"language_id"`
	Credits        int     `mapstructure:"nb_credits"`
	CreditValue    float64 `mapstructure:"credit_value"`
	CurrencyName   string  `mapstructure:"currency_name"`
	CurrencySymbol string  `mapstructure:"currency_symbol"`
}

// ParseUserData decodes a getUserData response. An unknown language id leaves Language empty.
func ParseUserData(record map[string]interface{}) (*domain.UserData, error) {
	var raw userDataRecord
	if err := decodeRecord(record, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode user data: %w", err)
	}

	language, err := domain.LanguageFromID(raw.LanguageID)
	if err != nil {
		log.Debugf("User %d has unknown language id %d", raw.ID, raw.LanguageID)
	}

	return &domain.UserData{
		ID:             raw.ID,
		Language:       language,
		Credits:        raw.Credits,
		CreditValue:    raw.CreditValue,
		CurrencyName:   raw.CurrencyName,
		CurrencySymbol: raw.CurrencySymbol,
	}, nil
}

// ParseUserStats decodes a getUserStats response.
func ParseUserStats(record map[string]interface{}) (*domain.UserStats, error) {
	var raw struct {
		MediaUploaded   int `mapstructure:"nb_media_uploaded"`
		MediaAccepted   int `mapstructure:"nb_media_accepted"`
		MediaPurchased  int `mapstructure:"nb_media_purchased"`
		MediaSold       int `mapstructure:"nb_media_sold"`
		RankingAbsolute int `mapstructure:"ranking_absolute"`
		RankingRelative int `mapstructure:"ranking_relative"`
	}
	if err := decodeRecord(record, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode user stats: %w", err)
	}

	stats := domain.UserStats(raw)
	return &stats, nil
}
