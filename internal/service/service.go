package service

import (
	"context"
	"fmt"
	"sync"

	"fotolia/catalog/internal/category"
	"fotolia/catalog/internal/client"
	"fotolia/catalog/internal/domain"
	"fotolia/catalog/internal/search"
	"fotolia/catalog/internal/state"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	caller   client.Caller
	language domain.Language
	searcher *search.Searcher
	sessions state.SessionStore

	categoriesMutex sync.Mutex
	categories      map[domain.CategoryKind]*category.Cache

	dataMutex  sync.Mutex
	mediaCount *int
	userData   *domain.UserData
	userStats  *domain.UserStats
}

func NewService(caller client.Caller, language domain.Language, sessions state.SessionStore) *Service {
	if language == "" {
		language = domain.DefaultLanguage
	}
	if sessions == nil {
		sessions = state.NewMemorySessionStore()
	}

	return &Service{
		caller:     caller,
		language:   language,
		searcher:   search.NewSearcher(caller, language),
		sessions:   sessions,
		categories: make(map[domain.CategoryKind]*category.Cache, len(domain.CategoryKinds)),
	}
}

func (s *Service) Language() domain.Language {
	return s.language
}

// Search starts a logical search and returns its requested page.
func (s *Service) Search(ctx context.Context, opts search.Options) (*search.Page, error) {
	return s.searcher.Search(ctx, opts)
}

// SimilarMedia searches media similar to medium.
func (s *Service) SimilarMedia(ctx context.Context, medium *domain.Medium, opts search.Options) (*search.Page, error) {
	if medium == nil {
		return nil, &domain.ArgumentError{Argument: "medium", Reason: "is nil"}
	}
	opts.SimiliaID = medium.ID
	return s.searcher.Search(ctx, opts)
}

// CategoryMedia searches the media filed under c.
func (s *Service) CategoryMedia(ctx context.Context, c *domain.Category, opts search.Options) (*search.Page, error) {
	if c == nil {
		return nil, &domain.ArgumentError{Argument: "category", Reason: "is nil"}
	}

	switch c.Kind {
	case domain.CategoryKindRepresentative:
		opts.RepresentativeCategory = c
	case domain.CategoryKindConceptual:
		opts.ConceptualCategory = c
	default:
		return nil, &domain.ArgumentError{Argument: "category", Reason: fmt.Sprintf("unknown kind %q", c.Kind)}
	}

	return s.searcher.Search(ctx, opts)
}

// GalleryMedia searches the media of a public gallery.
func (s *Service) GalleryMedia(ctx context.Context, gallery *domain.Gallery, opts search.Options) (*search.Page, error) {
	if gallery == nil {
		return nil, &domain.ArgumentError{Argument: "gallery", Reason: "is nil"}
	}
	opts.Gallery = gallery
	return s.searcher.Search(ctx, opts)
}

// Categories returns the cache of one taxonomy, creating it on first use.
func (s *Service) Categories(kind domain.CategoryKind) (*category.Cache, error) {
	if !kind.Valid() {
		return nil, &domain.ConfigurationError{
			Component: "category cache",
			Reason:    fmt.Sprintf("unknown category kind %q", kind),
			Err:       domain.ErrUnboundCategoryKind,
		}
	}

	s.categoriesMutex.Lock()
	defer s.categoriesMutex.Unlock()

	cache, ok := s.categories[kind]
	if !ok {
		cache = category.NewCache(s.caller, kind, s.language)
		s.categories[kind] = cache
	}
	return cache, nil
}

func (s *Service) RepresentativeCategories() *category.Cache {
	cache, _ := s.Categories(domain.CategoryKindRepresentative)
	return cache
}

func (s *Service) ConceptualCategories() *category.Cache {
	cache, _ := s.Categories(domain.CategoryKindConceptual)
	return cache
}

// ChildCategories lists the children of c from the cache of its own kind.
func (s *Service) ChildCategories(ctx context.Context, c *domain.Category) ([]*domain.Category, error) {
	if c == nil {
		return nil, &domain.ArgumentError{Argument: "category", Reason: "is nil"}
	}

	cache, err := s.Categories(c.Kind)
	if err != nil {
		return nil, err
	}
	return cache.Find(ctx, domain.CategoryRef(c))
}

// CategoryNode is a category with its children loaded to some depth.
type CategoryNode struct {
	Category *domain.Category `json:"category"`
	Children []*CategoryNode  `json:"children,omitempty"`
}

// CategoryTree loads the categories of kind below parent, descending depth levels.
// A depth of 1 returns only the direct children.
func (s *Service) CategoryTree(ctx context.Context, kind domain.CategoryKind, parent domain.ParentRef, depth int) ([]*CategoryNode, error) {
	cache, err := s.Categories(kind)
	if err != nil {
		return nil, err
	}
	return loadTree(ctx, cache, parent, depth)
}

func loadTree(ctx context.Context, cache *category.Cache, parent domain.ParentRef, depth int) ([]*CategoryNode, error) {
	if depth <= 0 {
		return nil, nil
	}

	categories, err := cache.Find(ctx, parent)
	if err != nil {
		return nil, err
	}

	nodes := make([]*CategoryNode, 0, len(categories))
	for _, c := range categories {
		children, err := loadTree(ctx, cache, domain.CategoryRef(c), depth-1)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, &CategoryNode{Category: c, Children: children})
	}
	return nodes, nil
}

// CategoryForest loads both taxonomies from their roots. Each taxonomy is walked
// sequentially; the two walks run side by side.
func (s *Service) CategoryForest(ctx context.Context, depth int) (map[domain.CategoryKind][]*CategoryNode, error) {
	trees := make([][]*CategoryNode, len(domain.CategoryKinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range domain.CategoryKinds {
		g.Go(func() error {
			log.Infof("🔄 Loading %s categories", kind)

			tree, err := s.CategoryTree(gctx, kind, domain.RootRef(), depth)
			if err != nil {
				return fmt.Errorf("failed to load %s categories: %w", kind, err)
			}
			trees[i] = tree

			log.Infof("✅ Loaded %d root %s categories", len(tree), kind)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	forest := make(map[domain.CategoryKind][]*CategoryNode, len(domain.CategoryKinds))
	for i, kind := range domain.CategoryKinds {
		forest[kind] = trees[i]
	}
	return forest, nil
}

// Colors lists the root colors, or the children of parent.
func (s *Service) Colors(ctx context.Context, parent *domain.Color) ([]*domain.Color, error) {
	var args []interface{}
	if parent != nil {
		args = append(args, parent.ID)
	}

	response, err := s.caller.Call(ctx, "getColors", args...)
	if err != nil {
		return nil, err
	}

	record, ok := client.AsRecord(response)
	if !ok {
		return nil, fmt.Errorf("unexpected getColors response of type %T", response)
	}

	records := client.Records(record["colors"])
	colors := make([]*domain.Color, 0, len(records))
	for _, r := range records {
		color, err := client.ParseColor(r)
		if err != nil {
			return nil, err
		}
		colors = append(colors, color)
	}
	return colors, nil
}

func (s *Service) Countries(ctx context.Context) ([]*domain.Country, error) {
	response, err := s.caller.Call(ctx, "getCountries", s.language.ID())
	if err != nil {
		return nil, err
	}

	records := client.Records(response)
	countries := make([]*domain.Country, 0, len(records))
	for _, r := range records {
		country, err := client.ParseCountry(r)
		if err != nil {
			return nil, err
		}
		countries = append(countries, country)
	}
	return countries, nil
}

// Galleries lists the public galleries.
func (s *Service) Galleries(ctx context.Context) ([]*domain.Gallery, error) {
	response, err := s.caller.Call(ctx, "getGalleries", s.language.ID())
	if err != nil {
		return nil, err
	}
	return parseGalleries(response)
}

func parseGalleries(response interface{}) ([]*domain.Gallery, error) {
	records := client.Records(response)
	galleries := make([]*domain.Gallery, 0, len(records))
	for _, r := range records {
		gallery, err := client.ParseGallery(r)
		if err != nil {
			return nil, err
		}
		galleries = append(galleries, gallery)
	}
	return galleries, nil
}

func (s *Service) MostUsedTags(ctx context.Context) ([]*domain.Tag, error) {
	return s.tags(ctx, domain.TagRankingUsed)
}

func (s *Service) MostSearchedTags(ctx context.Context) ([]*domain.Tag, error) {
	return s.tags(ctx, domain.TagRankingSearched)
}

func (s *Service) tags(ctx context.Context, ranking domain.TagRanking) ([]*domain.Tag, error) {
	response, err := s.caller.Call(ctx, "getTags", s.language.ID(), string(ranking))
	if err != nil {
		return nil, err
	}

	records := client.Records(response)
	tags := make([]*domain.Tag, 0, len(records))
	for _, r := range records {
		tag, err := client.ParseTag(r)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// CountMedia returns the number of media in the catalog. The value is fetched once.
func (s *Service) CountMedia(ctx context.Context) (int, error) {
	s.dataMutex.Lock()
	defer s.dataMutex.Unlock()

	if s.mediaCount != nil {
		return *s.mediaCount, nil
	}

	response, err := s.caller.Call(ctx, "getData")
	if err != nil {
		return 0, err
	}

	record, ok := client.AsRecord(response)
	if !ok {
		return 0, fmt.Errorf("unexpected getData response of type %T", response)
	}

	count, err := cast.ToIntE(record["nb_media"])
	if err != nil {
		return 0, fmt.Errorf("invalid nb_media in getData response: %w", err)
	}

	s.mediaCount = &count
	return count, nil
}
