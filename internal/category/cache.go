package category

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"fotolia/catalog/internal/client"
	"fotolia/catalog/internal/domain"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

const rootKey = "root"

// Cache lists the categories of one kind. Every parent is fetched at most once for the
// lifetime of the cache; failed fetches are not kept.
type Cache struct {
	caller   client.Caller
	kind     domain.CategoryKind
	language domain.Language

	mutex      sync.Mutex
	categories map[string][]*domain.Category
}

func NewCache(caller client.Caller, kind domain.CategoryKind, language domain.Language) *Cache {
	if language == "" {
		language = domain.DefaultLanguage
	}
	return &Cache{
		caller:     caller,
		kind:       kind,
		language:   language,
		categories: make(map[string][]*domain.Category),
	}
}

func NewRepresentativeCache(caller client.Caller, language domain.Language) *Cache {
	return NewCache(caller, domain.CategoryKindRepresentative, language)
}

func NewConceptualCache(caller client.Caller, language domain.Language) *Cache {
	return NewCache(caller, domain.CategoryKindConceptual, language)
}

func (c *Cache) Kind() domain.CategoryKind {
	return c.kind
}

// RootLevel returns the root categories.
func (c *Cache) RootLevel(ctx context.Context) ([]*domain.Category, error) {
	return c.Find(ctx, domain.RootRef())
}

// Find returns the children of parent in the order the catalog lists them. Children of a
// parent given as a category point back to that category; children of a raw id share one
// stub parent carrying only the id.
func (c *Cache) Find(ctx context.Context, parent domain.ParentRef) ([]*domain.Category, error) {
	if c == nil || !c.kind.Valid() {
		return nil, &domain.ConfigurationError{
			Component: "category cache",
			Reason:    "no category kind bound",
			Err:       domain.ErrUnboundCategoryKind,
		}
	}
	if c.caller == nil {
		return nil, &domain.ConfigurationError{Component: "category cache", Reason: "no remote caller bound"}
	}

	key := cacheKey(parent)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if categories, ok := c.categories[key]; ok {
		return categories, nil
	}

	method := c.kind.RemoteMethod()
	args := []interface{}{c.language.ID()}
	if !parent.IsRoot() {
		args = append(args, parent.ID())
	}

	log.Debugf("Fetching %s categories of %s", c.kind, key)

	response, err := c.caller.Call(ctx, method, args...)
	if err != nil {
		return nil, err
	}

	categories, err := c.parse(method, response, parentCategory(parent, c.kind))
	if err != nil {
		return nil, err
	}

	c.categories[key] = categories
	return categories, nil
}

func (c *Cache) parse(method string, response interface{}, parent *domain.Category) ([]*domain.Category, error) {
	var entries []client.Entry

	switch value := response.(type) {
	case map[string]interface{}:
		entries = client.Entries(value)
	case []interface{}:
		for _, record := range client.Records(value) {
			entries = append(entries, client.Entry{Key: cast.ToString(record["id"]), Record: record})
		}
	case nil:
	default:
		return nil, fmt.Errorf("unexpected %s response of type %T", method, response)
	}

	categories := make([]*domain.Category, 0, len(entries))
	for _, entry := range entries {
		category, err := client.ParseCategory(entry.Record, entry.Key, c.kind, parent)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		categories = append(categories, category)
	}

	return categories, nil
}

func cacheKey(parent domain.ParentRef) string {
	if parent.IsRoot() {
		return rootKey
	}
	return strconv.Itoa(parent.ID())
}

func parentCategory(parent domain.ParentRef, kind domain.CategoryKind) *domain.Category {
	if parent.IsRoot() {
		return nil
	}
	if category := parent.Category(); category != nil {
		return category
	}
	return &domain.Category{ID: parent.ID(), Key: strconv.Itoa(parent.ID()), Kind: kind}
}
