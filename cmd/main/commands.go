package main

import (
	"fmt"
	"slices"
	"strconv"

	"fotolia/catalog/internal/domain"
	"fotolia/catalog/internal/search"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	searchWords          string
	searchPerPage        int
	searchPage           int
	searchContentTypes   []string
	searchLicenses       []string
	searchOrder          string
	searchOrientation    string
	searchThumbnailSize  int
	searchCreatorID      int
	searchRepresentative int
	searchConceptual     int
	searchNoDetails      bool
	searchOffensive      bool
	searchAllPages       bool

	categoryKind   string
	categoryParent int
	categoryDepth  int

	colorParent int
	tagRanking  string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search media",
	Long: `Search the catalog and print the requested page. With --all-pages every page of
the result set is fetched in order and printed as it arrives.`,
	RunE: runSearch,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List representative or conceptual categories",
	RunE:  runCategories,
}

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List colors",
	RunE: func(cmd *cobra.Command, args []string) error {
		var parent *domain.Color
		if colorParent != 0 {
			parent = &domain.Color{ID: colorParent}
		}
		colors, err := app.Service.Colors(cmd.Context(), parent)
		if err != nil {
			return err
		}
		return writeLines(cmd.OutOrStdout(), colors...)
	},
}

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List countries",
	RunE: func(cmd *cobra.Command, args []string) error {
		countries, err := app.Service.Countries(cmd.Context())
		if err != nil {
			return err
		}
		return writeLines(cmd.OutOrStdout(), countries...)
	},
}

var galleriesCmd = &cobra.Command{
	Use:   "galleries",
	Short: "List public galleries",
	RunE: func(cmd *cobra.Command, args []string) error {
		galleries, err := app.Service.Galleries(cmd.Context())
		if err != nil {
			return err
		}
		return writeLines(cmd.OutOrStdout(), galleries...)
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the most used or most searched tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			tags []*domain.Tag
			err  error
		)
		switch tagRanking {
		case "used":
			tags, err = app.Service.MostUsedTags(cmd.Context())
		case "searched":
			tags, err = app.Service.MostSearchedTags(cmd.Context())
		default:
			return fmt.Errorf("invalid tag ranking: %s (must be 'used' or 'searched')", tagRanking)
		}
		if err != nil {
			return err
		}
		return writeLines(cmd.OutOrStdout(), tags...)
	},
}

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of media in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := app.Service.CountMedia(cmd.Context())
		if err != nil {
			return err
		}
		return writeLines(cmd.OutOrStdout(), map[string]int{"nb_media": count})
	},
}

var mediumCmd = &cobra.Command{
	Use:   "medium <id>",
	Short: "Print the full record of a medium",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid medium id %q: %w", args[0], err)
		}
		details, err := app.Service.MediumDetails(cmd.Context(), id)
		if err != nil {
			return err
		}
		return writeLines(cmd.OutOrStdout(), details)
	},
}

func init() {
	flags := searchCmd.Flags()
	flags.StringVarP(&searchWords, "words", "w", "", "keywords to search for")
	flags.IntVar(&searchPerPage, "per-page", search.DefaultPerPage, "media per page (1-64)")
	flags.IntVar(&searchPage, "page", search.DefaultPage, "page to fetch")
	flags.StringSliceVar(&searchContentTypes, "content-type", nil, "content types: photo, illustration, vector, all")
	flags.StringSliceVar(&searchLicenses, "license", nil, "only media offering these licenses: L, XL, XXL, X, E")
	flags.StringVar(&searchOrder, "order", string(domain.OrderRelevance), "order: relevance, price_1, creation, nb_views, nb_downloads")
	flags.StringVar(&searchOrientation, "orientation", string(domain.OrientationAll), "orientation: horizontal, vertical, all")
	flags.IntVar(&searchThumbnailSize, "thumbnail-size", int(domain.ThumbnailMedium), "thumbnail size: 30, 110, 400")
	flags.IntVar(&searchCreatorID, "creator", 0, "creator id")
	flags.IntVar(&searchRepresentative, "representative-category", 0, "representative category id")
	flags.IntVar(&searchConceptual, "conceptual-category", 0, "conceptual category id")
	flags.BoolVar(&searchNoDetails, "no-details", false, "skip keywords, views and downloads")
	flags.BoolVar(&searchOffensive, "offensive", false, "include explicit media")
	flags.BoolVar(&searchAllPages, "all-pages", false, "fetch every page of the result set")

	categoriesCmd.Flags().StringVar(&categoryKind, "kind", string(domain.CategoryKindRepresentative), "kind: representative, conceptual, all")
	categoriesCmd.Flags().IntVar(&categoryParent, "parent", 0, "parent category id (default is the root level)")
	categoriesCmd.Flags().IntVar(&categoryDepth, "depth", 1, "levels to descend")

	colorsCmd.Flags().IntVar(&colorParent, "parent", 0, "parent color id")
	tagsCmd.Flags().StringVar(&tagRanking, "most", "used", "ranking: used, searched")
}

func searchOptions() (search.Options, error) {
	opts := search.Options{
		PerPage:         search.Int(searchPerPage),
		Page:            search.Int(searchPage),
		DetailedResults: search.Bool(!searchNoDetails),
		OnlyLicenses:    searchLicenses,
		Words:           searchWords,
		CreatorID:       searchCreatorID,
		Offensive:       searchOffensive,
		Orientation:     domain.Orientation(searchOrientation),
		Order:           domain.Order(searchOrder),
		ThumbnailSize:   domain.ThumbnailSize(searchThumbnailSize),
	}

	for _, value := range searchContentTypes {
		contentType := domain.ContentType(value)
		if !slices.Contains(domain.ContentTypes, contentType) {
			return search.Options{}, fmt.Errorf("invalid content type: %s", value)
		}
		opts.ContentTypes = append(opts.ContentTypes, contentType)
	}

	if searchRepresentative != 0 {
		opts.RepresentativeCategory = &domain.Category{ID: searchRepresentative, Kind: domain.CategoryKindRepresentative}
	}
	if searchConceptual != 0 {
		opts.ConceptualCategory = &domain.Category{ID: searchConceptual, Kind: domain.CategoryKindConceptual}
	}

	return opts, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	opts, err := searchOptions()
	if err != nil {
		return err
	}

	page, err := app.Service.Search(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	log.Infof("Found %d media on %d pages", page.Total(), page.Pages().Len())

	if !searchAllPages {
		return writeLines(cmd.OutOrStdout(), newPageOutput(page))
	}

	return page.Pages().ForEach(cmd.Context(), func(p *search.Page) error {
		return writeLines(cmd.OutOrStdout(), newPageOutput(p))
	})
}

func runCategories(cmd *cobra.Command, args []string) error {
	parent := domain.RootRef()
	if categoryParent != 0 {
		parent = domain.IDRef(categoryParent)
	}

	if categoryKind == "all" {
		if !parent.IsRoot() {
			return fmt.Errorf("--parent needs a single --kind")
		}
		forest, err := app.Service.CategoryForest(cmd.Context(), categoryDepth)
		if err != nil {
			return err
		}
		for _, kind := range domain.CategoryKinds {
			if err := writeLines(cmd.OutOrStdout(), forest[kind]...); err != nil {
				return err
			}
		}
		return nil
	}

	tree, err := app.Service.CategoryTree(cmd.Context(), domain.CategoryKind(categoryKind), parent, categoryDepth)
	if err != nil {
		return err
	}
	return writeLines(cmd.OutOrStdout(), tree...)
}
