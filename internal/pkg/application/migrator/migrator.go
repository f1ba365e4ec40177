package migrator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/diwise/tag-migrator/pkg/vim/client"
)

// Result sums up the side effects of a completed migration run.
type Result struct {
	CategoriesCreated  int
	CategoriesUpdated  int
	TagsCreated        int
	AssignmentsCreated int
}

// Run executes the migration pipeline against the given server connection:
// derive tag categories from the custom attribute definitions, create or
// update them, index all annotation values, create the missing tags and
// finally assign each tag to every object that held the corresponding value.
//
// The stages run strictly in order and the first remote error aborts the
// whole run. Side effects of earlier stages are left in place, so a rerun
// relies on the existence checks for categories and tags to stay idempotent.
func Run(ctx context.Context, c client.ManagementClient, cfg *Config) (Result, error) {
	var result Result

	log := logging.GetFromContext(ctx)

	log.Info("collecting information about custom attributes")

	attributes, err := c.ListCustomAttributes(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list custom attributes: %w", err)
	}

	attributes = cfg.filterAttributes(attributes)
	derived := deriveCategories(attributes)

	log.Info("creating the necessary tag categories", slog.Int("count", len(derived)))

	categories, created, updated, err := materializeCategories(ctx, c, derived)
	if err != nil {
		return result, err
	}

	result.CategoriesCreated = created
	result.CategoriesUpdated = updated

	log.Info("collecting information about annotations")

	index, err := indexAnnotations(ctx, c, cfg)
	if err != nil {
		return result, err
	}

	log.Info("creating the necessary tags")

	result.TagsCreated, err = materializeTags(ctx, c, categories, index)
	if err != nil {
		return result, err
	}

	log.Info("assigning tags to inventory objects")

	result.AssignmentsCreated, err = assignTags(ctx, c, categories, index)
	if err != nil {
		return result, err
	}

	log.Info("done",
		slog.Int("categories_created", result.CategoriesCreated),
		slog.Int("categories_updated", result.CategoriesUpdated),
		slog.Int("tags_created", result.TagsCreated),
		slog.Int("assignments_created", result.AssignmentsCreated),
	)

	return result, nil
}
