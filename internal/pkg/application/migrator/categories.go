package migrator

import (
	"context"
	"fmt"

	"github.com/diwise/tag-migrator/pkg/vim"
	"github.com/diwise/tag-migrator/pkg/vim/client"
)

// deriveCategories maps each custom attribute name to the entity types its
// tags should be associable with. Attributes without a target type apply to
// all kinds of objects. A type may appear more than once if several
// attributes share a name, the server is expected to deduplicate.
func deriveCategories(attributes []vim.CustomAttribute) map[string][]string {
	derived := map[string][]string{}

	for _, attribute := range attributes {
		targetType := attribute.TargetType
		if targetType == "" {
			targetType = vim.AllEntityTypes
		}

		derived[attribute.Name] = append(derived[attribute.Name], targetType)
	}

	return derived
}

// materializeCategories creates a tag category for each derived category
// name, or adds the derived entity types to the category if one with that
// exact name already exists. The returned map caches every category on the
// server, keyed by name, so that later stages can avoid re-querying it.
func materializeCategories(ctx context.Context, c client.ManagementClient, derived map[string][]string) (map[string]vim.TagCategory, int, int, error) {
	existing, err := c.ListTagCategories(ctx)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to list tag categories: %w", err)
	}

	categories := make(map[string]vim.TagCategory, len(existing)+len(derived))
	for _, category := range existing {
		categories[category.Name] = category
	}

	created, updated := 0, 0

	for name, associableTypes := range derived {
		if category, ok := categories[name]; ok {
			category, err = c.UpdateTagCategory(ctx, category.ID, associableTypes)
			if err != nil {
				return nil, created, updated, fmt.Errorf("failed to update tag category %s: %w", name, err)
			}

			categories[name] = category
			updated++
			continue
		}

		category, err := c.CreateTagCategory(ctx, vim.TagCategory{
			Name:            name,
			Cardinality:     vim.CardinalitySingle,
			AssociableTypes: associableTypes,
		})
		if err != nil {
			return nil, created, updated, fmt.Errorf("failed to create tag category %s: %w", name, err)
		}

		categories[name] = category
		created++
	}

	return categories, created, updated, nil
}
