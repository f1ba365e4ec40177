package migrator

import (
	"context"
	"fmt"

	"github.com/diwise/tag-migrator/pkg/vim"
	"github.com/diwise/tag-migrator/pkg/vim/client"
)

// materializeTags creates a tag for every (category, value) pair in the
// index whose qualified Category/Value name is not already on the server.
func materializeTags(ctx context.Context, c client.ManagementClient, categories map[string]vim.TagCategory, index map[string]map[string][]vim.InventoryItem) (int, error) {
	existingTags, err := c.ListTags(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list tags: %w", err)
	}

	categoryNamesByID := make(map[string]string, len(categories))
	for name, category := range categories {
		categoryNamesByID[category.ID] = name
	}

	existing := make(map[string]struct{}, len(existingTags))
	for _, tag := range existingTags {
		existing[vim.QualifiedTagName(categoryNamesByID[tag.CategoryID], tag.Name)] = struct{}{}
	}

	created := 0

	for categoryName, values := range index {
		category := categories[categoryName]

		for value := range values {
			qualifiedName := vim.QualifiedTagName(categoryName, value)
			if _, ok := existing[qualifiedName]; ok {
				continue
			}

			_, err := c.CreateTag(ctx, vim.Tag{Name: value, CategoryID: category.ID})
			if err != nil {
				return created, fmt.Errorf("failed to create tag %s: %w", qualifiedName, err)
			}

			created++
		}
	}

	return created, nil
}

// assignTags attaches each tag to every inventory item recorded under its
// (category, value) pair. The tag is refetched from the server per pair so
// that assignments always target the server's view of it. Assignments are
// created unconditionally, a rerun will attach the same tag to the same
// object a second time.
func assignTags(ctx context.Context, c client.ManagementClient, categories map[string]vim.TagCategory, index map[string]map[string][]vim.InventoryItem) (int, error) {
	assigned := 0

	for categoryName, values := range index {
		category := categories[categoryName]

		for value, items := range values {
			tag, err := c.RetrieveTag(ctx, value, category.ID)
			if err != nil {
				return assigned, fmt.Errorf("failed to retrieve tag %s: %w", vim.QualifiedTagName(categoryName, value), err)
			}

			for _, item := range items {
				err = c.CreateTagAssignment(ctx, vim.TagAssignment{TagID: tag.ID, ObjectID: item.ID})
				if err != nil {
					return assigned, fmt.Errorf("failed to assign tag %s to %s: %w", vim.QualifiedTagName(categoryName, value), item.ID, err)
				}

				assigned++
			}
		}
	}

	return assigned, nil
}
