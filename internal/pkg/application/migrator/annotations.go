package migrator

import (
	"context"
	"fmt"

	"github.com/diwise/tag-migrator/pkg/vim"
	"github.com/diwise/tag-migrator/pkg/vim/client"
)

// indexAnnotations walks the full inventory and groups every annotated item
// under its annotation name and value. Annotations with empty values carry
// no information worth tagging and are skipped.
func indexAnnotations(ctx context.Context, c client.ManagementClient, cfg *Config) (map[string]map[string][]vim.InventoryItem, error) {
	items, err := c.ListInventoryItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}

	index := map[string]map[string][]vim.InventoryItem{}

	for _, item := range items {
		annotations, err := c.ListAnnotations(ctx, item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list annotations on %s: %w", item.ID, err)
		}

		for _, annotation := range annotations {
			if annotation.Value == "" || cfg.excludes(annotation.Name) {
				continue
			}

			values, ok := index[annotation.Name]
			if !ok {
				values = map[string][]vim.InventoryItem{}
				index[annotation.Name] = values
			}

			values[annotation.Value] = append(values[annotation.Value], item)
		}
	}

	return index, nil
}
