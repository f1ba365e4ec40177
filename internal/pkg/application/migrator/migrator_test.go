package migrator

import (
	"context"
	"testing"

	"github.com/matryer/is"

	"github.com/diwise/tag-migrator/pkg/vim"
	"github.com/diwise/tag-migrator/pkg/vim/client"
	"github.com/diwise/tag-migrator/pkg/vim/vimtest"
)

func TestMigratesAnnotationsToCategoriesTagsAndAssignments(t *testing.T) {
	is := is.New(t)

	s := vimtest.NewServer(
		vimtest.WithCustomAttributes(vim.CustomAttribute{Name: "Owner"}),
		vimtest.WithInventoryItem(
			vim.InventoryItem{ID: "vm-a", Name: "VM-A", Type: "VirtualMachine"},
			vim.Annotation{Name: "Owner", Value: "Alice"},
		),
		vimtest.WithInventoryItem(
			vim.InventoryItem{ID: "vm-b", Name: "VM-B", Type: "VirtualMachine"},
			vim.Annotation{Name: "Owner", Value: "Bob"},
		),
	)
	defer s.Close()

	result, err := Run(context.Background(), client.NewManagementClient(s.URL()), &Config{})

	is.NoErr(err)
	is.Equal(result, Result{CategoriesCreated: 1, TagsCreated: 2, AssignmentsCreated: 2})

	categories := s.Categories()
	is.Equal(len(categories), 1)
	is.Equal(categories[0].Name, "Owner")
	is.Equal(categories[0].Cardinality, vim.CardinalitySingle)
	is.Equal(categories[0].AssociableTypes, []string{vim.AllEntityTypes})

	tags := s.Tags()
	is.Equal(len(tags), 2)

	assignedTo := map[string]string{}
	for _, assignment := range s.Assignments() {
		assignedTo[tagName(tags, assignment.TagID)] = assignment.ObjectID
	}

	is.Equal(assignedTo["Alice"], "vm-a")
	is.Equal(assignedTo["Bob"], "vm-b")
}

func TestRerunDoesNotDuplicateCategoriesOrTags(t *testing.T) {
	is := is.New(t)

	s := vimtest.NewServer(
		vimtest.WithCustomAttributes(vim.CustomAttribute{Name: "Owner"}),
		vimtest.WithTagCategories(vim.TagCategory{
			ID: "cat-owner", Name: "Owner",
			Cardinality:     vim.CardinalitySingle,
			AssociableTypes: []string{vim.AllEntityTypes},
		}),
		vimtest.WithTags(vim.Tag{Name: "Alice", CategoryID: "cat-owner"}),
		vimtest.WithInventoryItem(
			vim.InventoryItem{ID: "vm-a", Name: "VM-A", Type: "VirtualMachine"},
			vim.Annotation{Name: "Owner", Value: "Alice"},
		),
		vimtest.WithInventoryItem(
			vim.InventoryItem{ID: "vm-b", Name: "VM-B", Type: "VirtualMachine"},
			vim.Annotation{Name: "Owner", Value: "Bob"},
		),
	)
	defer s.Close()

	result, err := Run(context.Background(), client.NewManagementClient(s.URL()), &Config{})

	is.NoErr(err)
	is.Equal(result.CategoriesCreated, 0)
	is.Equal(result.CategoriesUpdated, 1)
	is.Equal(result.TagsCreated, 1) // only Bob is missing

	is.Equal(len(s.Categories()), 1)
	is.Equal(len(s.Tags()), 2)
	is.Equal(len(s.Assignments()), 2)
}

func TestEmptyAnnotationValuesProduceNoTags(t *testing.T) {
	is := is.New(t)

	s := vimtest.NewServer(
		vimtest.WithCustomAttributes(vim.CustomAttribute{Name: "Note"}),
		vimtest.WithInventoryItem(
			vim.InventoryItem{ID: "vm-a", Name: "VM-A", Type: "VirtualMachine"},
			vim.Annotation{Name: "Note", Value: ""},
		),
	)
	defer s.Close()

	result, err := Run(context.Background(), client.NewManagementClient(s.URL()), &Config{})

	is.NoErr(err)
	is.Equal(result.CategoriesCreated, 1) // the category is still derived from the attribute definition
	is.Equal(result.TagsCreated, 0)
	is.Equal(result.AssignmentsCreated, 0)

	is.Equal(len(s.Tags()), 0)
	is.Equal(len(s.Assignments()), 0)
}

func TestExcludedAttributesAreIgnored(t *testing.T) {
	is := is.New(t)

	s := vimtest.NewServer(
		vimtest.WithCustomAttributes(vim.CustomAttribute{Name: "Owner"}),
		vimtest.WithInventoryItem(
			vim.InventoryItem{ID: "vm-a", Name: "VM-A", Type: "VirtualMachine"},
			vim.Annotation{Name: "Owner", Value: "Alice"},
		),
	)
	defer s.Close()

	cfg := &Config{ExcludedAttributes: []string{"Owner"}}

	result, err := Run(context.Background(), client.NewManagementClient(s.URL()), cfg)

	is.NoErr(err)
	is.Equal(result, Result{})

	is.Equal(len(s.Categories()), 0)
	is.Equal(len(s.Tags()), 0)
	is.Equal(len(s.Assignments()), 0)
}

func tagName(tags []vim.Tag, tagID string) string {
	for _, tag := range tags {
		if tag.ID == tagID {
			return tag.Name
		}
	}
	return ""
}
