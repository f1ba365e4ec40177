package vimtest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/matryer/is"

	"github.com/diwise/tag-migrator/pkg/vim"
)

func TestSeededTagsCanBeFilteredByNameAndCategory(t *testing.T) {
	is := is.New(t)

	s := NewServer(
		WithTagCategories(vim.TagCategory{ID: "cat-1", Name: "Owner"}),
		WithTags(
			vim.Tag{Name: "Alice", CategoryID: "cat-1"},
			vim.Tag{Name: "Bob", CategoryID: "cat-1"},
		),
	)
	defer s.Close()

	resp, err := http.Get(s.URL() + "/api/v1/tags?name=Alice&category=cat-1")
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusOK)

	var tags []vim.Tag
	err = json.NewDecoder(resp.Body).Decode(&tags)
	is.NoErr(err)

	is.Equal(len(tags), 1)
	is.Equal(tags[0].Name, "Alice")
	is.True(tags[0].ID != "") // seeded tags get generated ids
}

func TestCreatingDuplicateCategoryReturnsProblemReport(t *testing.T) {
	is := is.New(t)

	s := NewServer(
		WithTagCategories(vim.TagCategory{Name: "Owner"}),
	)
	defer s.Close()

	b, _ := json.Marshal(vim.TagCategory{Name: "Owner", Cardinality: vim.CardinalitySingle})

	resp, err := http.Post(s.URL()+"/api/v1/tag-categories", "application/json", bytes.NewBuffer(b))
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusConflict)
	is.Equal(resp.Header.Get("Content-Type"), "application/problem+json")
}

func TestAssigningUnknownTagReturnsNotFound(t *testing.T) {
	is := is.New(t)

	s := NewServer()
	defer s.Close()

	b, _ := json.Marshal(vim.TagAssignment{TagID: "no-such-tag", ObjectID: "vm-a"})

	resp, err := http.Post(s.URL()+"/api/v1/tag-assignments", "application/json", bytes.NewBuffer(b))
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusNotFound)
}
