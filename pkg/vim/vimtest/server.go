package vimtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/diwise/tag-migrator/internal/pkg/infrastructure/router"
	"github.com/diwise/tag-migrator/pkg/vim"
	"github.com/diwise/tag-migrator/pkg/vim/errors"
)

// Server is a seedable in memory stand in for a management server, exposing
// the same API surface that the migration client talks to.
type Server struct {
	mu sync.Mutex

	attributes  []vim.CustomAttribute
	items       []vim.InventoryItem
	annotations map[string][]vim.Annotation
	categories  []vim.TagCategory
	tags        []vim.Tag
	assignments []vim.TagAssignment

	srv *httptest.Server
}

func WithCustomAttributes(attributes ...vim.CustomAttribute) func(*Server) {
	return func(s *Server) {
		s.attributes = append(s.attributes, attributes...)
	}
}

func WithInventoryItem(item vim.InventoryItem, annotations ...vim.Annotation) func(*Server) {
	return func(s *Server) {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		s.items = append(s.items, item)
		s.annotations[item.ID] = append(s.annotations[item.ID], annotations...)
	}
}

func WithTagCategories(categories ...vim.TagCategory) func(*Server) {
	return func(s *Server) {
		for _, category := range categories {
			if category.ID == "" {
				category.ID = uuid.NewString()
			}
			s.categories = append(s.categories, category)
		}
	}
}

func WithTags(tags ...vim.Tag) func(*Server) {
	return func(s *Server) {
		for _, tag := range tags {
			if tag.ID == "" {
				tag.ID = uuid.NewString()
			}
			s.tags = append(s.tags, tag)
		}
	}
}

func NewServer(options ...func(*Server)) *Server {
	s := &Server{
		annotations: map[string][]vim.Annotation{},
	}

	for _, option := range options {
		option(s)
	}

	r := router.New("vimtest")

	r.Get("/api/v1/custom-attributes", s.listCustomAttributes)

	r.Route("/api/v1/tag-categories", func(r chi.Router) {
		r.Get("/", s.listTagCategories)
		r.Post("/", s.createTagCategory)
		r.Patch("/{categoryId}", s.updateTagCategory)
	})

	r.Route("/api/v1/tags", func(r chi.Router) {
		r.Get("/", s.listTags)
		r.Post("/", s.createTag)
	})

	r.Get("/api/v1/inventory", s.listInventoryItems)
	r.Get("/api/v1/inventory/{itemId}/annotations", s.listAnnotations)

	r.Post("/api/v1/tag-assignments", s.createTagAssignment)

	s.srv = httptest.NewServer(r)

	return s
}

func (s *Server) URL() string {
	return s.srv.URL
}

func (s *Server) Close() {
	s.srv.Close()
}

// Categories returns a snapshot of the categories currently on the server.
func (s *Server) Categories() []vim.TagCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]vim.TagCategory{}, s.categories...)
}

// Tags returns a snapshot of the tags currently on the server.
func (s *Server) Tags() []vim.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]vim.Tag{}, s.tags...)
}

// Assignments returns a snapshot of the tag assignments created so far.
func (s *Server) Assignments() []vim.TagAssignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]vim.TagAssignment{}, s.assignments...)
}

func (s *Server) listCustomAttributes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.attributes)
}

func (s *Server) listTagCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.categories)
}

func (s *Server) createTagCategory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := vim.TagCategory{}
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		errors.ReportNewBadRequestData(w, err.Error(), "")
		return
	}

	for _, existing := range s.categories {
		if existing.Name == category.Name {
			errors.ReportNewAlreadyExistsError(w, fmt.Sprintf("a category named %s already exists", category.Name), "")
			return
		}
	}

	category.ID = uuid.NewString()
	s.categories = append(s.categories, category)

	w.Header().Add("Location", "/api/v1/tag-categories/"+category.ID)
	writeJSON(w, http.StatusCreated, category)
}

func (s *Server) updateTagCategory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categoryID := chi.URLParam(r, "categoryId")

	update := struct {
		AssociableTypes []string `json:"associableTypes"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		errors.ReportNewBadRequestData(w, err.Error(), "")
		return
	}

	for idx := range s.categories {
		if s.categories[idx].ID != categoryID {
			continue
		}

		// additive union, duplicates are the server's problem to solve
		for _, t := range update.AssociableTypes {
			if notInSlice(t, s.categories[idx].AssociableTypes) {
				s.categories[idx].AssociableTypes = append(s.categories[idx].AssociableTypes, t)
			}
		}

		writeJSON(w, http.StatusOK, s.categories[idx])
		return
	}

	errors.ReportNotFoundError(w, fmt.Sprintf("no category with id %s", categoryID), "")
}

func (s *Server) listTags(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := r.URL.Query().Get("name")
	categoryID := r.URL.Query().Get("category")

	tags := make([]vim.Tag, 0, len(s.tags))
	for _, tag := range s.tags {
		if name != "" && tag.Name != name {
			continue
		}
		if categoryID != "" && tag.CategoryID != categoryID {
			continue
		}
		tags = append(tags, tag)
	}

	writeJSON(w, http.StatusOK, tags)
}

func (s *Server) createTag(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tag := vim.Tag{}
	if err := json.NewDecoder(r.Body).Decode(&tag); err != nil {
		errors.ReportNewBadRequestData(w, err.Error(), "")
		return
	}

	if !s.categoryExists(tag.CategoryID) {
		errors.ReportNotFoundError(w, fmt.Sprintf("no category with id %s", tag.CategoryID), "")
		return
	}

	for _, existing := range s.tags {
		if existing.Name == tag.Name && existing.CategoryID == tag.CategoryID {
			errors.ReportNewAlreadyExistsError(w, fmt.Sprintf("a tag named %s already exists in category %s", tag.Name, tag.CategoryID), "")
			return
		}
	}

	tag.ID = uuid.NewString()
	s.tags = append(s.tags, tag)

	w.Header().Add("Location", "/api/v1/tags/"+tag.ID)
	writeJSON(w, http.StatusCreated, tag)
}

func (s *Server) listInventoryItems(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.items)
}

func (s *Server) listAnnotations(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	itemID := chi.URLParam(r, "itemId")

	for _, item := range s.items {
		if item.ID != itemID {
			continue
		}

		annotations := s.annotations[itemID]
		if annotations == nil {
			annotations = []vim.Annotation{}
		}

		writeJSON(w, http.StatusOK, annotations)
		return
	}

	errors.ReportNotFoundError(w, fmt.Sprintf("no inventory item with id %s", itemID), "")
}

func (s *Server) createTagAssignment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignment := vim.TagAssignment{}
	if err := json.NewDecoder(r.Body).Decode(&assignment); err != nil {
		errors.ReportNewBadRequestData(w, err.Error(), "")
		return
	}

	if !s.tagExists(assignment.TagID) {
		errors.ReportNotFoundError(w, fmt.Sprintf("no tag with id %s", assignment.TagID), "")
		return
	}

	s.assignments = append(s.assignments, assignment)

	writeJSON(w, http.StatusCreated, assignment)
}

func (s *Server) categoryExists(categoryID string) bool {
	for _, category := range s.categories {
		if category.ID == categoryID {
			return true
		}
	}
	return false
}

func (s *Server) tagExists(tagID string) bool {
	for _, tag := range s.tags {
		if tag.ID == tagID {
			return true
		}
	}
	return false
}

func notInSlice(find string, slice []string) bool {
	for idx := range slice {
		if slice[idx] == find {
			return false
		}
	}
	return true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		errors.ReportNewInternalError(w, err.Error(), "")
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(b)
}
