package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"

	"github.com/matryer/is"

	"github.com/diwise/tag-migrator/pkg/vim"
	vimerrors "github.com/diwise/tag-migrator/pkg/vim/errors"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var anyInput = expects.AnyInput
var method = expects.RequestMethod
var path = expects.RequestPath
var body = expects.RequestBody

func TestListCustomAttributes(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodGet),
			path("/api/v1/custom-attributes"),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`[{"name":"Owner"},{"name":"CostCenter","targetType":"VirtualMachine"}]`)),
		),
	)
	defer s.Close()

	c := NewManagementClient(s.URL())

	attributes, err := c.ListCustomAttributes(context.Background())

	is.NoErr(err)
	is.Equal(len(attributes), 2)
	is.Equal(attributes[0].Name, "Owner")
	is.Equal(attributes[0].TargetType, "")
	is.Equal(attributes[1].TargetType, "VirtualMachine")
}

func TestCreateTagCategory(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/api/v1/tag-categories"),
			body(`{"name":"Owner","cardinality":"single","associableTypes":["All"]}`),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusCreated),
			response.Body([]byte(`{"id":"cat-1","name":"Owner","cardinality":"single","associableTypes":["All"]}`)),
		),
	)
	defer s.Close()

	c := NewManagementClient(s.URL())

	created, err := c.CreateTagCategory(context.Background(), vim.TagCategory{
		Name:            "Owner",
		Cardinality:     vim.CardinalitySingle,
		AssociableTypes: []string{vim.AllEntityTypes},
	})

	is.NoErr(err)
	is.Equal(created.ID, "cat-1")
}

func TestCreateTagCategoryHandlesAlreadyExistsProblem(t *testing.T) {
	is := is.New(t)

	pr := vimerrors.NewAlreadyExists("a category named Owner already exists", "traceID")
	b, _ := json.Marshal(pr)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType("application/problem+json"),
			response.Code(http.StatusConflict),
			response.Body(b),
		),
	)
	defer s.Close()

	c := NewManagementClient(s.URL())

	_, err := c.CreateTagCategory(context.Background(), vim.TagCategory{Name: "Owner"})

	is.True(err != nil)
	is.True(errors.Is(err, vimerrors.ErrAlreadyExists))
}

func TestCreateTagThrowsErrorOnNon201Success(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(response.Code(http.StatusNoContent)),
	)
	defer s.Close()

	c := NewManagementClient(s.URL())

	_, err := c.CreateTag(context.Background(), vim.Tag{Name: "Alice", CategoryID: "cat-1"})

	is.True(err != nil)
	is.Equal(err.Error(), "unexpected response code 204 (internal error)")
}

func TestUpdateTagCategory(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPatch),
			path("/api/v1/tag-categories/cat-1"),
			body(`{"associableTypes":["HostSystem"]}`),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"id":"cat-1","name":"Owner","cardinality":"single","associableTypes":["VirtualMachine","HostSystem"]}`)),
		),
	)
	defer s.Close()

	c := NewManagementClient(s.URL())

	updated, err := c.UpdateTagCategory(context.Background(), "cat-1", []string{"HostSystem"})

	is.NoErr(err)
	is.Equal(updated.AssociableTypes, []string{"VirtualMachine", "HostSystem"})
	is.Equal(s.RequestCount(), 1)
}

func TestRetrieveTag(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodGet),
			path("/api/v1/tags"),
			expects.QueryParamEquals("name", "Alice"),
			expects.QueryParamEquals("category", "cat-1"),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`[{"id":"tag-1","name":"Alice","categoryId":"cat-1"}]`)),
		),
	)
	defer s.Close()

	c := NewManagementClient(s.URL())

	tag, err := c.RetrieveTag(context.Background(), "Alice", "cat-1")

	is.NoErr(err)
	is.Equal(tag.ID, "tag-1")
}

func TestRetrieveTagReturnsNotFoundForEmptyResult(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`[]`)),
		),
	)
	defer s.Close()

	c := NewManagementClient(s.URL())

	_, err := c.RetrieveTag(context.Background(), "Alice", "cat-1")

	is.True(err != nil)
	is.True(errors.Is(err, vimerrors.ErrNotFound))
}

func TestListAnnotationsHandlesNotFoundProblem(t *testing.T) {
	is := is.New(t)

	pr := vimerrors.NewNotFound("no inventory item with id vm-x", "traceID")
	b, _ := json.Marshal(pr)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType("application/problem+json"),
			response.Code(http.StatusNotFound),
			response.Body(b),
		),
	)
	defer s.Close()

	c := NewManagementClient(s.URL())

	_, err := c.ListAnnotations(context.Background(), "vm-x")

	is.True(err != nil)
	is.True(errors.Is(err, vimerrors.ErrNotFound))
}

func TestCreateTagAssignment(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/api/v1/tag-assignments"),
			body(`{"tagId":"tag-1","objectId":"vm-a"}`),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusCreated),
			response.Body([]byte(`{"tagId":"tag-1","objectId":"vm-a"}`)),
		),
	)
	defer s.Close()

	c := NewManagementClient(s.URL())

	err := c.CreateTagAssignment(context.Background(), vim.TagAssignment{TagID: "tag-1", ObjectID: "vm-a"})

	is.NoErr(err)
	is.Equal(s.RequestCount(), 1)
}
