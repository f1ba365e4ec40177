package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/diwise/tag-migrator/pkg/vim"
	"github.com/diwise/tag-migrator/pkg/vim/errors"
)

//go:generate moq -rm -out ../test/managementclient_mock.go . ManagementClient

// ManagementClient provides the narrow set of management server operations
// that the attribute to tag migration needs, scoped to a single server
// connection.
type ManagementClient interface {
	ListCustomAttributes(ctx context.Context) ([]vim.CustomAttribute, error)
	ListTagCategories(ctx context.Context) ([]vim.TagCategory, error)
	CreateTagCategory(ctx context.Context, category vim.TagCategory) (vim.TagCategory, error)
	UpdateTagCategory(ctx context.Context, categoryID string, associableTypes []string) (vim.TagCategory, error)
	ListTags(ctx context.Context) ([]vim.Tag, error)
	CreateTag(ctx context.Context, tag vim.Tag) (vim.Tag, error)
	RetrieveTag(ctx context.Context, name, categoryID string) (vim.Tag, error)
	ListInventoryItems(ctx context.Context) ([]vim.InventoryItem, error)
	ListAnnotations(ctx context.Context, itemID string) ([]vim.Annotation, error)
	CreateTagAssignment(ctx context.Context, assignment vim.TagAssignment) error
}

func Debug(enabled string) func(*mgmtClient) {
	return func(c *mgmtClient) {
		c.debug = (enabled == "true")
	}
}

func SessionToken(token string) func(*mgmtClient) {
	return func(c *mgmtClient) {
		c.sessionToken = token
	}
}

func NewManagementClient(serverURL string, options ...func(*mgmtClient)) ManagementClient {
	c := &mgmtClient{
		baseURL: serverURL,
		debug:   false,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

const (
	TraceAttributeCategoryID string = "category-id"
	TraceAttributeObjectID   string = "object-id"
	TraceAttributeTagName    string = "tag-name"
)

var tracer = otel.Tracer("vim-client")

type mgmtClient struct {
	baseURL      string
	sessionToken string
	debug        bool
}

func (c mgmtClient) ListCustomAttributes(ctx context.Context) ([]vim.CustomAttribute, error) {
	var attributes []vim.CustomAttribute
	err := c.list(ctx, "list-custom-attributes", "/api/v1/custom-attributes", &attributes)
	return attributes, err
}

func (c mgmtClient) ListTagCategories(ctx context.Context) ([]vim.TagCategory, error) {
	var categories []vim.TagCategory
	err := c.list(ctx, "list-tag-categories", "/api/v1/tag-categories", &categories)
	return categories, err
}

func (c mgmtClient) CreateTagCategory(ctx context.Context, category vim.TagCategory) (vim.TagCategory, error) {
	var err error

	created := vim.TagCategory{}

	ctx, span := tracer.Start(ctx, "create-tag-category")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := json.Marshal(category)
	if err != nil {
		return created, fmt.Errorf("failed to marshal tag category: %w", err)
	}

	resp, respBody, err := c.callManagementAPI(
		ctx, http.MethodPost, c.baseURL+"/api/v1/tag-categories", bytes.NewBuffer(body),
	)

	if err != nil {
		return created, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		err = errors.NewErrorFromProblemReport(resp.StatusCode, resp.Header.Get("Content-Type"), respBody)
		return created, err
	}

	if resp.StatusCode != http.StatusCreated {
		err = fmt.Errorf("unexpected response code %d (%w)", resp.StatusCode, errors.ErrInternal)
		return created, err
	}

	err = json.Unmarshal(respBody, &created)
	return created, err
}

func (c mgmtClient) UpdateTagCategory(ctx context.Context, categoryID string, associableTypes []string) (vim.TagCategory, error) {
	var err error

	updated := vim.TagCategory{}

	ctx, span := tracer.Start(ctx, "update-tag-category",
		trace.WithAttributes(attribute.String(TraceAttributeCategoryID, categoryID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := json.Marshal(struct {
		AssociableTypes []string `json:"associableTypes"`
	}{AssociableTypes: associableTypes})
	if err != nil {
		return updated, fmt.Errorf("failed to marshal category update: %w", err)
	}

	resp, respBody, err := c.callManagementAPI(
		ctx, http.MethodPatch, c.baseURL+"/api/v1/tag-categories/"+url.QueryEscape(categoryID), bytes.NewBuffer(body),
	)

	if err != nil {
		return updated, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		err = errors.NewErrorFromProblemReport(resp.StatusCode, resp.Header.Get("Content-Type"), respBody)
		return updated, err
	}

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("unexpected response code %d (%w)", resp.StatusCode, errors.ErrInternal)
		return updated, err
	}

	err = json.Unmarshal(respBody, &updated)
	return updated, err
}

func (c mgmtClient) ListTags(ctx context.Context) ([]vim.Tag, error) {
	var tags []vim.Tag
	err := c.list(ctx, "list-tags", "/api/v1/tags", &tags)
	return tags, err
}

func (c mgmtClient) CreateTag(ctx context.Context, tag vim.Tag) (vim.Tag, error) {
	var err error

	created := vim.Tag{}

	ctx, span := tracer.Start(ctx, "create-tag",
		trace.WithAttributes(attribute.String(TraceAttributeTagName, tag.Name)),
		trace.WithAttributes(attribute.String(TraceAttributeCategoryID, tag.CategoryID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := json.Marshal(tag)
	if err != nil {
		return created, fmt.Errorf("failed to marshal tag: %w", err)
	}

	resp, respBody, err := c.callManagementAPI(
		ctx, http.MethodPost, c.baseURL+"/api/v1/tags", bytes.NewBuffer(body),
	)

	if err != nil {
		return created, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		err = errors.NewErrorFromProblemReport(resp.StatusCode, resp.Header.Get("Content-Type"), respBody)
		return created, err
	}

	if resp.StatusCode != http.StatusCreated {
		err = fmt.Errorf("unexpected response code %d (%w)", resp.StatusCode, errors.ErrInternal)
		return created, err
	}

	err = json.Unmarshal(respBody, &created)
	return created, err
}

func (c mgmtClient) RetrieveTag(ctx context.Context, name, categoryID string) (vim.Tag, error) {
	var err error

	ctx, span := tracer.Start(ctx, "retrieve-tag",
		trace.WithAttributes(attribute.String(TraceAttributeTagName, name)),
		trace.WithAttributes(attribute.String(TraceAttributeCategoryID, categoryID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var tags []vim.Tag
	err = c.listNoSpan(ctx,
		"/api/v1/tags?name="+url.QueryEscape(name)+"&category="+url.QueryEscape(categoryID),
		&tags,
	)
	if err != nil {
		return vim.Tag{}, err
	}

	if len(tags) == 0 {
		err = errors.NewNotFoundError(fmt.Sprintf("no tag named %s in category %s", name, categoryID))
		return vim.Tag{}, err
	}

	return tags[0], nil
}

func (c mgmtClient) ListInventoryItems(ctx context.Context) ([]vim.InventoryItem, error) {
	var items []vim.InventoryItem
	err := c.list(ctx, "list-inventory-items", "/api/v1/inventory", &items)
	return items, err
}

func (c mgmtClient) ListAnnotations(ctx context.Context, itemID string) ([]vim.Annotation, error) {
	var err error

	ctx, span := tracer.Start(ctx, "list-annotations",
		trace.WithAttributes(attribute.String(TraceAttributeObjectID, itemID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var annotations []vim.Annotation
	err = c.listNoSpan(ctx, "/api/v1/inventory/"+url.QueryEscape(itemID)+"/annotations", &annotations)
	return annotations, err
}

func (c mgmtClient) CreateTagAssignment(ctx context.Context, assignment vim.TagAssignment) error {
	var err error

	ctx, span := tracer.Start(ctx, "create-tag-assignment",
		trace.WithAttributes(attribute.String(TraceAttributeObjectID, assignment.ObjectID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := json.Marshal(assignment)
	if err != nil {
		return fmt.Errorf("failed to marshal tag assignment: %w", err)
	}

	resp, respBody, err := c.callManagementAPI(
		ctx, http.MethodPost, c.baseURL+"/api/v1/tag-assignments", bytes.NewBuffer(body),
	)

	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		err = errors.NewErrorFromProblemReport(resp.StatusCode, resp.Header.Get("Content-Type"), respBody)
		return err
	}

	if resp.StatusCode != http.StatusCreated {
		err = fmt.Errorf("unexpected response code %d (%w)", resp.StatusCode, errors.ErrInternal)
		return err
	}

	return nil
}

func (c mgmtClient) list(ctx context.Context, spanName, path string, result any) error {
	var err error

	ctx, span := tracer.Start(ctx, spanName)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	err = c.listNoSpan(ctx, path, result)
	return err
}

func (c mgmtClient) listNoSpan(ctx context.Context, path string, result any) error {
	response, responseBody, err := c.callManagementAPI(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	if response.StatusCode != http.StatusOK {
		contentType := response.Header.Get("Content-Type")
		if response.StatusCode >= http.StatusBadRequest && response.StatusCode <= http.StatusInternalServerError {
			return errors.NewErrorFromProblemReport(response.StatusCode, contentType, responseBody)
		}

		return fmt.Errorf("unexpected response code %d (%w)", response.StatusCode, errors.ErrInternal)
	}

	err = json.Unmarshal(responseBody, result)
	if err != nil {
		if c.debug && len(responseBody) < 1000 {
			return fmt.Errorf("unmarshaling of %s failed with err %s", string(responseBody), err.Error())
		}

		return err
	}

	return nil
}

func (c mgmtClient) callManagementAPI(ctx context.Context, method, endpoint string, body io.Reader) (*http.Response, []byte, error) {
	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %s (%w)", err.Error(), errors.ErrInternal)
	}

	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}

	if c.sessionToken != "" {
		req.Header.Add("X-VIM-Session-Id", c.sessionToken)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %s (%w)", err.Error(), errors.ErrRequest)
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %s (%w)", err.Error(), errors.ErrBadResponse)
	}

	if c.debug && resp.StatusCode >= http.StatusBadRequest {
		if resp.StatusCode != http.StatusUnauthorized && resp.StatusCode != http.StatusNotFound {
			reqbytes, _ := httputil.DumpRequest(req, false)
			respbytes, _ := httputil.DumpResponse(resp, false)

			log := logging.GetFromContext(ctx)
			log.Error("request failed", "request", string(reqbytes), "response", string(respbytes))
		}
	}

	return resp, respBody, nil
}
