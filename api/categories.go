package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sciencehub/hubctl/models"
	"github.com/sciencehub/hubctl/normalize"
)

// ListCategories returns all categories, tolerating array, items-envelope
// and data-envelope shapes.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	body, err := c.getJSON(ctx, "/api/categories", nil)
	if err != nil {
		return nil, err
	}
	return normalize.ListOf(body, c.norm.Category), nil
}

func (c *Client) GetCategory(ctx context.Context, id string) (models.Category, error) {
	body, err := c.getJSON(ctx, "/api/categories/"+url.PathEscape(id), nil)
	if err != nil {
		return models.Category{}, err
	}
	raw, _ := normalize.AsRaw(normalize.UnwrapData(body))
	return c.norm.Category(raw), nil
}

// Category mutations go through the admin routes.

func (c *Client) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (models.Category, error) {
	body, err := c.sendJSON(ctx, http.MethodPost, "/api/admin/categories", req)
	if err != nil {
		return models.Category{}, err
	}
	raw, _ := normalize.AsRaw(normalize.UnwrapData(body))
	return c.norm.Category(raw), nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, req models.UpdateCategoryRequest) (models.Category, error) {
	body, err := c.sendJSON(ctx, http.MethodPut, "/api/admin/categories/"+url.PathEscape(id), req)
	if err != nil {
		return models.Category{}, err
	}
	raw, _ := normalize.AsRaw(normalize.UnwrapData(body))
	return c.norm.Category(raw), nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	_, err := c.sendJSON(ctx, http.MethodDelete, "/api/admin/categories/"+url.PathEscape(id), nil)
	return err
}
