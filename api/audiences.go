package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sciencehub/hubctl/models"
	"github.com/sciencehub/hubctl/normalize"
)

// ListAudiences returns all audiences; same tolerant shapes as categories.
func (c *Client) ListAudiences(ctx context.Context) ([]models.Audience, error) {
	body, err := c.getJSON(ctx, "/api/audiences", nil)
	if err != nil {
		return nil, err
	}
	return normalize.ListOf(body, c.norm.Audience), nil
}

func (c *Client) GetAudience(ctx context.Context, id string) (models.Audience, error) {
	body, err := c.getJSON(ctx, "/api/audiences/"+url.PathEscape(id), nil)
	if err != nil {
		return models.Audience{}, err
	}
	raw, _ := normalize.AsRaw(normalize.UnwrapData(body))
	return c.norm.Audience(raw), nil
}

func (c *Client) CreateAudience(ctx context.Context, req models.CreateAudienceRequest) (models.Audience, error) {
	body, err := c.sendJSON(ctx, http.MethodPost, "/api/admin/audiences", req)
	if err != nil {
		return models.Audience{}, err
	}
	raw, _ := normalize.AsRaw(normalize.UnwrapData(body))
	return c.norm.Audience(raw), nil
}

func (c *Client) UpdateAudience(ctx context.Context, id string, req models.UpdateAudienceRequest) (models.Audience, error) {
	body, err := c.sendJSON(ctx, http.MethodPut, "/api/admin/audiences/"+url.PathEscape(id), req)
	if err != nil {
		return models.Audience{}, err
	}
	raw, _ := normalize.AsRaw(normalize.UnwrapData(body))
	return c.norm.Audience(raw), nil
}

func (c *Client) DeleteAudience(ctx context.Context, id string) error {
	_, err := c.sendJSON(ctx, http.MethodDelete, "/api/admin/audiences/"+url.PathEscape(id), nil)
	return err
}
