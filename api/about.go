package api

import (
	"context"
	"net/http"

	"github.com/sciencehub/hubctl/models"
	"github.com/sciencehub/hubctl/normalize"
)

func (c *Client) AboutUs(ctx context.Context) (models.AboutUs, error) {
	body, err := c.getJSON(ctx, "/api/about-us", nil)
	if err != nil {
		return models.AboutUs{}, err
	}
	raw, _ := normalize.AsRaw(normalize.UnwrapData(body))
	return c.norm.About(raw), nil
}

func (c *Client) UpdateAboutUs(ctx context.Context, req models.UpdateAboutRequest) (models.AboutUs, error) {
	body, err := c.sendJSON(ctx, http.MethodPut, "/api/about-us", req)
	if err != nil {
		return models.AboutUs{}, err
	}
	raw, _ := normalize.AsRaw(normalize.UnwrapData(body))
	return c.norm.About(raw), nil
}
