package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sciencehub/hubctl/models"
	"github.com/sciencehub/hubctl/normalize"
)

// Statistics fetches the admin dashboard summary.
func (c *Client) Statistics(ctx context.Context) (models.Statistics, error) {
	body, err := c.getJSON(ctx, "/api/admin/statistics", nil)
	if err != nil {
		return models.Statistics{}, err
	}
	raw, _ := normalize.AsRaw(normalize.UnwrapData(body))
	return c.norm.Statistics(raw), nil
}

// ListUsers fetches one page of accounts.
func (c *Client) ListUsers(ctx context.Context, filters models.UserFilters) (models.Page[models.User], error) {
	q := url.Values{}
	if filters.Page > 0 {
		q.Set("page", strconv.Itoa(filters.Page))
	}
	if filters.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(filters.PageSize))
	}
	if filters.Search != "" {
		q.Set("search", filters.Search)
	}
	if filters.Role != "" {
		q.Set("role", filters.Role)
	}
	if filters.IsActive != nil {
		q.Set("isActive", strconv.FormatBool(*filters.IsActive))
	}

	body, err := c.getJSON(ctx, "/api/admin/users", q)
	if err != nil {
		return models.EmptyPage[models.User](), err
	}
	return normalize.PageOf(body, c.norm.User), nil
}

func (c *Client) UpdateUserRole(ctx context.Context, userID, role string) error {
	_, err := c.sendJSON(ctx, http.MethodPut, "/api/admin/users/"+url.PathEscape(userID)+"/role", map[string]string{"role": role})
	return err
}

func (c *Client) ToggleUserActive(ctx context.Context, userID string) error {
	_, err := c.sendJSON(ctx, http.MethodPut, "/api/admin/users/"+url.PathEscape(userID)+"/toggle-active", nil)
	return err
}
