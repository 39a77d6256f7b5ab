package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sciencehub/hubctl/models"
)

func TestListUsersFilters(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/admin/users", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		assert.Equal(t, "false", q.Get("isActive"))
		assert.Equal(t, "Admin", q.Get("role"))
		writeJSON(w, http.StatusOK, `{"items":[{"id":"u1","email":"a@b.c","isActive":false}],"page":1,"pageSize":12,"totalCount":1}`)
	})

	client, _ := newTestClient(t, r)
	inactive := false
	page, err := client.ListUsers(context.Background(), models.UserFilters{Role: models.RoleAdmin, IsActive: &inactive})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.False(t, page.Items[0].IsActive)
}

func TestUpdateUserRoleBody(t *testing.T) {
	r := chi.NewRouter()
	r.Put("/api/admin/users/{id}/role", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "u1", chi.URLParam(req, "id"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, models.RoleSuperAdmin, body["role"])
		w.WriteHeader(http.StatusNoContent)
	})

	client, _ := newTestClient(t, r)
	require.NoError(t, client.UpdateUserRole(context.Background(), "u1", models.RoleSuperAdmin))
}

func TestStatisticsDataWrapped(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/admin/statistics", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":{"totalBooks":3,"totalUsers":9,"topBooks":[{"id":"b1","title":"T","downloadCount":5}]}}`)
	})

	client, _ := newTestClient(t, r)
	stats, err := client.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalBooks)
	assert.Equal(t, 9, stats.TotalUsers)
	require.Len(t, stats.TopBooks, 1)
	assert.Equal(t, 5, stats.TopBooks[0].DownloadCount)
}

func TestCategoryLifecycle(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/categories", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":[{"_id":"c1","Name":"Physics"}]}`)
	})
	r.Post("/api/admin/categories", func(w http.ResponseWriter, req *http.Request) {
		var body models.CreateCategoryRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		writeJSON(w, http.StatusCreated, `{"id":"c2","name":"`+body.Name+`"}`)
	})
	r.Delete("/api/admin/categories/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	client, _ := newTestClient(t, r)
	ctx := context.Background()

	list, err := client.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "c1", list[0].ID)
	assert.Equal(t, "Physics", list[0].Name)

	created, err := client.CreateCategory(ctx, models.CreateCategoryRequest{Name: "Math"})
	require.NoError(t, err)
	assert.Equal(t, "Math", created.Name)

	require.NoError(t, client.DeleteCategory(ctx, "c1"))
}
