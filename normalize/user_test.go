package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sciencehub/hubctl/models"
)

func TestUserAliases(t *testing.T) {
	n := New(testBase)

	got := n.User(decodeRaw(t, `{"id":"u1","email":"ada@example.com","fullName":"Ada Lovelace","role":"Admin","isActive":true}`))
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "Ada Lovelace", got.FullName)
	assert.Equal(t, models.RoleAdmin, got.Role)
	assert.True(t, got.IsActive)

	got = n.User(decodeRaw(t, `{"user_id":"u2","Email":"x@example.com","full_name":"X","is_active":false}`))
	assert.Equal(t, "u2", got.ID)
	assert.Equal(t, "X", got.FullName)
	assert.Equal(t, models.RoleUser, got.Role)
	assert.False(t, got.IsActive)
}

func TestAuthSnakeCase(t *testing.T) {
	n := New(testBase)
	raw := decodeRaw(t, `{"access_token":"abc","refresh_token":"def","expires_in":7200,"user_id":"42","email":"u@example.com","name":"U"}`)

	got := n.Auth(raw)
	assert.Equal(t, "abc", got.AccessToken)
	assert.Equal(t, "def", got.RefreshToken)
	assert.Equal(t, 7200, got.ExpiresIn)
	assert.Equal(t, "42", got.ID)
	assert.Equal(t, "u@example.com", got.Email)
	assert.Equal(t, "U", got.FullName)
	assert.Equal(t, models.RoleUser, got.Role)
}

func TestAuthBareTokenSpelling(t *testing.T) {
	n := New(testBase)
	got := n.Auth(decodeRaw(t, `{"token":"tok","role":"SuperAdmin"}`))
	assert.Equal(t, "tok", got.AccessToken)
	assert.Equal(t, models.RoleSuperAdmin, got.Role)
	assert.Equal(t, 3600, got.ExpiresIn)
}

func TestStatistics(t *testing.T) {
	n := New(testBase)
	raw := decodeRaw(t, `{
		"totalBooks": 12,
		"total_users": 40,
		"TotalDownloads": 300,
		"activeUsers": 25,
		"topBooks": [{"id":"b1","title":"Relativity","downloadCount":90}],
		"categoryStats": [{"categoryId":"c1","categoryName":"Physics","bookCount":7}]
	}`)

	got := n.Statistics(raw)
	assert.Equal(t, 12, got.TotalBooks)
	assert.Equal(t, 40, got.TotalUsers)
	assert.Equal(t, 300, got.TotalDownloads)
	assert.Equal(t, 25, got.ActiveUsers)
	require.Len(t, got.TopBooks, 1)
	assert.Equal(t, 90, got.TopBooks[0].DownloadCount)
	require.Len(t, got.CategoryStats, 1)
	assert.Equal(t, "Physics", got.CategoryStats[0].CategoryName)
}

func TestAbout(t *testing.T) {
	n := New(testBase)
	got := n.About(decodeRaw(t, `{"id":"a1","title":"About","content":"...","contact_email":"hi@example.com"}`))
	assert.Equal(t, "a1", got.ID)
	assert.Equal(t, "hi@example.com", got.ContactEmail)
}
