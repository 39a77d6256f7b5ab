package cli

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sciencehub/hubctl/models"
)

func testApp() *App {
	return &App{validate: validator.New()}
}

func TestCheckInput(t *testing.T) {
	app := testApp()

	assert.NoError(t, app.checkInput(models.LoginRequest{Email: "a@b.c", Password: "pw"}))

	err := app.checkInput(models.LoginRequest{Email: "not-an-email"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email")
	assert.Contains(t, err.Error(), "Password")

	err = app.checkInput(models.RegisterRequest{
		Email:           "a@b.c",
		FullName:        "A",
		Password:        "longenough",
		ConfirmPassword: "different",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ConfirmPassword")
}

func TestCheckInputDifficulty(t *testing.T) {
	app := testApp()

	assert.NoError(t, app.checkInput(models.BookFilters{Difficulty: models.DifficultyBeginner}))
	assert.Error(t, app.checkInput(models.BookFilters{Difficulty: "impossible"}))
	assert.NoError(t, app.checkInput(models.BookFilters{}))
}

func TestRootCommandTree(t *testing.T) {
	root := NewRootCmd()
	want := []string{"login", "logout", "whoami", "books", "categories", "audiences", "admin", "about"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
