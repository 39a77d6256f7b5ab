package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sciencehub/hubctl/models"
)

const testBase = "https://api.example.com"

func decodeRaw(t *testing.T, body string) Raw {
	t.Helper()
	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return Raw(v)
}

func TestBookAliasResolution(t *testing.T) {
	n := New(testBase)

	tests := []struct {
		name string
		body string
		want models.Book
	}{
		{
			name: "camelCase",
			body: `{"id":"b1","title":"Relativity","author":"A. Einstein","pageCount":120}`,
			want: models.Book{ID: "b1", Title: "Relativity", Author: "A. Einstein"},
		},
		{
			name: "PascalCase",
			body: `{"Id":"b2","Title":"Optics","Author":"I. Newton"}`,
			want: models.Book{ID: "b2", Title: "Optics", Author: "I. Newton"},
		},
		{
			name: "mongo id",
			body: `{"_id":"b3","title":"Dialogues"}`,
			want: models.Book{ID: "b3", Title: "Dialogues"},
		},
		{
			name: "numeric id",
			body: `{"id":42,"title":"Elements"}`,
			want: models.Book{ID: "42", Title: "Elements"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Book(decodeRaw(t, tt.body))
			assert.Equal(t, tt.want.ID, got.ID)
			assert.Equal(t, tt.want.Title, got.Title)
			assert.Equal(t, tt.want.Author, got.Author)
		})
	}
}

func TestBookDefaults(t *testing.T) {
	n := New(testBase)
	got := n.Book(decodeRaw(t, `{"id":"b1"}`))

	assert.Equal(t, models.DifficultyBeginner, got.Difficulty)
	assert.NotNil(t, got.Images)
	assert.Empty(t, got.Images)
	assert.Nil(t, got.PageCount)

	got = n.Book(nil)
	assert.NotNil(t, got.Images)
}

// A pageCount of 0 is a real backend value and must not collapse into
// "unknown".
func TestBookZeroPageCountIsPresent(t *testing.T) {
	n := New(testBase)
	got := n.Book(decodeRaw(t, `{"id":"b1","pageCount":0,"rating":0}`))
	require.NotNil(t, got.PageCount)
	assert.Equal(t, 0, *got.PageCount)
	assert.Equal(t, 0.0, got.Rating)
}

func TestBookCategoryReference(t *testing.T) {
	n := New(testBase)

	// flat id
	got := n.Book(decodeRaw(t, `{"id":"b1","categoryId":"c1"}`))
	assert.Equal(t, "c1", got.CategoryID)
	assert.Nil(t, got.Category)

	// nested object, id inside
	got = n.Book(decodeRaw(t, `{"id":"b1","category":{"id":"c2","name":"Physics"}}`))
	assert.Equal(t, "c2", got.CategoryID)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Physics", got.Category.Name)

	// bare string under the object key
	got = n.Book(decodeRaw(t, `{"id":"b1","audience":"a9"}`))
	assert.Equal(t, "a9", got.AudienceID)

	// flat id wins over nested
	got = n.Book(decodeRaw(t, `{"id":"b1","categoryId":"c1","category":{"id":"c2"}}`))
	assert.Equal(t, "c1", got.CategoryID)
}

func TestBookImageCascade(t *testing.T) {
	n := New(testBase)

	t.Run("array of objects", func(t *testing.T) {
		got := n.Book(decodeRaw(t, `{"id":"b1","images":[{"id":"i1","imageUrl":"/a.jpg"},{"Id":"i2","ImageUrl":"b.jpg"}]}`))
		require.Len(t, got.Images, 2)
		assert.Equal(t, "i1", got.Images[0].ID)
		assert.Equal(t, testBase+"/a.jpg", got.Images[0].ImageURL)
		assert.Equal(t, testBase+"/b.jpg", got.Images[1].ImageURL)
	})

	t.Run("array of bare strings", func(t *testing.T) {
		got := n.Book(decodeRaw(t, `{"id":"b1","coverImages":["/a.jpg","https://cdn.example.com/b.jpg"]}`))
		require.Len(t, got.Images, 2)
		assert.Equal(t, "b1", got.Images[0].BookID)
		assert.Equal(t, testBase+"/a.jpg", got.Images[0].ImageURL)
		assert.Equal(t, "https://cdn.example.com/b.jpg", got.Images[1].ImageURL)
	})

	t.Run("array wins over cover field", func(t *testing.T) {
		got := n.Book(decodeRaw(t, `{"id":"b1","images":[{"imageUrl":"/array.jpg"}],"coverImage":"/cover.jpg"}`))
		require.Len(t, got.Images, 1)
		assert.Equal(t, testBase+"/array.jpg", got.Images[0].ImageURL)
	})

	t.Run("cover field fallback", func(t *testing.T) {
		got := n.Book(decodeRaw(t, `{"id":"b1","coverUrl":"/cover.jpg"}`))
		require.Len(t, got.Images, 1)
		assert.Equal(t, "b1", got.Images[0].BookID)
		assert.Equal(t, "", got.Images[0].ID)
		assert.Equal(t, testBase+"/cover.jpg", got.Images[0].ImageURL)
	})

	t.Run("string images field fallback", func(t *testing.T) {
		got := n.Book(decodeRaw(t, `{"id":"b1","images":"/single.jpg"}`))
		require.Len(t, got.Images, 1)
		assert.Equal(t, testBase+"/single.jpg", got.Images[0].ImageURL)
	})

	t.Run("empty array then cover", func(t *testing.T) {
		got := n.Book(decodeRaw(t, `{"id":"b1","images":[],"thumbnail":"/t.jpg"}`))
		require.Len(t, got.Images, 1)
		assert.Equal(t, testBase+"/t.jpg", got.Images[0].ImageURL)
	})
}

func TestBookFileFields(t *testing.T) {
	n := New(testBase)
	got := n.Book(decodeRaw(t, `{"id":"b1","pdfUrl":"/files/b1.pdf","pdf_file_name":"b1.pdf","fileSize":1048576}`))
	assert.Equal(t, testBase+"/files/b1.pdf", got.PDFURL)
	assert.Equal(t, "b1.pdf", got.PDFFileName)
	assert.Equal(t, int64(1048576), got.FileSize)
}
