package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func decodeAny(t *testing.T, body string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

func TestPageOfEnvelope(t *testing.T) {
	n := New(testBase)
	v := decodeAny(t, `{"items":[{"id":"b1"},{"id":"b2"}],"page":2,"pageSize":12,"totalCount":30}`)

	page := PageOf(v, n.Book)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "b1", page.Items[0].ID)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 12, page.PageSize)
	assert.Equal(t, 30, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNextPage)
	assert.True(t, page.HasPreviousPage)
}

func TestPageOfDataWrapped(t *testing.T) {
	n := New(testBase)
	v := decodeAny(t, `{"data":{"Items":[{"id":"b1"}],"Page":1,"PageSize":10,"TotalCount":1}}`)

	page := PageOf(v, n.Book)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasNextPage)
	assert.False(t, page.HasPreviousPage)
}

func TestPageOfBareArray(t *testing.T) {
	n := New(testBase)
	v := decodeAny(t, `[{"id":"b1"},{"id":"b2"},{"id":"b3"}]`)

	page := PageOf(v, n.Book)
	require.Len(t, page.Items, 3)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.PageSize)
	assert.Equal(t, 3, page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasNextPage)
}

// The server's totalPages is ignored when it disagrees with
// ceil(totalCount/pageSize).
func TestPageOfRecomputesTotalPages(t *testing.T) {
	n := New(testBase)
	v := decodeAny(t, `{"items":[],"page":1,"pageSize":10,"totalCount":25,"totalPages":99}`)

	page := PageOf(v, n.Book)
	assert.Equal(t, 3, page.TotalPages)
}

func TestPageOfDefaults(t *testing.T) {
	n := New(testBase)

	// missing pageSize defaults to the item count
	v := decodeAny(t, `{"items":[{"id":"b1"},{"id":"b2"}]}`)
	page := PageOf(v, n.Book)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.PageSize)
	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)

	// garbage degrades to an empty page, never nil items
	page = PageOf("unexpected", n.Book)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)

	page = PageOf(decodeAny(t, `{"items":null}`), n.Book)
	assert.Empty(t, page.Items)
}

func TestPageOfTotalPagesProperty(t *testing.T) {
	n := New(testBase)
	rapid.Check(t, func(t *rapid.T) {
		totalCount := rapid.IntRange(0, 500).Draw(t, "totalCount")
		pageSize := rapid.IntRange(1, 50).Draw(t, "pageSize")
		pageNum := rapid.IntRange(1, 20).Draw(t, "page")

		page := PageOf(map[string]any{
			"items":      []any{},
			"page":       float64(pageNum),
			"pageSize":   float64(pageSize),
			"totalCount": float64(totalCount),
		}, n.Book)

		want := (totalCount + pageSize - 1) / pageSize
		if page.TotalPages != want {
			t.Fatalf("totalPages = %d, want %d", page.TotalPages, want)
		}
		if page.HasNextPage != (pageNum < want) {
			t.Fatalf("hasNextPage = %v for page %d of %d", page.HasNextPage, pageNum, want)
		}
		if page.HasPreviousPage != (pageNum > 1) {
			t.Fatalf("hasPreviousPage = %v for page %d", page.HasPreviousPage, pageNum)
		}
	})
}

func TestListOfShapes(t *testing.T) {
	n := New(testBase)

	list := ListOf(decodeAny(t, `[{"id":"c1","name":"Physics"}]`), n.Category)
	require.Len(t, list, 1)
	assert.Equal(t, "Physics", list[0].Name)

	list = ListOf(decodeAny(t, `{"data":{"items":[{"id":"c1"}]}}`), n.Category)
	assert.Len(t, list, 1)

	list = ListOf(decodeAny(t, `{"unexpected":true}`), n.Category)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestNormalizeListSkipsNonObjects(t *testing.T) {
	n := New(testBase)
	v := decodeAny(t, `[{"id":"b1"},"noise",42,{"id":"b2"}]`)
	page := PageOf(v, n.Book)
	require.Len(t, page.Items, 2)
	assert.Equal(t, []string{"b1", "b2"}, []string{page.Items[0].ID, page.Items[1].ID})
}
