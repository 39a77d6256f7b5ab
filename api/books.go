package api

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sciencehub/hubctl/models"
	"github.com/sciencehub/hubctl/normalize"
)

// ListBooks fetches one page of the catalog. The backend's list shape
// varies (bare array vs items envelope); both come back as a Page.
func (c *Client) ListBooks(ctx context.Context, filters models.BookFilters) (models.Page[models.Book], error) {
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
	if filters.CategoryID != "" {
		q.Set("categoryId", filters.CategoryID)
	}
	if filters.AudienceID != "" {
		q.Set("audienceId", filters.AudienceID)
	}
	if filters.Difficulty != "" {
		q.Set("difficulty", filters.Difficulty)
	}
	if filters.Language != "" {
		q.Set("language", filters.Language)
	}
	if filters.SortBy != "" {
		q.Set("sortBy", filters.SortBy)
	}
	if filters.SortOrder != "" {
		q.Set("sortOrder", filters.SortOrder)
	}

	body, err := c.getJSON(ctx, "/api/books", q)
	if err != nil {
		return models.EmptyPage[models.Book](), err
	}
	return normalize.PageOf(body, c.norm.Book), nil
}

// GetBook fetches a single book. Single-book payloads are sometimes wrapped
// in {data: ...} and/or {book: ...}.
func (c *Client) GetBook(ctx context.Context, id string) (models.Book, error) {
	body, err := c.getJSON(ctx, "/api/books/"+url.PathEscape(id), nil)
	if err != nil {
		return models.Book{Images: []models.BookImage{}}, err
	}
	body = normalize.UnwrapData(body)
	if raw, ok := normalize.AsRaw(body); ok {
		if inner, ok := normalize.AsRaw(raw["book"]); ok {
			raw = inner
		}
		return c.norm.Book(raw), nil
	}
	return c.norm.Book(nil), nil
}

// BooksByCategory returns all books in one category, unpaginated.
func (c *Client) BooksByCategory(ctx context.Context, categoryID string) ([]models.Book, error) {
	body, err := c.getJSON(ctx, "/api/books/category/"+url.PathEscape(categoryID), nil)
	if err != nil {
		return nil, err
	}
	return normalize.ListOf(body, c.norm.Book), nil
}

// Download streams the book's PDF. The returned name comes from the
// Content-Disposition header when present. Caller closes the reader.
func (c *Client) Download(ctx context.Context, id string) (io.ReadCloser, string, error) {
	resp, err := c.attempt(ctx, http.MethodGet, "/api/books/"+url.PathEscape(id)+"/download", nil, nil, "", true)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		if err := c.refresh(ctx); err != nil {
			return nil, "", err
		}
		resp, err = c.attempt(ctx, http.MethodGet, "/api/books/"+url.PathEscape(id)+"/download", nil, nil, "", true)
		if err != nil {
			return nil, "", err
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", c.errorFromResponse(resp)
	}
	name := ""
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			name = params["filename"]
		}
	}
	return resp.Body, name, nil
}

// DownloadURL returns the direct download link for a book.
func (c *Client) DownloadURL(id string) string {
	return fmt.Sprintf("%s/api/books/%s/download", c.baseURL, url.PathEscape(id))
}

// CreateBook uploads a new book as multipart form data (pdfFile plus
// repeated coverImages parts).
func (c *Client) CreateBook(ctx context.Context, req models.CreateBookRequest) (models.Book, error) {
	form, err := buildBookForm(bookFormFields(req), req.PDFPath, req.CoverPaths)
	if err != nil {
		return models.Book{Images: []models.BookImage{}}, err
	}
	body, err := c.sendForm(ctx, http.MethodPost, "/api/books", form.data, form.contentType)
	if err != nil {
		return models.Book{Images: []models.BookImage{}}, err
	}
	raw, _ := normalize.AsRaw(normalize.UnwrapData(body))
	return c.norm.Book(raw), nil
}

// UpdateBook sends only the provided fields.
func (c *Client) UpdateBook(ctx context.Context, id string, req models.UpdateBookRequest) (models.Book, error) {
	fields := map[string]string{}
	setIfPresent(fields, "title", req.Title)
	setIfPresent(fields, "author", req.Author)
	setIfPresent(fields, "description", req.Description)
	setIfPresent(fields, "difficulty", req.Difficulty)
	setIfPresent(fields, "language", req.Language)
	setIfPresent(fields, "categoryId", req.CategoryID)
	setIfPresent(fields, "audienceId", req.AudienceID)
	if req.PageCount > 0 {
		fields["pageCount"] = strconv.Itoa(req.PageCount)
	}
	form, err := buildBookForm(fields, req.PDFPath, req.CoverPaths)
	if err != nil {
		return models.Book{Images: []models.BookImage{}}, err
	}
	body, err := c.sendForm(ctx, http.MethodPut, "/api/books/"+url.PathEscape(id), form.data, form.contentType)
	if err != nil {
		return models.Book{Images: []models.BookImage{}}, err
	}
	raw, _ := normalize.AsRaw(normalize.UnwrapData(body))
	return c.norm.Book(raw), nil
}

func (c *Client) DeleteBook(ctx context.Context, id string) error {
	_, err := c.sendJSON(ctx, http.MethodDelete, "/api/books/"+url.PathEscape(id), nil)
	return err
}

func bookFormFields(req models.CreateBookRequest) map[string]string {
	fields := map[string]string{
		"title":       req.Title,
		"author":      req.Author,
		"description": req.Description,
		"difficulty":  req.Difficulty,
		"language":    req.Language,
		"categoryId":  req.CategoryID,
		"audienceId":  req.AudienceID,
	}
	if req.PageCount > 0 {
		fields["pageCount"] = strconv.Itoa(req.PageCount)
	}
	return fields
}

func setIfPresent(fields map[string]string, key, value string) {
	if value != "" {
		fields[key] = value
	}
}
