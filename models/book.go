package models

// Difficulty levels used by the catalog.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

var ValidDifficulties = []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

type Book struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Author        string      `json:"author"`
	Description   string      `json:"description"`
	Difficulty    string      `json:"difficulty"`
	Language      string      `json:"language"`
	CategoryID    string      `json:"categoryId"`
	Category      *Category   `json:"category,omitempty"`
	AudienceID    string      `json:"audienceId"`
	Audience      *Audience   `json:"audience,omitempty"`
	PDFFileName   string      `json:"pdfFileName"`
	PDFURL        string      `json:"pdfUrl"`
	FileSize      int64       `json:"fileSize"`
	PageCount     *int        `json:"pageCount,omitempty"`
	DownloadCount int         `json:"downloadCount"`
	Rating        float64     `json:"rating"`
	CreatedAt     string      `json:"createdAt"`
	UpdatedAt     string      `json:"updatedAt"`
	CreatedByID   string      `json:"createdById"`
	Images        []BookImage `json:"images"` // never nil; empty when the backend sent nothing usable
}

type BookImage struct {
	ID        string `json:"id"`
	BookID    string `json:"bookId"`
	ImageURL  string `json:"imageUrl"`
	CreatedAt string `json:"createdAt"`
}

// CoverURL returns the first image URL, or "" when the book has no covers.
func (b *Book) CoverURL() string {
	if len(b.Images) == 0 {
		return ""
	}
	return b.Images[0].ImageURL
}

// CreateBookRequest is sent as multipart form data; PDFPath and CoverPaths
// are local files attached as the pdfFile and coverImages parts.
type CreateBookRequest struct {
	Title       string   `validate:"required"`
	Author      string   `validate:"required"`
	Description string   `validate:"required"`
	Difficulty  string   `validate:"required,oneof=Beginner Intermediate Advanced"`
	Language    string   `validate:"required"`
	CategoryID  string   `validate:"required"`
	AudienceID  string   `validate:"required"`
	PDFPath     string   `validate:"required"`
	CoverPaths  []string `validate:"omitempty,dive,required"`
	PageCount   int      `validate:"omitempty,gte=0"`
}

// UpdateBookRequest carries only the fields to change; zero values are left
// out of the multipart form.
type UpdateBookRequest struct {
	Title       string
	Author      string
	Description string
	Difficulty  string `validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Language    string
	CategoryID  string
	AudienceID  string
	PDFPath     string
	CoverPaths  []string
	PageCount   int `validate:"omitempty,gte=0"`
}

// BookFilters maps to the /api/books query string.
type BookFilters struct {
	Page       int
	PageSize   int
	Search     string
	CategoryID string
	AudienceID string
	Difficulty string `validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Language   string
	SortBy     string
	SortOrder  string `validate:"omitempty,oneof=asc desc"`
}
