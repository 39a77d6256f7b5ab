package normalize

import "github.com/sciencehub/hubctl/models"

// Normalizer builds canonical entities from raw payloads. BaseURL is used to
// absolutize relative image and PDF paths.
type Normalizer struct {
	BaseURL string
}

func New(baseURL string) *Normalizer {
	return &Normalizer{BaseURL: baseURL}
}

// Book normalizes one raw book object. Every field goes through the alias
// table; ids referenced by nested objects (category, audience) are resolved
// from either shape, and the image list is resolved through a fixed cascade
// where array-shaped data always wins over single-cover fields.
func (n *Normalizer) Book(raw Raw) models.Book {
	if raw == nil {
		return models.Book{Images: []models.BookImage{}}
	}

	id := field(raw, bookAliases, "id")

	book := models.Book{
		ID:            id,
		Title:         field(raw, bookAliases, "title"),
		Author:        field(raw, bookAliases, "author"),
		Description:   field(raw, bookAliases, "description"),
		Difficulty:    String(raw, models.DifficultyBeginner, bookAliases["difficulty"]...),
		Language:      field(raw, bookAliases, "language"),
		CategoryID:    n.refID(raw, bookAliases["categoryId"], "category"),
		AudienceID:    n.refID(raw, bookAliases["audienceId"], "audience"),
		PDFFileName:   field(raw, bookAliases, "pdfFileName"),
		PDFURL:        AbsoluteURL(n.BaseURL, field(raw, bookAliases, "pdfUrl")),
		FileSize:      Int64(raw, 0, bookAliases["fileSize"]...),
		PageCount:     IntPtr(raw, bookAliases["pageCount"]...),
		DownloadCount: Int(raw, 0, bookAliases["downloadCount"]...),
		Rating:        Float(raw, 0, bookAliases["rating"]...),
		CreatedAt:     field(raw, bookAliases, "createdAt"),
		UpdatedAt:     field(raw, bookAliases, "updatedAt"),
		CreatedByID:   field(raw, bookAliases, "createdById"),
	}

	if cat, ok := AsRaw(raw["category"]); ok {
		c := n.Category(cat)
		book.Category = &c
	}
	if aud, ok := AsRaw(raw["audience"]); ok {
		a := n.Audience(aud)
		book.Audience = &a
	}

	book.Images = n.bookImages(raw, id)
	return book
}

// refID resolves a reference that arrives either as a flat id field, as a
// nested object carrying its own id, or as a bare string under the object
// key.
func (n *Normalizer) refID(raw Raw, idKeys []string, objectKey string) string {
	if id := String(raw, "", idKeys...); id != "" {
		return id
	}
	v, ok := Lookup(raw, objectKey)
	if !ok {
		return ""
	}
	if obj, ok := AsRaw(v); ok {
		return field(obj, namedAliases, "id")
	}
	return toString(v, "")
}

// bookImages applies the image cascade:
//  1. any known array field, each element normalized (objects fully, bare
//     URL strings as imageUrl-only entries);
//  2. if that produced nothing, single cover-url fields synthesize a
//     one-element list with an empty id;
//  3. if still nothing and the raw images field is itself a URL string,
//     synthesize from that.
//
// The order is load-bearing: array data must win over cover fields.
func (n *Normalizer) bookImages(raw Raw, bookID string) []models.BookImage {
	images := []models.BookImage{}

	rawImages, _ := Lookup(raw, bookAliases["images"]...)
	if list, ok := rawImages.([]any); ok {
		for _, el := range list {
			if obj, ok := AsRaw(el); ok {
				images = append(images, n.Image(obj))
			} else if s, ok := el.(string); ok && s != "" {
				images = append(images, models.BookImage{BookID: bookID, ImageURL: AbsoluteURL(n.BaseURL, s)})
			}
		}
	}
	if len(images) > 0 {
		return images
	}

	if cover := String(raw, "", coverAliases...); cover != "" {
		return []models.BookImage{{BookID: bookID, ImageURL: AbsoluteURL(n.BaseURL, cover)}}
	}

	if s, ok := rawImages.(string); ok && s != "" {
		return []models.BookImage{{BookID: bookID, ImageURL: AbsoluteURL(n.BaseURL, s)}}
	}

	return images
}

// Image normalizes one raw book image.
func (n *Normalizer) Image(raw Raw) models.BookImage {
	return models.BookImage{
		ID:        field(raw, imageAliases, "id"),
		BookID:    field(raw, imageAliases, "bookId"),
		ImageURL:  AbsoluteURL(n.BaseURL, field(raw, imageAliases, "imageUrl")),
		CreatedAt: field(raw, imageAliases, "createdAt"),
	}
}

func (n *Normalizer) Category(raw Raw) models.Category {
	return models.Category{
		ID:          field(raw, namedAliases, "id"),
		Name:        field(raw, namedAliases, "name"),
		Description: field(raw, namedAliases, "description"),
	}
}

func (n *Normalizer) Audience(raw Raw) models.Audience {
	return models.Audience{
		ID:          field(raw, namedAliases, "id"),
		Name:        field(raw, namedAliases, "name"),
		Description: field(raw, namedAliases, "description"),
	}
}
