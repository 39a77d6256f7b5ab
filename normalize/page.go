package normalize

import "github.com/sciencehub/hubctl/models"

// PageOf normalizes a list response into a Page. List endpoints return
// either a bare array or an {items: [...], page, pageSize, ...} envelope
// (each possibly wrapped one level in {data: ...}); a bare array becomes a
// synthesized single page. Anything else degrades to an empty page.
//
// totalPages is always recomputed as ceil(totalCount/pageSize) when a page
// size is known; backends have been seen reporting a stale value.
func PageOf[T any](v any, norm func(Raw) T) models.Page[T] {
	v = UnwrapData(v)

	if list, ok := v.([]any); ok {
		items := normalizeList(list, norm)
		return models.Page[T]{
			Items:      items,
			Page:       1,
			PageSize:   len(items),
			TotalCount: len(items),
			TotalPages: 1,
		}
	}

	raw, ok := AsRaw(v)
	if !ok {
		return models.EmptyPage[T]()
	}
	itemsVal, _ := Lookup(raw, pageAliases["items"]...)
	list, ok := itemsVal.([]any)
	if !ok {
		return models.EmptyPage[T]()
	}

	page := models.Page[T]{
		Items:      normalizeList(list, norm),
		Page:       Int(raw, 1, pageAliases["page"]...),
		PageSize:   Int(raw, 0, pageAliases["pageSize"]...),
		TotalCount: Int(raw, len(list), pageAliases["totalCount"]...),
	}
	if page.PageSize <= 0 {
		page.PageSize = len(page.Items)
	}
	if page.PageSize > 0 {
		page.TotalPages = (page.TotalCount + page.PageSize - 1) / page.PageSize
	}
	page.HasNextPage = Bool(raw, page.Page < page.TotalPages, pageAliases["hasNextPage"]...)
	page.HasPreviousPage = Bool(raw, page.Page > 1, pageAliases["hasPreviousPage"]...)
	return page
}

// ListOf normalizes endpoints that return a plain list (categories,
// audiences, books by category); it accepts the same array / items-envelope
// / data-envelope shapes and returns a never-nil slice.
func ListOf[T any](v any, norm func(Raw) T) []T {
	v = UnwrapData(v)

	if list, ok := v.([]any); ok {
		return normalizeList(list, norm)
	}
	if raw, ok := AsRaw(v); ok {
		if itemsVal, ok := Lookup(raw, pageAliases["items"]...); ok {
			if list, ok := itemsVal.([]any); ok {
				return normalizeList(list, norm)
			}
		}
	}
	return []T{}
}

func normalizeList[T any](list []any, norm func(Raw) T) []T {
	items := make([]T, 0, len(list))
	for _, el := range list {
		if obj, ok := AsRaw(el); ok {
			items = append(items, norm(obj))
		}
	}
	return items
}
