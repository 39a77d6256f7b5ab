package models

// Page is one page of a paginated list response. Items is never nil.
type Page[T any] struct {
	Items           []T  `json:"items"`
	Page            int  `json:"page"`
	PageSize        int  `json:"pageSize"`
	TotalCount      int  `json:"totalCount"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// EmptyPage is what list endpoints degrade to when the backend returns
// nothing usable.
func EmptyPage[T any]() Page[T] {
	return Page[T]{Items: []T{}}
}
