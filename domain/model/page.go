package model

// Page is one bounded, key-ordered slice of a collection.
type Page[T any] struct {
	Items      []T
	TotalCount int64
	PageNumber int
	PageSize   int
}
