package dto

import "github.com/shopward/shopward_backend/internal/core/domain"

// SortItem is the sort specification accepted in search request bodies.
type SortItem struct {
	SortOn      string `json:"sortOn"`
	IsAscending bool   `json:"isAscending"`
}

// Paging is the pagination window accepted in search request bodies.
type Paging struct {
	ItemPerPage int `json:"itemPerPage"`
	CurrentPage int `json:"currentPage"`
}

func (s SortItem) toDomain() domain.SortSpec {
	return domain.SortSpec{SortOn: s.SortOn, Ascending: s.IsAscending}
}

func (p Paging) toDomain() domain.PageSpec {
	return domain.PageSpec{ItemPerPage: p.ItemPerPage, CurrentPage: p.CurrentPage}
}
