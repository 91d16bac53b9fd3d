package dto

import "github.com/shopward/shopward_backend/internal/core/domain"

// CreateActivityRequest carries the multipart form fields for activity creation.
type CreateActivityRequest struct {
	Text     string `form:"text"`
	Provider string `form:"provider"`
}

// ListActivitiesParams defines query parameters for listing activities.
type ListActivitiesParams struct {
	Provider    string `form:"provider"`
	SortOn      string `form:"sortOn,default=text"`
	IsAscending bool   `form:"isAscending,default=true"`
	ItemPerPage int    `form:"itemPerPage"`
	CurrentPage int    `form:"currentPage"`
}

// ToDomain converts the query parameters into the typed filter specification.
func (p ListActivitiesParams) ToDomain() domain.ActivityFilter {
	return domain.ActivityFilter{
		Provider: p.Provider,
		Sort:     domain.SortSpec{SortOn: p.SortOn, Ascending: p.IsAscending},
		Paging:   domain.PageSpec{ItemPerPage: p.ItemPerPage, CurrentPage: p.CurrentPage},
	}
}

// ListActivitiesResponse wraps the activity rows and the unpaged match count.
type ListActivitiesResponse struct {
	Data  []domain.Activity `json:"data"`
	Count int64             `json:"count"`
}
