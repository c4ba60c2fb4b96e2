package dto

// PaginationVideoDTO is a concrete swagger-friendly type for paginated videos response
// swagger:model PaginationVideoDTO
type PaginationVideoDTO struct {
	Data       []VideoDTO `json:"data"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	Total      int64      `json:"total"`
	TotalPages int        `json:"total_pages"`
	HasNext    bool       `json:"has_next"`
	HasPrev    bool       `json:"has_prev"`
	Pages      []PageItem `json:"pages"`
}

// PaginationChannelDTO is a concrete swagger-friendly type for paginated channels response
// swagger:model PaginationChannelDTO
type PaginationChannelDTO struct {
	Data       []ChannelDTO `json:"data"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	Total      int64        `json:"total"`
	TotalPages int          `json:"total_pages"`
	HasNext    bool         `json:"has_next"`
	HasPrev    bool         `json:"has_prev"`
	Pages      []PageItem   `json:"pages"`
}

// PaginationCommentDTO is a concrete swagger-friendly type for paginated comments response
// swagger:model PaginationCommentDTO
type PaginationCommentDTO struct {
	Data       []CommentDTO `json:"data"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	Total      int64        `json:"total"`
	TotalPages int          `json:"total_pages"`
	HasNext    bool         `json:"has_next"`
	HasPrev    bool         `json:"has_prev"`
	Pages      []PageItem   `json:"pages"`
}
