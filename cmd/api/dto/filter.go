package dto

// FilterItem represents a single filter option with its count
type FilterItem struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// CategoryFilterDTO represents the response for category filters
type CategoryFilterDTO struct {
	Items []FilterItem `json:"items"`
}

// TagFilterDTO represents the response for tag filters
type TagFilterDTO struct {
	Items []FilterItem `json:"items"`
}

// ChannelFilterItem represents a channel filter option
type ChannelFilterItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// ChannelFilterDTO represents the response for channel filters
type ChannelFilterDTO struct {
	Items []ChannelFilterItem `json:"items"`
}
