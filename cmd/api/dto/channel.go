package dto

// ChannelDTO exposes minimal channel fields to API consumers
// Mirrors only necessary fields from models.Channel
// id is hex string
//
// Note: We intentionally hide feed_url and channel_type from API response
// to decouple internal ingestion details from clients.
type ChannelDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}
