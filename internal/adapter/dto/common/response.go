package common

// ListResponse represents a list response
type ListResponse struct {
	Data  interface{} `json:"data"`
	Total int         `json:"total"`
}
