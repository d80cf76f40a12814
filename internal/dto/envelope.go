package dto

// Envelope is the response wrapper of every platform endpoint.
type Envelope[T any] struct {
	Success bool               `json:"success"`
	Data    T                  `json:"data"`
	Message string             `json:"message,omitempty"`
	Meta    *PaginationMetaDTO `json:"meta,omitempty"`
}

type PaginationMetaDTO struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type ErrorResponseDTO struct {
	Error struct {
		Message    string `json:"message"`
		StatusCode int    `json:"statusCode"`
	} `json:"error"`
}
