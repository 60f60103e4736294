package api

import (
	"encoding/json"
)

type meta struct {
	Count uint64  `json:"count"`
	Limit *uint64 `json:"limit,omitempty"`
}

// ApiResponse wraps list results
type ApiResponse struct {
	Meta *meta `json:"meta,omitempty"`
	Data any   `json:"data"`
}

func (r ApiResponse) Byte() []byte {
	b, _ := json.Marshal(r)
	return b
}

func newListResponse[T any](items []T, limit int) ApiResponse {
	if items == nil {
		items = []T{}
	}

	m := &meta{Count: uint64(len(items))}
	if limit > 0 {
		l := uint64(limit)
		m.Limit = &l
	}

	return ApiResponse{Meta: m, Data: items}
}
