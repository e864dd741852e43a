package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	intp := func(v int) *int { return &v }

	tests := []struct {
		name       string
		offset     *int
		limit      *int
		wantOffset int
		wantLimit  int
	}{
		{"defaults", nil, nil, 0, 50},
		{"explicit values", intp(20), intp(10), 20, 10},
		{"negative offset falls back", intp(-5), nil, 0, 50},
		{"zero limit falls back", nil, intp(0), 0, 50},
		{"limit is capped", nil, intp(1000), 0, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := GetPaginationParams(tt.offset, tt.limit)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
