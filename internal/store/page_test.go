package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParamsNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  ListParams
		expect ListParams
	}{
		{
			name:   "valid params pass through",
			input:  ListParams{Page: 3, PerPage: 25},
			expect: ListParams{Page: 3, PerPage: 25},
		},
		{
			name:   "zero values take defaults",
			input:  ListParams{},
			expect: ListParams{Page: DefaultPage, PerPage: DefaultPerPage},
		},
		{
			name:   "negative page takes default",
			input:  ListParams{Page: -5, PerPage: 10},
			expect: ListParams{Page: 1, PerPage: 10},
		},
		{
			name:   "per page capped at maximum",
			input:  ListParams{Page: 1, PerPage: 500},
			expect: ListParams{Page: 1, PerPage: MaxPerPage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, tt.input.Normalize())
		})
	}
}

func TestListParamsOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ListParams{Page: 1, PerPage: 10}.Offset())
	assert.Equal(t, 10, ListParams{Page: 2, PerPage: 10}.Offset())
	assert.Equal(t, 50, ListParams{Page: 3, PerPage: 25}.Offset())
}

func TestNewPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		items     []int
		total     int
		params    ListParams
		wantPages int
	}{
		{
			name:      "exact division",
			items:     []int{1, 2},
			total:     20,
			params:    ListParams{Page: 1, PerPage: 10},
			wantPages: 2,
		},
		{
			name:      "partial last page rounds up",
			items:     []int{1},
			total:     21,
			params:    ListParams{Page: 3, PerPage: 10},
			wantPages: 3,
		},
		{
			name:      "empty result",
			items:     nil,
			total:     0,
			params:    ListParams{Page: 1, PerPage: 10},
			wantPages: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page := NewPage(tt.items, tt.total, tt.params)

			assert.Equal(t, tt.wantPages, page.Pages)
			assert.Equal(t, tt.total, page.Total)
			assert.Equal(t, tt.params.Page, page.CurrentPage)
			assert.NotNil(t, page.Items, "items are never nil so JSON renders an array")
		})
	}
}
