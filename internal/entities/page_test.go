package entities_test

import (
	"math"
	"testing"

	"github.com/SergeyBogomolovv/marketplace-service/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Normalize(t *testing.T) {
	testCases := []struct {
		name       string
		req        entities.PageRequest
		want       entities.PageRequest
		wantOffset int
	}{
		{
			name:       "defaults",
			req:        entities.PageRequest{},
			want:       entities.PageRequest{Page: 1, Limit: entities.DefaultPageLimit},
			wantOffset: 0,
		},
		{
			name:       "limit clamped",
			req:        entities.PageRequest{Page: 0, Limit: 500},
			want:       entities.PageRequest{Page: 1, Limit: entities.MaxPageLimit},
			wantOffset: 0,
		},
		{
			name:       "regular page",
			req:        entities.PageRequest{Page: 3, Limit: 20},
			want:       entities.PageRequest{Page: 3, Limit: 20},
			wantOffset: 40,
		},
		{
			name:       "huge page does not overflow offset",
			req:        entities.PageRequest{Page: math.MaxInt, Limit: entities.MaxPageLimit},
			want:       entities.PageRequest{Page: entities.MaxPage, Limit: entities.MaxPageLimit},
			wantOffset: (entities.MaxPage - 1) * entities.MaxPageLimit,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.req.Normalize()

			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOffset, got.Offset())
			assert.GreaterOrEqual(t, got.Offset(), 0)
		})
	}
}

func TestPageRequest_OffsetWithoutNormalize(t *testing.T) {
	assert.Equal(t, 0, entities.PageRequest{Page: -5, Limit: 10}.Offset())
}

func TestNewPage(t *testing.T) {
	page := entities.NewPage[int](nil, 21, entities.PageRequest{Page: 3, Limit: 10})

	assert.Equal(t, 3, page.Pages)
	assert.NotNil(t, page.Items)
}
