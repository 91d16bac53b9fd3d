package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopward/shopward_backend/internal/core/domain"
)

func TestPageSpec_LimitAndOffset(t *testing.T) {
	paging := domain.PageSpec{ItemPerPage: 10, CurrentPage: 2}

	assert.Equal(t, 10, paging.Limit())
	assert.Equal(t, 10, paging.Offset())
}

func TestPageSpec_FirstPageHasNoOffset(t *testing.T) {
	paging := domain.PageSpec{ItemPerPage: 25, CurrentPage: 1}

	assert.Equal(t, 25, paging.Limit())
	assert.Equal(t, 0, paging.Offset())
}

func TestPageSpec_ZeroValuesDisablePaging(t *testing.T) {
	assert.Equal(t, 0, domain.PageSpec{}.Limit())
	assert.Equal(t, 0, domain.PageSpec{}.Offset())

	partial := domain.PageSpec{CurrentPage: 3}
	assert.Equal(t, 0, partial.Limit())
	assert.Equal(t, 0, partial.Offset())
}
