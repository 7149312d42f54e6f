package gdto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	t.Run("success: nil items become empty", func(t *testing.T) {
		p := NewPage[string](nil, 0, 10)

		assert.NotNil(t, p.Items)
		assert.Equal(t, 1, p.TotalPages)
	})

	t.Run("success: pages rounded up", func(t *testing.T) {
		p := NewPage([]int{1, 2}, 21, 10)

		assert.Equal(t, 3, p.TotalPages)
		assert.Equal(t, 21, p.TotalItems)
	})
}
