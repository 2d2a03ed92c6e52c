package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode(t *testing.T) {
	t.Run("holds a value", func(t *testing.T) {
		node := NewNode(1)
		assert.Equal(t, 1, node.Value)
	})

	t.Run("is detached when created", func(t *testing.T) {
		node := NewNode("one")
		assert.Nil(t, node.Next())
	})
}
