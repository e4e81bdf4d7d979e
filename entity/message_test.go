package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMessageEditable(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	message := &Message{BaseEntity: BaseEntity{CreatedAt: created}}

	assert.True(t, message.Editable(created))
	assert.True(t, message.Editable(created.Add(MessageEditWindow)))
	assert.False(t, message.Editable(created.Add(MessageEditWindow+time.Second)))

	message.CountUpdate = MaxMessageEdits - 1
	assert.True(t, message.Editable(created.Add(time.Minute)))
	message.CountUpdate = MaxMessageEdits
	assert.False(t, message.Editable(created.Add(time.Minute)))
}

func TestPairKeyIsOrderIndependent(t *testing.T) {
	assert.Equal(t, PairKey("b", "a"), PairKey("a", "b"))
	assert.Equal(t, "a:b", PairKey("b", "a"))
}
