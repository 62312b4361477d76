package flow

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuardError_Message(t *testing.T) {
	err := newGuardError(StateCartReview, "cart-item-count", "3 cart items", "2 cart items")

	assert.Equal(t,
		"guard cart-item-count failed entering cart-review: expected 3 cart items, got 2 cart items",
		err.Error())
}

func TestIsGuardError(t *testing.T) {
	ge := newGuardError(StateCompleted, "confirmation-header", `header "a"`, `header "b"`)

	assert.True(t, IsGuardError(ge))
	assert.True(t, IsGuardError(fmt.Errorf("run aborted: %w", ge)))
	assert.False(t, IsGuardError(errors.New("plain failure")))
	assert.False(t, IsGuardError(nil))
}
