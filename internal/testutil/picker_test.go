package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptedPicker_ReplaysInOrder(t *testing.T) {
	p := NewScriptedPicker(1, 4, 5)

	assert.Equal(t, 1, p.IntN(6))
	assert.Equal(t, 4, p.IntN(6))
	assert.Equal(t, 5, p.IntN(6))
}

func TestScriptedPicker_WrapsAround(t *testing.T) {
	p := NewScriptedPicker(2, 3)

	assert.Equal(t, 2, p.IntN(6))
	assert.Equal(t, 3, p.IntN(6))
	assert.Equal(t, 2, p.IntN(6))
}

func TestScriptedPicker_ReducesModuloN(t *testing.T) {
	p := NewScriptedPicker(7)

	assert.Equal(t, 1, p.IntN(6))
}

func TestScriptedPicker_EmptyScriptDrawsZero(t *testing.T) {
	p := NewScriptedPicker()

	assert.Equal(t, 0, p.IntN(6))
	assert.Equal(t, 0, p.IntN(6))
}

func TestFixedPersons(t *testing.T) {
	ps := NewFixedPersons("Ada", "Lovelace", "10178")

	person := ps.Person()
	assert.Equal(t, "Ada", person.FirstName)
	assert.Equal(t, "Lovelace", person.LastName)
	assert.Equal(t, "10178", person.PostalCode)
	assert.Equal(t, person, ps.Person(), "identity is stable across calls")
}
