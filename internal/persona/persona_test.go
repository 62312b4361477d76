package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_PersonFieldsPopulated(t *testing.T) {
	gen := NewGenerator()

	for i := 0; i < 20; i++ {
		p := gen.Person()
		assert.NotEmpty(t, p.FirstName)
		assert.NotEmpty(t, p.LastName)
		assert.NotEmpty(t, p.PostalCode)
	}
}
