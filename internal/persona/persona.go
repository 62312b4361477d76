// Package persona produces the ephemeral checkout identity submitted on the
// shipping details screen. Values are generated fresh per run, submitted
// once, and never re-read.
package persona

import "github.com/brianvoe/gofakeit/v7"

// Person holds the shipping details for one checkout.
type Person struct {
	FirstName  string
	LastName   string
	PostalCode string
}

// Generator produces plausible random persons.
type Generator struct{}

// NewGenerator creates a Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Person returns a fresh random person. All fields are non-empty.
func (g *Generator) Person() Person {
	return Person{
		FirstName:  gofakeit.FirstName(),
		LastName:   gofakeit.LastName(),
		PostalCode: gofakeit.Zip(),
	}
}
