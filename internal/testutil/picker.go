// Package testutil provides deterministic helpers for exercising the
// checkout flow without a live browser: a scripted random source, a fixed
// checkout identity, and an in-memory storefront implementing the screen
// capability.
package testutil

import "checkoutflow/internal/persona"

// ScriptedPicker replays a fixed sequence of draws. When the sequence is
// exhausted it wraps around. Values are reduced modulo n so a script can be
// written in terms of intended indices.
type ScriptedPicker struct {
	values []int
	pos    int
}

// NewScriptedPicker creates a picker replaying the given values in order.
func NewScriptedPicker(values ...int) *ScriptedPicker {
	if len(values) == 0 {
		values = []int{0}
	}
	return &ScriptedPicker{values: values}
}

// IntN implements pages.IndexPicker.
func (p *ScriptedPicker) IntN(n int) int {
	v := p.values[p.pos%len(p.values)]
	p.pos++
	return v % n
}

// FixedPersons always returns the same checkout identity.
type FixedPersons struct {
	P persona.Person
}

// NewFixedPersons creates a fixed identity source.
func NewFixedPersons(first, last, postal string) *FixedPersons {
	return &FixedPersons{P: persona.Person{FirstName: first, LastName: last, PostalCode: postal}}
}

// Person implements flow.PersonSource.
func (f *FixedPersons) Person() persona.Person {
	return f.P
}
