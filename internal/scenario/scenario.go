// Package scenario defines declarative run descriptions: named parameter
// sets for the checkout journey, loaded from YAML files.
package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario parameterizes one checkout verification run.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario exercises.
	Description string `yaml:"description"`

	// Items is the requested selection size. Zero is a valid request and
	// runs the journey with an empty cart; values above the catalog size
	// clamp to it.
	Items int `yaml:"items"`

	// Username and Password override the configured credentials when set.
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`

	// ExpectedHeader overrides the exact confirmation header to require.
	ExpectedHeader string `yaml:"expected_header,omitempty"`

	// ExpectedBody overrides the fragment the confirmation body must contain.
	ExpectedBody string `yaml:"expected_body,omitempty"`
}

// Load reads and parses a scenario YAML file. Unknown fields are rejected
// to catch typos, and required fields are validated.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := Validate(&sc); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &sc, nil
}

// Validate checks that required fields are present and sane.
func Validate(sc *Scenario) error {
	if sc.Name == "" {
		return fmt.Errorf("name is required")
	}
	if sc.Description == "" {
		return fmt.Errorf("description is required")
	}
	if sc.Items < 0 {
		return fmt.Errorf("items must be non-negative")
	}
	return nil
}
