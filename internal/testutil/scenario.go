package testutil

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes a table-driven exercise of a single schema-layer
// sub-store: a sequence of puts against one key, followed by assertions on
// the resulting count and read-back order. Adapted from the teacher's
// harness.Scenario, narrowed to the put/get/count/del surface the keyspace
// and logdb packages expose.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// SubStore is the sub-store name the scenario targets, e.g. "kels.".
	SubStore string `yaml:"sub_store"`

	// Mode selects which multi-value access pattern the scenario drives:
	// "lexical" for PutVals/GetVals (sorted, duplicate-eliminating) or
	// "insertion" for PutIoVals/GetIoVals (arrival-ordered, ordinal-prefixed).
	Mode string `yaml:"mode"`

	// DupSort marks whether the targeted sub-store is opened with
	// lmdb.DupSort; the test driver opens the sub-store with this flag.
	// LoadScenario does not check it against Mode or the sub-store's schema.
	DupSort bool `yaml:"dup_sort"`

	// Puts lists the values inserted in order, e.g. via PutIoVals.
	Puts []string `yaml:"puts"`

	// ExpectOrder is the expected read-back order of values.
	ExpectOrder []string `yaml:"expect_order,omitempty"`

	// ExpectCount is the expected count after all puts, post-dedup.
	ExpectCount int `yaml:"expect_count"`
}

// LoadScenario reads and parses a scenario YAML file. Returns an error if
// the file doesn't exist, is malformed, contains unknown fields (catches
// typos like "expect_orde:"), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}

	if err := validateScenario(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &s, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.SubStore == "" {
		return fmt.Errorf("sub_store is required")
	}
	if s.Mode != "lexical" && s.Mode != "insertion" {
		return fmt.Errorf("mode must be %q or %q, got %q", "lexical", "insertion", s.Mode)
	}
	if len(s.Puts) == 0 {
		return fmt.Errorf("puts list is required and must be non-empty")
	}
	return nil
}
