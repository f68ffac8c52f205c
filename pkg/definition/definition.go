package definition

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Transition is one declarative table entry. Guard and Action are optional
// names resolved against Bindings when the machine is built.
type Transition struct {
	From   string `yaml:"from" json:"from"`
	Event  string `yaml:"event" json:"event"`
	To     string `yaml:"to" json:"to"`
	Guard  string `yaml:"guard,omitempty" json:"guard,omitempty"`
	Action string `yaml:"action,omitempty" json:"action,omitempty"`
}

// Definition describes a machine as data: an initial state, an optional
// closed set of states, and a transition list in file order. The optional
// Name becomes the DOT graph name of the built machine.
type Definition struct {
	Name        string       `yaml:"name,omitempty" json:"name,omitempty"`
	Initial     string       `yaml:"initial" json:"initial"`
	States      []string     `yaml:"states,omitempty" json:"states,omitempty"`
	Transitions []Transition `yaml:"transitions" json:"transitions"`
}

// Parse decodes a YAML document into a Definition. JSON documents decode
// too, YAML being a superset of JSON. Parse performs no validation beyond
// decoding; call Validate, or let Build do it.
func Parse(data []byte) (*Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return &d, nil
}

// ParseFile reads path and parses its contents.
func ParseFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return Parse(data)
}

// Validate checks structural consistency: the initial state is set, every
// transition names both endpoints and a non-empty event, and, when an
// explicit states list is present, the initial state and all endpoints are
// members of it. Duplicate (from, event) pairs are deliberately NOT an
// error: the table's last-write-wins rule applies, so later file entries
// replace earlier ones.
func (d *Definition) Validate() error {
	if d.Initial == "" {
		return ErrNoInitialState
	}

	known := make(map[string]struct{}, len(d.States))
	for _, s := range d.States {
		known[s] = struct{}{}
	}
	closed := len(d.States) > 0

	if closed {
		if _, ok := known[d.Initial]; !ok {
			return fmt.Errorf("%w: initial state %q not in states list", ErrUnknownState, d.Initial)
		}
	}

	for i, t := range d.Transitions {
		if t.From == "" || t.To == "" {
			return fmt.Errorf("%w: transition[%d] must name both endpoints", ErrInvalidDefinition, i)
		}
		if t.Event == "" {
			return fmt.Errorf("%w: transition[%d] %s -> %s", ErrEmptyEvent, i, t.From, t.To)
		}
		if closed {
			if _, ok := known[t.From]; !ok {
				return fmt.Errorf("%w: transition[%d] source %q", ErrUnknownState, i, t.From)
			}
			if _, ok := known[t.To]; !ok {
				return fmt.Errorf("%w: transition[%d] destination %q", ErrUnknownState, i, t.To)
			}
		}
	}

	return nil
}
