package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Entry is a single named value of a lookup table.
type Entry struct {
	Key   string  `json:"key" yaml:"key"`
	Value float64 `json:"value" yaml:"value"`
}

// Table is an ordered lookup table. Order matters: it is the tie-break order for
// what-if rankings and the order options are offered in.
type Table []Entry

// Lookup returns the value stored for key.
func (t Table) Lookup(key string) (float64, bool) {
	for _, e := range t {
		if e.Key == key {
			return e.Value, true
		}
	}
	return 0, false
}

// Keys returns the table keys in table order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for _, e := range t {
		keys = append(keys, e.Key)
	}
	return keys
}

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	copy(out, t)
	return out
}

// Merge returns a copy of t where entries of other replace same-key entries in place
// and new keys are appended in other's order.
func (t Table) Merge(other Table) Table {
	out := t.Clone()
	for _, e := range other {
		replaced := false
		for i := range out {
			if out[i].Key == e.Key {
				out[i].Value = e.Value
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, e)
		}
	}
	return out
}

// UnmarshalYAML decodes a YAML mapping while keeping the document order of its keys.
func (t *Table) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of name to value", node.Line)
	}

	out := make(Table, 0, len(node.Content)/2)
	seen := make(map[string]struct{}, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("line %d: decode key: %w", node.Content[i].Line, err)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("line %d: duplicate key %q", node.Content[i].Line, key)
		}
		seen[key] = struct{}{}

		var value float64
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("line %d: decode value for %q: %w", node.Content[i+1].Line, key, err)
		}
		out = append(out, Entry{Key: key, Value: value})
	}

	*t = out
	return nil
}
