package skillz

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// LoadAliasFile reads a YAML file of the form
//
//	JavaScript: [js, ecmascript]
//	Kubernetes: [k8s]
//
// and returns a map from normalized alias to canonical name. Each
// canonical name is also registered as an alias of itself.
func LoadAliasFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias file: %w", err)
	}
	return ParseAliases(data)
}

// ParseAliases is LoadAliasFile over an in-memory document.
func ParseAliases(data []byte) (map[string]string, error) {
	var doc map[string][]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse alias file: %w", err)
	}

	aliases := make(map[string]string)
	register := func(tag, canonical string) error {
		if prev, ok := aliases[tag]; ok && prev != canonical {
			return fmt.Errorf("alias %q maps to both %q and %q", tag, prev, canonical)
		}
		aliases[tag] = canonical
		return nil
	}

	// Sorted so a conflicting document fails the same way on every run.
	for _, canonical := range slices.Sorted(maps.Keys(doc)) {
		self := NormalizeTag(canonical)
		if self == "" {
			continue
		}
		if err := register(self, canonical); err != nil {
			return nil, err
		}
		for _, name := range doc[canonical] {
			tag := NormalizeTag(name)
			if tag == "" {
				continue
			}
			if err := register(tag, canonical); err != nil {
				return nil, err
			}
		}
	}
	return aliases, nil
}
