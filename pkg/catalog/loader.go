package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/msgkit/pkg/parts"
)

// WithJSONDir loads messages from JSON files in fsys.
// File convention: {locale}/{namespace}.json
//
//	en-US/messages.json
//	nl-NL/messages.json
func WithJSONDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return loadDir(c, fsys, func(ext string) bool { return ext == ".json" }, json.Unmarshal)
	}
}

// WithYAMLDir loads messages from YAML files in fsys.
// File convention: {locale}/{namespace}.yaml or {locale}/{namespace}.yml
func WithYAMLDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return loadDir(c, fsys, func(ext string) bool { return ext == ".yaml" || ext == ".yml" }, yaml.Unmarshal)
	}
}

func loadDir(c *Catalog, fsys fs.FS, match func(ext string) bool, unmarshal func([]byte, any) error) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !match(strings.ToLower(path.Ext(filePath))) {
			return nil
		}

		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a locale directory", ErrInvalidFile, filePath)
		}

		locale := path.Base(dir)
		namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var raw map[string]any
		if err := unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		flat, err := flattenMessages(raw, "")
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidFile, filePath, err)
		}
		if err := c.add(locale, namespace, flat); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidFile, filePath, err)
		}
		return nil
	})
}

func flattenMessages(data map[string]any, prefix string) (map[string][]parts.Part, error) {
	result := make(map[string][]parts.Part)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = []parts.Part{parts.Text(v)}
		case []parts.Part:
			result[fullKey] = v
		case []any:
			ps, err := decodeParts(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %s", ErrInvalidMessage, fullKey, err)
			}
			result[fullKey] = ps
		case map[string]any:
			nested, err := flattenMessages(v, fullKey)
			if err != nil {
				return nil, err
			}
			maps.Copy(result, nested)
		default:
			return nil, fmt.Errorf("%w: %s: unexpected %T", ErrInvalidMessage, fullKey, value)
		}
	}

	return result, nil
}

// decodeParts converts a list decoded from YAML or JSON into parts through
// the JSON field names of parts.Part.
func decodeParts(list []any) ([]parts.Part, error) {
	data, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	var ps []parts.Part
	if err := json.Unmarshal(data, &ps); err != nil {
		return nil, err
	}
	for i, p := range ps {
		if p.Type == "" {
			return nil, fmt.Errorf("part %d has no type", i)
		}
	}
	return ps, nil
}
