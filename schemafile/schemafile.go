// Package schemafile loads declarative schema definitions from YAML or JSON
// files into fieldkit Schemas. Field order in the file becomes the schema's
// declaration order, so the loader walks yaml.Node mapping pairs instead of
// decoding into Go maps (which would lose ordering).
package schemafile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	fieldkit "github.com/reoring/fieldkit"
)

// fileDef is the top-level shape of a definition file. Fields stays a raw
// node to preserve declaration order.
type fileDef struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Fields      yaml.Node `yaml:"fields"`
}

// fieldDef is one field entry. Items and Fields stay raw nodes for the same
// ordering reason.
type fieldDef struct {
	Type        string     `yaml:"type"`
	Required    bool       `yaml:"required"`
	Description string     `yaml:"description"`
	Items       yaml.Node `yaml:"items"`
	Fields      yaml.Node `yaml:"fields"`
}

// Load reads and parses a definition file. JSON files work unchanged since
// YAML is a superset.
func Load(path string) (*fieldkit.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemafile: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a Schema from definition bytes.
func Parse(data []byte) (*fieldkit.Schema, error) {
	var def fileDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("schemafile: parse definition: %w", err)
	}
	s := fieldkit.NewSchema()
	if def.Description != "" {
		s.Describe(def.Description)
	}
	if def.Fields.Kind == 0 {
		return s, nil
	}
	if def.Fields.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schemafile: fields must be a mapping")
	}
	for i := 0; i+1 < len(def.Fields.Content); i += 2 {
		name := def.Fields.Content[i].Value
		f, err := buildField(name, def.Fields.Content[i+1])
		if err != nil {
			return nil, err
		}
		s.Field(name, f)
	}
	return s, nil
}

// buildField converts one definition node into a Field. path names the
// field in error messages, dotted for nesting ("profile.street").
func buildField(path string, n *yaml.Node) (fieldkit.Field, error) {
	var def fieldDef
	if err := n.Decode(&def); err != nil {
		return nil, fmt.Errorf("schemafile: field %s: %w", path, err)
	}

	switch def.Type {
	case "":
		return nil, fmt.Errorf("schemafile: field %s: missing type", path)

	case "string", "number", "boolean", "null":
		f := fieldkit.Scalar(fieldkit.Kind(def.Type))
		if def.Required {
			f.Required()
		}
		if def.Description != "" {
			f.Describe(def.Description)
		}
		return f, nil

	case "array":
		if def.Items.Kind == 0 {
			return nil, fmt.Errorf("schemafile: field %s: array requires items", path)
		}
		item, err := buildField(path+".items", &def.Items)
		if err != nil {
			return nil, err
		}
		f := fieldkit.List(item)
		if def.Required {
			f.Required()
		}
		if def.Description != "" {
			f.Describe(def.Description)
		}
		return f, nil

	case "object":
		f := fieldkit.Object()
		if def.Fields.Kind != 0 {
			if def.Fields.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("schemafile: field %s: fields must be a mapping", path)
			}
			for i := 0; i+1 < len(def.Fields.Content); i += 2 {
				name := def.Fields.Content[i].Value
				member, err := buildField(path+"."+name, def.Fields.Content[i+1])
				if err != nil {
					return nil, err
				}
				f.Field(name, member)
			}
		}
		if def.Required {
			f.Required()
		}
		if def.Description != "" {
			f.Describe(def.Description)
		}
		return f, nil

	default:
		return nil, fmt.Errorf("schemafile: field %s: unknown type %q", path, def.Type)
	}
}
