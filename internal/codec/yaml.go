package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"netbird-inventory/internal/inventory"
)

// YAMLCodec emits a static YAML inventory tree: every host with its
// variables under all.hosts, every group under all.children. The output is
// valid input for the orchestration tooling's YAML inventory parser.
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// yamlInventory represents the YAML inventory tree
type yamlInventory struct {
	All yamlAll `yaml:"all"`
}

type yamlAll struct {
	Hosts    map[string]map[string]any `yaml:"hosts,omitempty"`
	Children map[string]yamlGroup      `yaml:"children,omitempty"`
}

type yamlGroup struct {
	Hosts    map[string]any       `yaml:"hosts,omitempty"`
	Children map[string]yamlGroup `yaml:"children,omitempty"`
}

// Export writes the whole inventory as a YAML tree. Mapping keys come out
// sorted; numeric attribute values become native YAML scalars rather than
// strings.
func (c *YAMLCodec) Export(inv *inventory.Inventory, w io.Writer) error {
	out := yamlInventory{}

	if inv.Len() > 0 {
		out.All.Hosts = make(map[string]map[string]any, inv.Len())
		for _, rec := range inv.Hosts() {
			vars := make(map[string]any, len(rec.Variables))
			for key, value := range rec.Variables {
				vars[key] = yamlValue(value)
			}
			out.All.Hosts[rec.Hostname] = vars
		}
	}

	names := inv.GroupNames()
	if len(names) > 0 {
		out.All.Children = make(map[string]yamlGroup, len(names))
		for _, name := range names {
			group, _ := inv.Group(name)
			out.All.Children[name] = yamlGroupFrom(group)
		}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(&out); err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}

	return nil
}

// yamlGroupFrom renders one group: members as null-valued host entries,
// child groups as empty references resolved by their own top-level entry.
func yamlGroupFrom(group *inventory.Group) yamlGroup {
	out := yamlGroup{}
	if len(group.Hosts) > 0 {
		out.Hosts = make(map[string]any, len(group.Hosts))
		for _, host := range group.Hosts {
			out.Hosts[host] = nil
		}
	}
	if len(group.Children) > 0 {
		out.Children = make(map[string]yamlGroup, len(group.Children))
		for _, child := range group.Children {
			out.Children[child] = yamlGroup{}
		}
	}
	return out
}

// yamlValue rewrites decoded JSON values for YAML emission: json.Number
// becomes a native integer or float scalar, containers recurse, everything
// else passes through.
func yamlValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		out := make(map[string]any, len(t))
		for key, value := range t {
			out[key] = yamlValue(value)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, value := range t {
			out[i] = yamlValue(value)
		}
		return out
	default:
		return v
	}
}
