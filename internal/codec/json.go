package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"netbird-inventory/internal/inventory"
)

// JSONCodec emits the external-inventory-script JSON document: one object
// per group carrying hosts and children, plus _meta.hostvars so the caller
// needs no per-host round trips.
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

type jsonGroup struct {
	Hosts    []string `json:"hosts,omitempty"`
	Children []string `json:"children,omitempty"`
}

type jsonMeta struct {
	HostVars map[string]map[string]any `json:"hostvars"`
}

// Export writes the whole inventory. Every host appears in the top-level
// all group, named groups follow with their memberships, and _meta carries
// the host variables. The all and _meta keys are written last so a group
// that happens to share a reserved name cannot clobber them.
func (c *JSONCodec) Export(inv *inventory.Inventory, w io.Writer) error {
	doc := make(map[string]any)

	for _, name := range inv.GroupNames() {
		group, _ := inv.Group(name)
		doc[name] = jsonGroup{Hosts: group.Hosts, Children: group.Children}
	}

	all := jsonGroup{}
	hostvars := make(map[string]map[string]any, inv.Len())
	for _, rec := range inv.Hosts() {
		all.Hosts = append(all.Hosts, rec.Hostname)
		hostvars[rec.Hostname] = rec.Variables
	}
	doc["all"] = all
	doc["_meta"] = jsonMeta{HostVars: hostvars}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}

	return nil
}

// ExportHostVars writes the variables of one host, the --host half of the
// script protocol. Unknown hosts get an empty object, not an error.
func (c *JSONCodec) ExportHostVars(inv *inventory.Inventory, host string, w io.Writer) error {
	vars := map[string]any{}
	if rec, ok := inv.Host(host); ok {
		vars = rec.Variables
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(vars); err != nil {
		return fmt.Errorf("failed to encode host vars: %w", err)
	}

	return nil
}
