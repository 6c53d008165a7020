// Package grouping rearranges a populated inventory into groups. Stages run
// after the build pass and before export; they read host records and write
// group membership, never touching the remote API.
package grouping

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"netbird-inventory/internal/inventory"
)

// Stage is one post-processing step over a populated inventory.
type Stage interface {
	Name() string
	Apply(inv *inventory.Inventory) error
}

// DefaultSeparator joins prefix and value unless an entry overrides it.
const DefaultSeparator = "_"

// Keyed is one keyed_groups entry from the source configuration: hosts are
// fanned into groups named after the value of one of their variables. List
// values fan the host into one group per element.
type Keyed struct {
	// Key is the host variable whose value names the group. Required.
	Key string `yaml:"key"`

	// Prefix is prepended to the value. Without a prefix the group is named
	// by the value alone.
	Prefix string `yaml:"prefix"`

	// Separator joins prefix and value. nil means DefaultSeparator; an
	// explicit empty string joins them directly.
	Separator *string `yaml:"separator"`

	// DefaultValue names the group for hosts missing the key. nil means
	// such hosts are left ungrouped (or fail the stage under strict).
	DefaultValue *string `yaml:"default_value"`

	// ParentGroup, when set, makes every group this entry creates a child
	// of the named group.
	ParentGroup string `yaml:"parent_group"`
}

// separator resolves the entry's effective separator.
func (k Keyed) separator() string {
	if k.Separator == nil {
		return DefaultSeparator
	}
	return *k.Separator
}

// KeyedGroups applies a list of Keyed entries to every host in order.
type KeyedGroups struct {
	entries []Keyed
	strict  bool
}

// NewKeyedGroups creates the stage. Under strict, a host missing a keyed
// variable with no default value fails the whole stage.
func NewKeyedGroups(entries []Keyed, strict bool) *KeyedGroups {
	return &KeyedGroups{entries: entries, strict: strict}
}

func (s *KeyedGroups) Name() string {
	return "keyed_groups"
}

// Apply walks hosts in inventory order and entries in configuration order,
// so group creation order is deterministic for a given peer list.
func (s *KeyedGroups) Apply(inv *inventory.Inventory) error {
	for _, host := range inv.Hosts() {
		for _, entry := range s.entries {
			if err := s.applyEntry(inv, host, entry); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *KeyedGroups) applyEntry(inv *inventory.Inventory, host inventory.HostRecord, entry Keyed) error {
	values := groupValues(host.Variables[entry.Key])
	if len(values) == 0 {
		if entry.DefaultValue != nil {
			s.addTo(inv, entry, *entry.DefaultValue, host.Hostname)
			return nil
		}
		if s.strict {
			return fmt.Errorf("host %q has no usable value for key %q", host.Hostname, entry.Key)
		}
		return nil
	}
	for _, value := range values {
		s.addTo(inv, entry, value, host.Hostname)
	}
	return nil
}

func (s *KeyedGroups) addTo(inv *inventory.Inventory, entry Keyed, value, host string) {
	name := SanitizeGroupName(value)
	if entry.Prefix != "" {
		name = entry.Prefix + entry.separator() + name
	}
	inv.AddHostToGroup(name, host)
	if entry.ParentGroup != "" {
		inv.AddChildGroup(entry.ParentGroup, name)
	}
}

// groupValues extracts the usable group-name values from one variable:
// scalars yield one value, lists one per scalar element, everything else
// none. Empty strings are not usable.
func groupValues(v any) []string {
	switch t := v.(type) {
	case []any:
		var out []string
		for _, item := range t {
			if s := scalarValue(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := scalarValue(v); s != "" {
			return []string{s}
		}
		return nil
	}
}

func scalarValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// SanitizeGroupName rewrites a raw value into a safe group name. Each
// character outside [A-Za-z0-9_] becomes an underscore, the same substitution
// the orchestration tooling applies to constructed group names.
func SanitizeGroupName(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
