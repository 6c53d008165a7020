package codec

import (
	"io"

	"netbird-inventory/internal/inventory"
)

// Exporter serializes a populated inventory.
type Exporter interface {
	Export(inv *inventory.Inventory, w io.Writer) error
	Format() string
}

// ByFormat returns the exporter for a format identifier.
func ByFormat(format string) (Exporter, bool) {
	switch format {
	case "json":
		return NewJSONCodec(), true
	case "yaml":
		return NewYAMLCodec(), true
	default:
		return nil, false
	}
}

// Formats lists the supported format identifiers.
func Formats() []string {
	return []string{"json", "yaml"}
}
