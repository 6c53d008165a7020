package netbird

import "encoding/json"

// hostnameKeys are the peer attributes that can name an inventory host, in
// priority order.
var hostnameKeys = [...]string{"dns_label", "name", "id"}

// Peer is one peer object as returned by the management API. The attribute
// surface grows release to release, so peers are open string-keyed maps
// rather than a fixed struct; every attribute the API sends is preserved
// verbatim, numbers included (they decode as json.Number, not float64).
type Peer map[string]any

// Hostname returns the peer's inventory name: the first attribute among
// dns_label, name and id whose value is a non-empty scalar. It returns ""
// when the peer carries none, which callers treat as "not addressable".
func (p Peer) Hostname() string {
	for _, key := range hostnameKeys {
		if s := scalarString(p[key]); s != "" {
			return s
		}
	}
	return ""
}

// IP returns the peer's mesh IP, or "" when absent or not a scalar.
func (p Peer) IP() string {
	return scalarString(p["ip"])
}

// scalarString renders an attribute value as a string. Containers, booleans
// and nulls return ""; they never qualify as identifiers or addresses.
func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return ""
	}
}
