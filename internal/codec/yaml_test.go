package codec

import (
	"bytes"
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"netbird-inventory/internal/inventory"
)

func TestYAMLCodecExport(t *testing.T) {
	var buf bytes.Buffer
	if err := NewYAMLCodec().Export(testInventory(), &buf); err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	var doc struct {
		All struct {
			Hosts    map[string]map[string]any `yaml:"hosts"`
			Children map[string]struct {
				Hosts    map[string]any `yaml:"hosts"`
				Children map[string]any `yaml:"children"`
			} `yaml:"children"`
		} `yaml:"all"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}

	vars, ok := doc.All.Hosts["web-1.netbird.cloud"]
	if !ok {
		t.Fatalf("all.hosts missing web-1.netbird.cloud; output:\n%s", buf.String())
	}
	if got := vars["ansible_host"]; got != "100.64.0.1" {
		t.Errorf("ansible_host = %v, want 100.64.0.1", got)
	}
	if got := vars["connected"]; got != true {
		t.Errorf("connected = %v, want true", got)
	}

	// json.Number must come out as a native YAML integer.
	if got, ok := vars["geoname_id"].(int); !ok || got != 2643743 {
		t.Errorf("geoname_id = %v (%T), want int 2643743", vars["geoname_id"], vars["geoname_id"])
	}

	linux, ok := doc.All.Children["os_linux"]
	if !ok {
		t.Fatalf("all.children missing os_linux")
	}
	if _, ok := linux.Hosts["db-1"]; !ok {
		t.Errorf("os_linux.hosts missing db-1")
	}

	locations, ok := doc.All.Children["locations"]
	if !ok {
		t.Fatalf("all.children missing locations")
	}
	if _, ok := locations.Children["city_Berlin"]; !ok {
		t.Errorf("locations.children missing city_Berlin")
	}
}

func TestYAMLCodecExportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewYAMLCodec().Export(inventory.New(), &buf); err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if _, ok := doc["all"]; !ok {
		t.Errorf("all missing from empty inventory document:\n%s", buf.String())
	}
}

func TestYAMLValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{name: "integer", in: json.Number("42"), want: int64(42)},
		{name: "float", in: json.Number("1.5"), want: 1.5},
		{name: "string untouched", in: "hello", want: "hello"},
		{name: "bool untouched", in: true, want: true},
		{name: "nil untouched", in: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := yamlValue(tt.in); got != tt.want {
				t.Errorf("yamlValue(%v) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
			}
		})
	}

	// Containers are normalized element by element.
	got := yamlValue(map[string]any{"list": []any{json.Number("1"), "a"}})
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("yamlValue(map) = %T, want map", got)
	}
	list, ok := m["list"].([]any)
	if !ok || len(list) != 2 {
		t.Fatalf("list = %v, want two elements", m["list"])
	}
	if list[0] != int64(1) || list[1] != "a" {
		t.Errorf("list = %v, want [1 a]", list)
	}
}
