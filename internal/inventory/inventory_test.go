package inventory

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInventoryHostOrder(t *testing.T) {
	inv := New()
	inv.AddHost("web-1")
	inv.AddHost("db-1")
	inv.AddHost("web-1") // duplicate, must not reorder or duplicate
	inv.AddHost("cache-1")

	if got := inv.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	var names []string
	for _, rec := range inv.Hosts() {
		names = append(names, rec.Hostname)
	}
	want := []string{"web-1", "db-1", "cache-1"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("host order mismatch (-want +got):\n%s", diff)
	}
}

func TestInventorySetVariable(t *testing.T) {
	inv := New()
	inv.AddHost("web-1")
	inv.SetVariable("web-1", "ansible_host", "100.64.0.1")
	inv.SetVariable("web-1", "os", "linux")
	inv.SetVariable("web-1", "os", "debian") // overwrite

	rec, ok := inv.Host("web-1")
	if !ok {
		t.Fatalf("Host(web-1) not found")
	}
	want := map[string]any{"ansible_host": "100.64.0.1", "os": "debian"}
	if diff := cmp.Diff(want, rec.Variables); diff != "" {
		t.Errorf("variables mismatch (-want +got):\n%s", diff)
	}
}

func TestInventorySetVariableRegistersHost(t *testing.T) {
	inv := New()
	inv.SetVariable("web-1", "os", "linux")

	if _, ok := inv.Host("web-1"); !ok {
		t.Errorf("Host(web-1) not found, want it registered by SetVariable")
	}
	if got := inv.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestInventoryHostMissing(t *testing.T) {
	inv := New()
	if _, ok := inv.Host("ghost"); ok {
		t.Errorf("Host(ghost) = ok, want missing")
	}
}

func TestInventoryGroups(t *testing.T) {
	inv := New()
	inv.AddHost("web-1")
	inv.AddHost("db-1")
	inv.AddHostToGroup("os_linux", "web-1")
	inv.AddHostToGroup("os_linux", "db-1")
	inv.AddHostToGroup("os_linux", "web-1") // idempotent
	inv.AddHostToGroup("region_eu", "web-1")

	if diff := cmp.Diff([]string{"os_linux", "region_eu"}, inv.GroupNames()); diff != "" {
		t.Errorf("group order mismatch (-want +got):\n%s", diff)
	}

	g, ok := inv.Group("os_linux")
	if !ok {
		t.Fatalf("Group(os_linux) not found")
	}
	if diff := cmp.Diff([]string{"web-1", "db-1"}, g.Hosts); diff != "" {
		t.Errorf("os_linux hosts mismatch (-want +got):\n%s", diff)
	}
}

func TestInventoryChildGroups(t *testing.T) {
	inv := New()
	inv.AddChildGroup("location", "location_berlin")
	inv.AddChildGroup("location", "location_berlin") // idempotent
	inv.AddChildGroup("location", "location_paris")

	parent, ok := inv.Group("location")
	if !ok {
		t.Fatalf("Group(location) not found")
	}
	if diff := cmp.Diff([]string{"location_berlin", "location_paris"}, parent.Children); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
	if _, ok := inv.Group("location_berlin"); !ok {
		t.Errorf("Group(location_berlin) not found, want it created as child")
	}
}
