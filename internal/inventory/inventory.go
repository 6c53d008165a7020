package inventory

// AnsibleHostVar is the connection-address variable understood by the
// orchestration tooling.
const AnsibleHostVar = "ansible_host"

// Sink receives hosts and host variables from a Builder. Inventory is the
// standalone implementation; embedding programs may provide their own.
type Sink interface {
	// AddHost registers a host by name. Re-adding a known host is a no-op.
	AddHost(name string)

	// SetVariable sets one variable on a host, overwriting any previous
	// value for the key. Setting a variable on an unknown host registers
	// the host first.
	SetVariable(host, key string, value any)
}

// HostRecord is one host with its variables, as seen by grouping stages and
// codecs. Variables is the live map, not a copy.
type HostRecord struct {
	Hostname  string
	Variables map[string]any
}

// Group collects hosts under a name. Children are names of other groups.
type Group struct {
	Hosts    []string
	Children []string
}

// Inventory is an in-memory Sink that remembers insertion order, so hosts
// come back out in the order the API delivered their peers and groups in
// the order stages created them.
type Inventory struct {
	hostOrder  []string
	hosts      map[string]map[string]any
	groupOrder []string
	groups     map[string]*Group
}

// New creates an empty inventory.
func New() *Inventory {
	return &Inventory{
		hosts:  make(map[string]map[string]any),
		groups: make(map[string]*Group),
	}
}

// AddHost registers a host by name.
func (inv *Inventory) AddHost(name string) {
	if _, ok := inv.hosts[name]; ok {
		return
	}
	inv.hostOrder = append(inv.hostOrder, name)
	inv.hosts[name] = make(map[string]any)
}

// SetVariable sets one variable on a host.
func (inv *Inventory) SetVariable(host, key string, value any) {
	if _, ok := inv.hosts[host]; !ok {
		inv.AddHost(host)
	}
	inv.hosts[host][key] = value
}

// Len returns the number of hosts.
func (inv *Inventory) Len() int {
	return len(inv.hostOrder)
}

// Hosts returns every host in insertion order. The records share the
// inventory's variable maps.
func (inv *Inventory) Hosts() []HostRecord {
	records := make([]HostRecord, 0, len(inv.hostOrder))
	for _, name := range inv.hostOrder {
		records = append(records, HostRecord{Hostname: name, Variables: inv.hosts[name]})
	}
	return records
}

// Host returns one host by name.
func (inv *Inventory) Host(name string) (HostRecord, bool) {
	vars, ok := inv.hosts[name]
	if !ok {
		return HostRecord{}, false
	}
	return HostRecord{Hostname: name, Variables: vars}, true
}

// AddGroup registers a group by name, creating it when absent, and returns
// it.
func (inv *Inventory) AddGroup(name string) *Group {
	if g, ok := inv.groups[name]; ok {
		return g
	}
	g := &Group{}
	inv.groupOrder = append(inv.groupOrder, name)
	inv.groups[name] = g
	return g
}

// AddHostToGroup puts a host into a group, creating the group when absent.
// Membership is idempotent.
func (inv *Inventory) AddHostToGroup(group, host string) {
	g := inv.AddGroup(group)
	if !contains(g.Hosts, host) {
		g.Hosts = append(g.Hosts, host)
	}
}

// AddChildGroup makes child a subgroup of parent, creating either group
// when absent.
func (inv *Inventory) AddChildGroup(parent, child string) {
	inv.AddGroup(child)
	p := inv.AddGroup(parent)
	if !contains(p.Children, child) {
		p.Children = append(p.Children, child)
	}
}

// GroupNames returns group names in creation order.
func (inv *Inventory) GroupNames() []string {
	names := make([]string, len(inv.groupOrder))
	copy(names, inv.groupOrder)
	return names
}

// Group returns one group by name.
func (inv *Inventory) Group(name string) (*Group, bool) {
	g, ok := inv.groups[name]
	return g, ok
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
