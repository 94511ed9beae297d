package schema

// Set describes one named schema's membership in the dependency graph:
// which other schemas it requires, and whether it is currently enabled.
// The manager owns the authoritative collection of Sets and the OIDs
// each one contributed; Set itself is a passive declaration, unmarshaled
// directly from a schema-set manifest.
type Set struct {
	Name         string   `yaml:"name"`
	Dependencies []string `yaml:"dependencies,omitempty"`
	Enabled      bool     `yaml:"enabled"`
}

// Manifest is the top-level YAML document cmd/schemacheck reads to
// discover which schemas exist and how they depend on each other, before
// any LDIF is parsed.
type Manifest struct {
	Schemas []Set `yaml:"schemas"`
}

// DependencyGraph indexes a Manifest's schemas by name for dependency
// queries (cmd/schemacheck's deps command). The manager's own
// enable/disable checks do not use it; they read the Dependencies each
// loaded schema reported.
type DependencyGraph struct {
	byName map[string]*Set
}

func NewDependencyGraph(m *Manifest) *DependencyGraph {
	g := &DependencyGraph{byName: make(map[string]*Set, len(m.Schemas))}
	for i := range m.Schemas {
		s := &m.Schemas[i]
		g.byName[s.Name] = s
	}
	return g
}

func (g *DependencyGraph) Get(name string) (*Set, bool) {
	s, ok := g.byName[name]
	return s, ok
}

// Dependents returns the names of every schema that declares name as a
// dependency -- the set that would break if name were disabled.
func (g *DependencyGraph) Dependents(name string) []string {
	var out []string
	for n, s := range g.byName {
		for _, d := range s.Dependencies {
			if d == name {
				out = append(out, n)
				break
			}
		}
	}
	return out
}

// TransitiveDependencies returns every schema name reachable from name
// via Dependencies, name itself included, in an unspecified order.
func (g *DependencyGraph) TransitiveDependencies(name string) []string {
	seen := map[string]bool{}
	var walk func(string)
	walk = func(n string) {
		if seen[n] {
			return
		}
		seen[n] = true
		s, ok := g.byName[n]
		if !ok {
			return
		}
		for _, d := range s.Dependencies {
			walk(d)
		}
	}
	walk(name)
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	return out
}
