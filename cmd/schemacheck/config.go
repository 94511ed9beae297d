package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dirschema/internal/schema"
)

// Config is cmd/schemacheck's manifest: which schema root to load, how,
// and the schema.Manifest declaring every schema's dependencies -- the
// same YAML document internal/schema.DependencyGraph indexes, replacing
// a disjoint, flat list of names that carried no dependency information
// of its own. Generalizes the hardcoded file paths the teacher's
// cmd/relientldap/main.go carried.
type Config struct {
	SchemaRoot      string `yaml:"schemaRoot"`
	LoaderKind      string `yaml:"loaderKind"` // "tree" or "jar"
	schema.Manifest `yaml:",inline"`
}

func loadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemacheck: reading config %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("schemacheck: parsing config %s: %w", path, err)
	}
	if c.LoaderKind == "" {
		c.LoaderKind = "tree"
	}
	return &c, nil
}

// SchemaNames returns every schema the manifest declares, in manifest
// order -- the root set Manager.LoadWithDeps walks, resolving each
// entry's transitive Dependencies itself.
func (c *Config) SchemaNames() []string {
	names := make([]string, 0, len(c.Schemas))
	for _, s := range c.Schemas {
		names = append(names, s.Name)
	}
	return names
}

// Graph indexes the manifest for dependency queries (Dependents,
// TransitiveDependencies) without touching a live Manager.
func (c *Config) Graph() *schema.DependencyGraph {
	return schema.NewDependencyGraph(&c.Manifest)
}
