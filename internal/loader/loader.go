// Package loader implements the pluggable schema-source abstraction
// (C4): something that can list the schemas available at some source
// and hand back, per schema, the raw descriptor strings for each kind.
// Nothing in this package resolves or links anything -- that is
// internal/factory's job, downstream of whichever Loader a
// SchemaManager was configured with.
package loader

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "loader: ", log.Lshortfile)

// RawSchema holds one schema's descriptor strings, ungrouped by file
// layout and unresolved against any registry.
type RawSchema struct {
	Name              string
	Dependencies      []string
	AttributeTypes    []string
	ObjectClasses     []string
	MatchingRules     []string
	LdapSyntaxes      []string
	MatchingRuleUses  []string
	NameForms         []string
	DitContentRules   []string
	DitStructureRules []string
}

// Loader is implemented by every schema source a SchemaManager can be
// pointed at: a directory tree of LDIF files, a packaged jar/zip
// archive, or an already-fetched subschema subentry.
type Loader interface {
	ListSchemas() ([]string, error)
	LoadSchema(name string) (*RawSchema, error)
}
