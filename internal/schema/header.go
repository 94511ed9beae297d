package schema

import "dirschema/internal/oid"

// Header is the common metadata every schema entity carries, per the
// shared OID/names/schemaName fields in the data model. Entities embed
// Header rather than duplicating these fields, and refer to each other
// by OID string rather than by pointer -- the manager's registries are
// the only owners of entity values.
type Header struct {
	OID        string
	Names      []string
	Desc       string
	Obsolete   bool
	SchemaName string
}

func (h Header) Oid() string          { return h.OID }
func (h Header) NameList() []string   { return h.Names }
func (h Header) Schema() string       { return h.SchemaName }
func (h Header) IsObsolete() bool     { return h.Obsolete }

// Entity is satisfied by every schema object kind; Kind reports which
// typed registry owns it.
type Entity interface {
	Oid() string
	NameList() []string
	Schema() string
	Kind() oid.Kind
}
