// Package oid implements the directory's name/OID registry: the
// bidirectional map between a schema entity's numeric OID and the
// case-insensitive short names that may alias it.
package oid

import (
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/text/cases"
)

var logger = log.New(os.Stderr, "oid: ", log.Lshortfile)

// Kind tags the schema-entity category an OID belongs to.
type Kind int

const (
	AttributeType Kind = iota
	ObjectClass
	MatchingRule
	MatchingRuleUse
	LdapSyntax
	DitContentRule
	DitStructureRule
	NameForm
	Normalizer
	Comparator
	SyntaxChecker
)

func (k Kind) String() string {
	switch k {
	case AttributeType:
		return "AttributeType"
	case ObjectClass:
		return "ObjectClass"
	case MatchingRule:
		return "MatchingRule"
	case MatchingRuleUse:
		return "MatchingRuleUse"
	case LdapSyntax:
		return "LdapSyntax"
	case DitContentRule:
		return "DitContentRule"
	case DitStructureRule:
		return "DitStructureRule"
	case NameForm:
		return "NameForm"
	case Normalizer:
		return "Normalizer"
	case Comparator:
		return "Comparator"
	case SyntaxChecker:
		return "SyntaxChecker"
	default:
		return "unknown"
	}
}

var fold = cases.Fold()

// Normalise lowercases and collapses whitespace in a short name the way
// §4.1 requires two names be compared: fold case, fold whitespace runs to
// a single space, trim the ends.
func Normalise(name string) string {
	return strings.Join(strings.Fields(fold.String(name)), " ")
}

// entry is the registry's bookkeeping record for one OID.
type entry struct {
	oid   string
	kind  Kind
	names []string // first entry is the canonical/primary name, if any
}

// Registry is the bidirectional OID<->name map. It holds no lock of its
// own: callers (internal/registry, internal/manager) serialize access to
// it under their own single-writer lock, per the concurrency model.
type Registry struct {
	byOID  map[string]*entry
	byName map[string]string // normalised name -> oid
}

// AlreadyRegisteredError reports a Register call naming an OID that is
// already present. internal/registry translates this into a
// schema.Violation carrying AlreadyExists -- oid cannot import schema
// itself, since schema already imports oid.
type AlreadyRegisteredError struct{ OID string }

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("oid: %s already registered", e.OID)
}

// DuplicateNameError reports a Register call naming a short name that
// already resolves to a different OID. internal/registry translates
// this into a schema.Violation carrying DuplicateName.
type DuplicateNameError struct {
	Name        string
	ExistingOID string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("oid: name %q already bound to %s", e.Name, e.ExistingOID)
}

func New() *Registry {
	return &Registry{
		byOID:  make(map[string]*entry),
		byName: make(map[string]string),
	}
}

// Register adds oid with the given kind and names. It fails if the OID is
// already registered, or if any name already resolves to a different OID.
func (r *Registry) Register(o string, kind Kind, names ...string) error {
	if _, ok := r.byOID[o]; ok {
		return &AlreadyRegisteredError{OID: o}
	}

	norm := make([]string, 0, len(names))
	for _, n := range names {
		key := Normalise(n)
		if existing, ok := r.byName[key]; ok {
			return &DuplicateNameError{Name: n, ExistingOID: existing}
		}
		norm = append(norm, key)
	}

	e := &entry{oid: o, kind: kind, names: names}
	r.byOID[o] = e
	for _, key := range norm {
		r.byName[key] = o
	}

	logger.Printf("registered %s %s %v", kind, o, names)
	return nil
}

// Unregister removes oid and all of its names.
func (r *Registry) Unregister(o string) {
	e, ok := r.byOID[o]
	if !ok {
		return
	}
	for _, n := range e.names {
		delete(r.byName, Normalise(n))
	}
	delete(r.byOID, o)
}

// Resolve maps a name or a bare OID to its canonical OID and kind.
func (r *Registry) Resolve(nameOrOID string) (string, Kind, bool) {
	if e, ok := r.byOID[nameOrOID]; ok {
		return e.oid, e.kind, true
	}
	if o, ok := r.byName[Normalise(nameOrOID)]; ok {
		return o, r.byOID[o].kind, true
	}
	return "", 0, false
}

// HasOID reports whether o is registered.
func (r *Registry) HasOID(o string) bool {
	_, ok := r.byOID[o]
	return ok
}

// KindOf returns the kind registered for o.
func (r *Registry) KindOf(o string) (Kind, bool) {
	e, ok := r.byOID[o]
	if !ok {
		return 0, false
	}
	return e.kind, true
}

// NamesOf returns the names registered for o, in declaration order.
func (r *Registry) NamesOf(o string) []string {
	e, ok := r.byOID[o]
	if !ok {
		return nil
	}
	return append([]string(nil), e.names...)
}

// Clone returns a deep copy for copy-on-write snapshotting under a
// transactional mutation.
func (r *Registry) Clone() *Registry {
	c := New()
	for o, e := range r.byOID {
		ce := &entry{oid: e.oid, kind: e.kind, names: append([]string(nil), e.names...)}
		c.byOID[o] = ce
	}
	for n, o := range r.byName {
		c.byName[n] = o
	}
	return c
}

// Len returns the number of registered OIDs.
func (r *Registry) Len() int {
	return len(r.byOID)
}
