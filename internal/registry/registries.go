package registry

import (
	"errors"
	"fmt"

	"dirschema/internal/oid"
	"dirschema/internal/schema"
)

// Set is the full collection of typed stores plus the shared OID
// registry that ties them together. A SchemaManager holds exactly one
// live Set and, during a mutation, a cloned shadow Set it mutates and
// validates before swapping it in (§5's copy-on-write model).
type Set struct {
	OIDs *oid.Registry

	AttributeTypes    *Store[*schema.AttributeType]
	ObjectClasses     *Store[*schema.ObjectClass]
	MatchingRules     *Store[*schema.MatchingRule]
	MatchingRuleUses  *Store[*schema.MatchingRuleUse]
	Syntaxes          *Store[*schema.LdapSyntax]
	DitContentRules   *Store[*schema.DitContentRule]
	DitStructureRules *Store[*schema.DitStructureRule]
	NameForms         *Store[*schema.NameForm]
	Normalizers       *Store[*schema.Normalizer]
	Comparators       *Store[*schema.Comparator]
	SyntaxCheckers    *Store[*schema.SyntaxChecker]
}

func New() *Set {
	return &Set{
		OIDs:              oid.New(),
		AttributeTypes:    NewStore[*schema.AttributeType](),
		ObjectClasses:     NewStore[*schema.ObjectClass](),
		MatchingRules:     NewStore[*schema.MatchingRule](),
		MatchingRuleUses:  NewStore[*schema.MatchingRuleUse](),
		Syntaxes:          NewStore[*schema.LdapSyntax](),
		DitContentRules:   NewStore[*schema.DitContentRule](),
		DitStructureRules: NewStore[*schema.DitStructureRule](),
		NameForms:         NewStore[*schema.NameForm](),
		Normalizers:       NewStore[*schema.Normalizer](),
		Comparators:       NewStore[*schema.Comparator](),
		SyntaxCheckers:    NewStore[*schema.SyntaxChecker](),
	}
}

// Clone produces the private shadow Set a mutation is built against.
func (s *Set) Clone() *Set {
	return &Set{
		OIDs:              s.OIDs.Clone(),
		AttributeTypes:    s.AttributeTypes.Clone(),
		ObjectClasses:     s.ObjectClasses.Clone(),
		MatchingRules:     s.MatchingRules.Clone(),
		MatchingRuleUses:  s.MatchingRuleUses.Clone(),
		Syntaxes:          s.Syntaxes.Clone(),
		DitContentRules:   s.DitContentRules.Clone(),
		DitStructureRules: s.DitStructureRules.Clone(),
		NameForms:         s.NameForms.Clone(),
		Normalizers:       s.Normalizers.Clone(),
		Comparators:       s.Comparators.Clone(),
		SyntaxCheckers:    s.SyntaxCheckers.Clone(),
	}
}

// Register adds an already-linked entity to both its typed store and the
// shared OID registry. It is the only path by which an entity becomes
// visible to lookups, so the two never drift out of sync.
func Register[T schema.Entity](s *Set, store *Store[T], e T) error {
	if err := s.OIDs.Register(e.Oid(), e.Kind(), e.NameList()...); err != nil {
		return asViolations(e, err)
	}
	store.Put(e)
	return nil
}

// asViolations translates the sentinel errors oid.Registry.Register
// returns into the schema.Violations every other rejection path uses.
// oid cannot construct these itself: schema already imports oid, so the
// translation has to happen up here where both are in scope.
func asViolations(e schema.Entity, err error) error {
	var dup *oid.DuplicateNameError
	if errors.As(err, &dup) {
		return schema.Violations{&schema.Violation{
			Code: schema.DuplicateName, Subject: e.Oid(), SubjectKind: e.Kind(),
			Referenced: dup.ExistingOID, Detail: fmt.Sprintf("name %q already bound", dup.Name),
		}}
	}
	var already *oid.AlreadyRegisteredError
	if errors.As(err, &already) {
		return schema.Violations{&schema.Violation{
			Code: schema.AlreadyExists, Subject: e.Oid(), SubjectKind: e.Kind(),
		}}
	}
	return err
}

// Unregister removes an entity from both its typed store and the OID
// registry.
func Unregister[T schema.Entity](s *Set, store *Store[T], objOid string) {
	store.Delete(objOid)
	s.OIDs.Unregister(objOid)
}

// LookupOrder lists the kinds in the original Registries.getOid fallback
// order. Nothing in this module walks it: Manager.LookupOID resolves a
// name with a single lookup in the shared OID registry, where a name is
// bound to at most one OID across all kinds.
var LookupOrder = []oid.Kind{
	oid.AttributeType,
	oid.ObjectClass,
	oid.LdapSyntax,
	oid.MatchingRule,
	oid.MatchingRuleUse,
	oid.NameForm,
	oid.DitContentRule,
	oid.DitStructureRule,
}
