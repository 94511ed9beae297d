package schema

import (
	"strconv"

	"dirschema/internal/oid"
)

// DitContentRule is the linked form of a DITContentRuleDescription. Its
// OID is the governing structural object class's own OID.
type DitContentRule struct {
	Header

	AuxOids  []string
	MustOids []string
	MayOids  []string
	NotOids  []string
}

func (r *DitContentRule) Kind() oid.Kind { return oid.DitContentRule }

// DitStructureRule is the linked form of a DITStructureRuleDescription.
// Its identity is a small positive integer rule ID, not an OID; Header.OID
// stores it as "ruleid:<n>" (see ruleIDOid) so it can still key the OID
// registry alongside every other kind (§4.1 treats rule IDs as the OID
// analogue for this one kind).
type DitStructureRule struct {
	Header

	RuleID          int
	NameFormOid     string
	SuperiorRuleIDs []int
}

func (r *DitStructureRule) Kind() oid.Kind { return oid.DitStructureRule }

type DitContentRuleBuilder struct {
	r DitContentRule
}

func NewDitContentRuleBuilder(objectClassOID string) *DitContentRuleBuilder {
	b := &DitContentRuleBuilder{}
	b.r.OID = objectClassOID
	return b
}

func (b *DitContentRuleBuilder) Names(names ...string) *DitContentRuleBuilder {
	b.r.Names = names
	return b
}

func (b *DitContentRuleBuilder) Aux(oids ...string) *DitContentRuleBuilder {
	b.r.AuxOids = oids
	return b
}

func (b *DitContentRuleBuilder) Must(oids ...string) *DitContentRuleBuilder {
	b.r.MustOids = oids
	return b
}

func (b *DitContentRuleBuilder) May(oids ...string) *DitContentRuleBuilder {
	b.r.MayOids = oids
	return b
}

func (b *DitContentRuleBuilder) Not(oids ...string) *DitContentRuleBuilder {
	b.r.NotOids = oids
	return b
}

func (b *DitContentRuleBuilder) SchemaName(name string) *DitContentRuleBuilder {
	b.r.SchemaName = name
	return b
}

func (b *DitContentRuleBuilder) Build() *DitContentRule {
	r := b.r
	return &r
}

type DitStructureRuleBuilder struct {
	r DitStructureRule
}

func NewDitStructureRuleBuilder(ruleID int) *DitStructureRuleBuilder {
	b := &DitStructureRuleBuilder{}
	b.r.RuleID = ruleID
	b.r.OID = ruleIDOid(ruleID)
	return b
}

// ruleIDOid gives a DIT structure rule's integer identity a string form
// it can share the OID registry keyspace with everything else.
func ruleIDOid(id int) string {
	return "ruleid:" + strconv.Itoa(id)
}

func (b *DitStructureRuleBuilder) Names(names ...string) *DitStructureRuleBuilder {
	b.r.Names = names
	return b
}

func (b *DitStructureRuleBuilder) NameForm(oid string) *DitStructureRuleBuilder {
	b.r.NameFormOid = oid
	return b
}

func (b *DitStructureRuleBuilder) Superiors(ruleIDs ...int) *DitStructureRuleBuilder {
	b.r.SuperiorRuleIDs = ruleIDs
	return b
}

func (b *DitStructureRuleBuilder) SchemaName(name string) *DitStructureRuleBuilder {
	b.r.SchemaName = name
	return b
}

func (b *DitStructureRuleBuilder) Build() *DitStructureRule {
	r := b.r
	return &r
}
