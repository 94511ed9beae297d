// Package factory implements the entity factory (C5): turning a raw
// descriptor plus the registries it will join into a fully linked
// schema entity. "Linked" means every reference field a descriptor
// could write as a short name has already been resolved to its
// canonical OID -- eagerly, at build time -- so every later pass
// (resolve, validate) only ever has to compare OID strings.
package factory

import (
	"fmt"
	"regexp"

	"dirschema/internal/descriptor"
	"dirschema/internal/registry"
	"dirschema/internal/schema"
)

var numericOidRe = regexp.MustCompile(`^[0-9]+(\.[0-9]+)+$`)

// DependencyError reports that a descriptor named a reference by name
// which does not yet resolve against the registries supplied -- the
// schema that defines it has not been loaded yet. A numeric OID
// reference never produces one (see resolveRef).
type DependencyError struct {
	Descriptor string
	Reference  string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("factory: %s references unresolved %q", e.Descriptor, e.Reference)
}

// resolveRef resolves a name-or-OID reference to its canonical OID. An
// empty input resolves to "" with no error -- the field was simply
// unset in the descriptor. A reference already in numericoid form is
// passed through unresolved: whether it actually names something is a
// reference-integrity question for resolve.Check, not a build-time
// dependency failure. Only a bare *name* that cannot be resolved against
// the registries supplied is an eager failure here -- there is no OID to
// record at all.
func resolveRef(set *registry.Set, descName, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}
	if numericOidRe.MatchString(ref) {
		return ref, nil
	}
	o, _, ok := set.OIDs.Resolve(ref)
	if !ok {
		return "", &DependencyError{Descriptor: descName, Reference: ref}
	}
	return o, nil
}

func resolveRefs(set *registry.Set, descName string, refs []string) ([]string, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		o, err := resolveRef(set, descName, r)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// BuildAttributeType links a raw AttributeType descriptor against set.
func BuildAttributeType(set *registry.Set, schemaName string, d *descriptor.AttributeType) (*schema.AttributeType, error) {
	sup, err := resolveRef(set, d.OID, d.Superior)
	if err != nil {
		return nil, err
	}
	eq, err := resolveRef(set, d.OID, d.Equality)
	if err != nil {
		return nil, err
	}
	ord, err := resolveRef(set, d.OID, d.Ordering)
	if err != nil {
		return nil, err
	}
	sub, err := resolveRef(set, d.OID, d.Substring)
	if err != nil {
		return nil, err
	}
	syn, err := resolveRef(set, d.OID, d.Syntax)
	if err != nil {
		return nil, err
	}

	usage, ok := schema.NewUsage(d.Usage)
	if !ok {
		return nil, fmt.Errorf("factory: %s: unknown USAGE %q", d.OID, d.Usage)
	}

	b := schema.NewAttributeTypeBuilder(d.OID).
		Names(d.Names...).
		Desc(d.Desc).
		Obsolete(d.Obsolete).
		Superior(sup).
		Equality(eq).
		Ordering(ord).
		Substring(sub).
		Syntax(syn, d.SyntaxLength).
		SingleValue(d.SingleValue).
		Collective(d.Collective).
		NoUserModification(d.NoUserMod).
		Usage(usage).
		SchemaName(schemaName)

	return b.Build(), nil
}

// BuildObjectClass links a raw ObjectClass descriptor against set.
func BuildObjectClass(set *registry.Set, schemaName string, d *descriptor.ObjectClass) (*schema.ObjectClass, error) {
	sups, err := resolveRefs(set, d.OID, d.Superiors)
	if err != nil {
		return nil, err
	}
	must, err := resolveRefs(set, d.OID, d.Must)
	if err != nil {
		return nil, err
	}
	may, err := resolveRefs(set, d.OID, d.May)
	if err != nil {
		return nil, err
	}

	kind, ok := schema.NewObjectClassKind(d.Kind)
	if !ok {
		return nil, fmt.Errorf("factory: %s: unknown object class kind %q", d.OID, d.Kind)
	}

	b := schema.NewObjectClassBuilder(d.OID).
		Names(d.Names...).
		Desc(d.Desc).
		Obsolete(d.Obsolete).
		Superiors(sups...).
		ObjectClassKind(kind).
		Must(must...).
		May(may...).
		SchemaName(schemaName)

	return b.Build(), nil
}

// BuildMatchingRule links a raw MatchingRule descriptor against set.
// The descriptor grammar itself carries no normalizer/comparator
// binding (that is an extension, per §3 invariant 6); callers supply it
// out of band via normalizerOid/comparatorOid, typically looked up from
// a schema-specific extension table the loader also reads.
func BuildMatchingRule(set *registry.Set, schemaName string, d *descriptor.MatchingRule, normalizerOid, comparatorOid string) (*schema.MatchingRule, error) {
	syn, err := resolveRef(set, d.OID, d.Syntax)
	if err != nil {
		return nil, err
	}

	b := schema.NewMatchingRuleBuilder(d.OID).
		Names(d.Names...).
		Desc(d.Desc).
		Obsolete(d.Obsolete).
		Syntax(syn).
		Normalizer(normalizerOid).
		Comparator(comparatorOid).
		SchemaName(schemaName)

	return b.Build(), nil
}

// BuildLdapSyntax links a raw LdapSyntax descriptor against set.
// syntaxCheckerOid and humanReadable are supplied out of band for the
// same reason normalizer/comparator are for BuildMatchingRule.
func BuildLdapSyntax(set *registry.Set, schemaName string, d *descriptor.LdapSyntax, syntaxCheckerOid string, humanReadable bool) *schema.LdapSyntax {
	return schema.NewLdapSyntaxBuilder(d.OID).
		Desc(d.Desc).
		SyntaxChecker(syntaxCheckerOid).
		HumanReadable(humanReadable).
		SchemaName(schemaName).
		Build()
}

// BuildMatchingRuleUse links a raw MatchingRuleUse descriptor against set.
func BuildMatchingRuleUse(set *registry.Set, schemaName string, d *descriptor.MatchingRuleUse) (*schema.MatchingRuleUse, error) {
	mrOid, err := resolveRef(set, d.OID, d.OID)
	if err != nil {
		return nil, err
	}
	applies, err := resolveRefs(set, d.OID, d.Applies)
	if err != nil {
		return nil, err
	}
	return &schema.MatchingRuleUse{
		Header: schema.Header{
			OID: mrOid, Names: d.Names, Desc: d.Desc, Obsolete: d.Obsolete, SchemaName: schemaName,
		},
		AppliesOids: applies,
	}, nil
}

// BuildNameForm links a raw NameForm descriptor against set.
func BuildNameForm(set *registry.Set, schemaName string, d *descriptor.NameForm) (*schema.NameForm, error) {
	oc, err := resolveRef(set, d.OID, d.ObjectClass)
	if err != nil {
		return nil, err
	}
	must, err := resolveRefs(set, d.OID, d.Must)
	if err != nil {
		return nil, err
	}
	may, err := resolveRefs(set, d.OID, d.May)
	if err != nil {
		return nil, err
	}
	return schema.NewNameFormBuilder(d.OID).
		Names(d.Names...).
		ObjectClass(oc).
		Must(must...).
		May(may...).
		SchemaName(schemaName).
		Build(), nil
}

// BuildDitContentRule links a raw DitContentRule descriptor against set.
func BuildDitContentRule(set *registry.Set, schemaName string, d *descriptor.DitContentRule) (*schema.DitContentRule, error) {
	ocOid, err := resolveRef(set, d.OID, d.OID)
	if err != nil {
		return nil, err
	}
	aux, err := resolveRefs(set, d.OID, d.Aux)
	if err != nil {
		return nil, err
	}
	must, err := resolveRefs(set, d.OID, d.Must)
	if err != nil {
		return nil, err
	}
	may, err := resolveRefs(set, d.OID, d.May)
	if err != nil {
		return nil, err
	}
	not, err := resolveRefs(set, d.OID, d.Not)
	if err != nil {
		return nil, err
	}
	return schema.NewDitContentRuleBuilder(ocOid).
		Names(d.Names...).
		Aux(aux...).
		Must(must...).
		May(may...).
		Not(not...).
		SchemaName(schemaName).
		Build(), nil
}

// BuildDitStructureRule links a raw DitStructureRule descriptor against set.
func BuildDitStructureRule(set *registry.Set, schemaName string, d *descriptor.DitStructureRule) (*schema.DitStructureRule, error) {
	form, err := resolveRef(set, fmt.Sprintf("ruleid:%d", d.RuleID), d.Form)
	if err != nil {
		return nil, err
	}
	return schema.NewDitStructureRuleBuilder(d.RuleID).
		Names(d.Names...).
		NameForm(form).
		Superiors(d.Superiors...).
		SchemaName(schemaName).
		Build(), nil
}
