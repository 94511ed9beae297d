package loader

// SubschemaLoader wraps an already-fetched subschema subentry: the
// attribute-value map a directory client gets back from reading
// cn=subschema's operational attributes. The live LDAP search that
// produces this map is the out-of-scope external collaborator; this
// loader only ever sees its result.
type SubschemaLoader struct {
	name   string
	values map[string][]string
}

// NewSubschemaLoader wraps values, the subschema subentry's attribute
// map (keys are attribute names: attributeTypes, objectClasses, ...).
// name is the synthetic schema name this subentry is reported under,
// since a subschema subentry carries no schema grouping of its own.
func NewSubschemaLoader(name string, values map[string][]string) *SubschemaLoader {
	return &SubschemaLoader{name: name, values: values}
}

func (l *SubschemaLoader) ListSchemas() ([]string, error) {
	return []string{l.name}, nil
}

func (l *SubschemaLoader) LoadSchema(name string) (*RawSchema, error) {
	return &RawSchema{
		Name:              l.name,
		AttributeTypes:    l.values["attributeTypes"],
		ObjectClasses:     l.values["objectClasses"],
		MatchingRules:     l.values["matchingRules"],
		LdapSyntaxes:      l.values["ldapSyntaxes"],
		MatchingRuleUses:  l.values["matchingRuleUse"],
		NameForms:         l.values["nameForms"],
		DitContentRules:   l.values["dITContentRules"],
		DitStructureRules: l.values["dITStructureRules"],
	}, nil
}
