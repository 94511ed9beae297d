package descriptor

// Parser turns each kind of RFC 4512 description string into its raw,
// unlinked form. internal/factory depends only on this interface, not
// on the concrete tokeniser/grammar below it, so a different descriptor
// grammar could be swapped in without touching the factory.
type Parser interface {
	AttributeType(s string) (*AttributeType, error)
	ObjectClass(s string) (*ObjectClass, error)
	MatchingRule(s string) (*MatchingRule, error)
	LdapSyntax(s string) (*LdapSyntax, error)
	MatchingRuleUse(s string) (*MatchingRuleUse, error)
	NameForm(s string) (*NameForm, error)
	DitContentRule(s string) (*DitContentRule, error)
	DitStructureRule(s string) (*DitStructureRule, error)
}

// Default is the concrete Parser this module ships: the teacher's
// tokeniser for the two kinds it already handled, participle/v2
// grammars for the rest.
type defaultParser struct{}

func Default() Parser { return defaultParser{} }

func (defaultParser) AttributeType(s string) (*AttributeType, error) { return ParseAttributeType(s) }
func (defaultParser) ObjectClass(s string) (*ObjectClass, error)     { return ParseObjectClass(s) }
func (defaultParser) MatchingRule(s string) (*MatchingRule, error)   { return parseMatchingRule(s) }
func (defaultParser) LdapSyntax(s string) (*LdapSyntax, error)       { return parseLdapSyntax(s) }
func (defaultParser) MatchingRuleUse(s string) (*MatchingRuleUse, error) {
	return parseMatchingRuleUse(s)
}
func (defaultParser) NameForm(s string) (*NameForm, error) { return parseNameForm(s) }
func (defaultParser) DitContentRule(s string) (*DitContentRule, error) {
	return parseDitContentRule(s)
}
func (defaultParser) DitStructureRule(s string) (*DitStructureRule, error) {
	return parseDitStructureRule(s)
}
