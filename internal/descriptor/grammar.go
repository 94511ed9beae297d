package descriptor

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// descriptorLexer tokenizes the kinds of description string the teacher
// never had to parse (MatchingRule, LdapSyntax, MatchingRuleUse,
// NameForm, DitContentRule, DitStructureRule) -- built with
// participle/v2's struct-tag grammars rather than a hand-rolled state
// machine, since there is no teacher code to adapt for these.
var descriptorLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Numericoid", Pattern: `[0-9]+(\.[0-9]+)+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Qdescr", Pattern: `'[a-zA-Z][a-zA-Z0-9-]*'`},
	{Name: "Qdstring", Pattern: `'(\\.|[^'\\])*'`},
	{Name: "Descr", Pattern: `[a-zA-Z][a-zA-Z0-9-]*`},
	{Name: "Punct", Pattern: `[(){}$]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

func newParser[T any]() *participle.Parser[T] {
	return participle.MustBuild[T](
		participle.Lexer(descriptorLexer),
		participle.Elide("Whitespace"),
		participle.Unquote("Qdstring", "Qdescr"),
		participle.UseLookahead(2),
	)
}

var (
	matchingRuleParser    = newParser[MatchingRule]()
	ldapSyntaxParser      = newParser[LdapSyntax]()
	matchingRuleUseParser = newParser[MatchingRuleUse]()
	nameFormParser        = newParser[NameForm]()
	ditContentRuleParser  = newParser[DitContentRule]()
	ditStructureRuleParser = newParser[DitStructureRule]()
)

func parseMatchingRule(s string) (*MatchingRule, error) {
	return matchingRuleParser.ParseString("", s)
}

func parseLdapSyntax(s string) (*LdapSyntax, error) {
	return ldapSyntaxParser.ParseString("", s)
}

func parseMatchingRuleUse(s string) (*MatchingRuleUse, error) {
	return matchingRuleUseParser.ParseString("", s)
}

func parseNameForm(s string) (*NameForm, error) {
	return nameFormParser.ParseString("", s)
}

func parseDitContentRule(s string) (*DitContentRule, error) {
	return ditContentRuleParser.ParseString("", s)
}

func parseDitStructureRule(s string) (*DitStructureRule, error) {
	return ditStructureRuleParser.ParseString("", s)
}
