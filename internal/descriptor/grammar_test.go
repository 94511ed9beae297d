package descriptor

import "testing"

func TestParseMatchingRule(t *testing.T) {
	mr, err := parseMatchingRule(`( 2.5.13.2 NAME 'caseIgnoreMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`)
	if err != nil {
		t.Fatalf("parseMatchingRule: %v", err)
	}
	if mr.OID != "2.5.13.2" {
		t.Fatalf("OID = %q", mr.OID)
	}
	if len(mr.Names) != 1 || mr.Names[0] != "caseIgnoreMatch" {
		t.Fatalf("Names = %v", mr.Names)
	}
	if mr.Syntax != "1.3.6.1.4.1.1466.115.121.1.15" {
		t.Fatalf("Syntax = %q", mr.Syntax)
	}
}

func TestParseLdapSyntax(t *testing.T) {
	s, err := parseLdapSyntax(`( 1.3.6.1.4.1.1466.115.121.1.15 DESC 'Directory String' )`)
	if err != nil {
		t.Fatalf("parseLdapSyntax: %v", err)
	}
	if s.OID != "1.3.6.1.4.1.1466.115.121.1.15" || s.Desc != "Directory String" {
		t.Fatalf("OID/Desc = %q/%q", s.OID, s.Desc)
	}
}

func TestParseNameForm(t *testing.T) {
	f, err := parseNameForm(`( 1.3.1 NAME 'orgUnitNameForm' OC organizationalUnit MUST ou )`)
	if err != nil {
		t.Fatalf("parseNameForm: %v", err)
	}
	if f.ObjectClass != "organizationalUnit" {
		t.Fatalf("ObjectClass = %q", f.ObjectClass)
	}
	if len(f.Must) != 1 || f.Must[0] != "ou" {
		t.Fatalf("Must = %v", f.Must)
	}
}

func TestParseDitStructureRule(t *testing.T) {
	r, err := parseDitStructureRule(`( 1 NAME 'orgUnitRule' FORM orgUnitNameForm SUP ( 2 3 ) )`)
	if err != nil {
		t.Fatalf("parseDitStructureRule: %v", err)
	}
	if r.RuleID != 1 {
		t.Fatalf("RuleID = %d", r.RuleID)
	}
	if r.Form != "orgUnitNameForm" {
		t.Fatalf("Form = %q", r.Form)
	}
	if len(r.Superiors) != 2 || r.Superiors[0] != 2 || r.Superiors[1] != 3 {
		t.Fatalf("Superiors = %v", r.Superiors)
	}
}
