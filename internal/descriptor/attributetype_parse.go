package descriptor

import (
	"fmt"
	"strconv"
	"strings"

	"dirschema/internal/ldif"
)

// ParseAttributeType parses an AttributeTypeDescription string, e.g.
// `( 2.5.4.0 NAME 'objectClass' EQUALITY objectIdentifierMatch
// SYNTAX 1.3.6.1.4.1.1466.115.121.1.38 )`. It reuses the teacher's
// RFC 4512 tokeniser (internal/ldif) and dispatches on keyword the same
// way the teacher's objectClassParser did, generalised to attribute
// type keywords.
func ParseAttributeType(s string) (*AttributeType, error) {
	tk, err := ldif.NewTokeniser(strings.NewReader(s))
	if err != nil {
		return nil, fmt.Errorf("descriptor: tokenising attribute type: %w", err)
	}

	open, ok := tk.Next()
	if !ok || open.Type() != ldif.LPAREN {
		return nil, fmt.Errorf("descriptor: expected '(' to open attribute type")
	}

	noid, err := tk.NextNumericoid()
	if err != nil {
		return nil, fmt.Errorf("descriptor: %w", err)
	}

	at := &AttributeType{OID: noid.Val()}

	for tk.HasNext() {
		peek, _ := tk.Peek()
		if peek.Type() == ldif.RPAREN {
			tk.Next()
			return at, nil
		}

		kw, ok := tk.Next()
		if !ok || kw.Type() != ldif.KEYWORD {
			return nil, fmt.Errorf("descriptor: expected keyword, got %q", peek.Val())
		}

		if err := at.applyKeyword(tk, kw.Val()); err != nil {
			return nil, fmt.Errorf("descriptor: %w", err)
		}
	}

	return nil, fmt.Errorf("descriptor: attribute type missing closing ')'")
}

func (at *AttributeType) applyKeyword(tk *ldif.Tokeniser, kw string) error {
	switch kw {
	case "NAME":
		names, err := tk.NextQdescrs()
		if err != nil {
			return err
		}
		for _, n := range names {
			at.Names = append(at.Names, stripQuotesTok(n.Val()))
		}
	case "DESC":
		d, err := tk.NextQdstring()
		if err != nil {
			return err
		}
		at.Desc = stripQuotesTok(d.Val())
	case "OBSOLETE":
		at.Obsolete = true
	case "SUP":
		t, err := tk.NextOid()
		if err != nil {
			return err
		}
		at.Superior = t.Val()
	case "EQUALITY":
		t, err := tk.NextOid()
		if err != nil {
			return err
		}
		at.Equality = t.Val()
	case "ORDERING":
		t, err := tk.NextOid()
		if err != nil {
			return err
		}
		at.Ordering = t.Val()
	case "SUBSTR":
		t, err := tk.NextOid()
		if err != nil {
			return err
		}
		at.Substring = t.Val()
	case "SYNTAX":
		t, err := tk.NextNoidlen()
		if err != nil {
			return err
		}
		oidStr, length := splitNoidLen(t.Val())
		at.Syntax = oidStr
		at.SyntaxLength = length
	case "SINGLE-VALUE":
		at.SingleValue = true
	case "COLLECTIVE":
		at.Collective = true
	case "NO-USER-MODIFICATION":
		at.NoUserMod = true
	case "USAGE":
		t, err := tk.NextDescr()
		if err != nil {
			return err
		}
		at.Usage = t.Val()
	default:
		return fmt.Errorf("unknown attribute type keyword %q", kw)
	}
	return nil
}

func stripQuotesTok(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}

// splitNoidLen splits a NOIDLEN token ("1.2.3{64}") into its OID and
// brace-enclosed length, defaulting the length to 0 when absent.
func splitNoidLen(s string) (string, int) {
	i := strings.IndexByte(s, '{')
	if i < 0 {
		return s, 0
	}
	n, err := strconv.Atoi(s[i+1 : len(s)-1])
	if err != nil {
		return s[:i], 0
	}
	return s[:i], n
}
