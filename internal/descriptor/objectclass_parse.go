package descriptor

import (
	"fmt"
	"strings"

	"dirschema/internal/ldif"
)

// ParseObjectClass parses an ObjectClassDescription string, following
// the same tokenise-then-dispatch shape as ParseAttributeType (and the
// teacher's own objectClassParser before it).
func ParseObjectClass(s string) (*ObjectClass, error) {
	tk, err := ldif.NewTokeniser(strings.NewReader(s))
	if err != nil {
		return nil, fmt.Errorf("descriptor: tokenising object class: %w", err)
	}

	open, ok := tk.Next()
	if !ok || open.Type() != ldif.LPAREN {
		return nil, fmt.Errorf("descriptor: expected '(' to open object class")
	}

	noid, err := tk.NextNumericoid()
	if err != nil {
		return nil, fmt.Errorf("descriptor: %w", err)
	}

	oc := &ObjectClass{OID: noid.Val()}

	for tk.HasNext() {
		peek, _ := tk.Peek()
		if peek.Type() == ldif.RPAREN {
			tk.Next()
			return oc, nil
		}

		kw, ok := tk.Next()
		if !ok || kw.Type() != ldif.KEYWORD {
			return nil, fmt.Errorf("descriptor: expected keyword, got %q", peek.Val())
		}

		if err := oc.applyKeyword(tk, kw.Val()); err != nil {
			return nil, fmt.Errorf("descriptor: %w", err)
		}
	}

	return nil, fmt.Errorf("descriptor: object class missing closing ')'")
}

func (oc *ObjectClass) applyKeyword(tk *ldif.Tokeniser, kw string) error {
	switch kw {
	case "NAME":
		names, err := tk.NextQdescrs()
		if err != nil {
			return err
		}
		for _, n := range names {
			oc.Names = append(oc.Names, stripQuotesTok(n.Val()))
		}
	case "DESC":
		d, err := tk.NextQdstring()
		if err != nil {
			return err
		}
		oc.Desc = stripQuotesTok(d.Val())
	case "OBSOLETE":
		oc.Obsolete = true
	case "SUP":
		oids, err := tk.NextOids()
		if err != nil {
			return err
		}
		for _, o := range oids {
			oc.Superiors = append(oc.Superiors, o.Val())
		}
	case "ABSTRACT", "STRUCTURAL", "AUXILIARY":
		oc.Kind = kw
	case "MUST":
		oids, err := tk.NextOids()
		if err != nil {
			return err
		}
		for _, o := range oids {
			oc.Must = append(oc.Must, o.Val())
		}
	case "MAY":
		oids, err := tk.NextOids()
		if err != nil {
			return err
		}
		for _, o := range oids {
			oc.May = append(oc.May, o.Val())
		}
	default:
		return fmt.Errorf("unknown object class keyword %q", kw)
	}
	return nil
}
