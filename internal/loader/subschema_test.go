package loader

import "testing"

func TestSubschemaLoaderMapsAttributeKeysToRawSchemaFields(t *testing.T) {
	values := map[string][]string{
		"attributeTypes": {"( 2.5.4.3 NAME 'cn' )"},
		"objectClasses":  {"( 2.5.6.0 NAME 'top' ABSTRACT )"},
	}
	l := NewSubschemaLoader("subentry", values)

	names, err := l.ListSchemas()
	if err != nil || len(names) != 1 || names[0] != "subentry" {
		t.Fatalf("ListSchemas = %v, %v", names, err)
	}

	rs, err := l.LoadSchema("subentry")
	if err != nil {
		t.Fatalf("LoadSchema: %v", err)
	}
	if len(rs.AttributeTypes) != 1 || rs.AttributeTypes[0] != values["attributeTypes"][0] {
		t.Fatalf("AttributeTypes = %v", rs.AttributeTypes)
	}
	if len(rs.ObjectClasses) != 1 {
		t.Fatalf("ObjectClasses = %v", rs.ObjectClasses)
	}
	if len(rs.MatchingRules) != 0 {
		t.Fatalf("MatchingRules should be empty when absent from the subentry map, got %v", rs.MatchingRules)
	}
}
