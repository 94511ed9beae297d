// Package bootstrap ships the "system" schema: the minimal set of
// syntaxes, matching rules and attribute/object classes every other
// schema assumes is already loaded, the same role loadSystem() plays in
// the original SchemaManagerTest fixture. It implements loader.Loader
// directly, in memory, so tests and cmd/schemacheck can stand up a
// manager without touching disk.
package bootstrap

import "dirschema/internal/loader"

// System returns a Loader serving exactly the "system" schema.
func System() loader.Loader {
	return systemLoader{}
}

type systemLoader struct{}

func (systemLoader) ListSchemas() ([]string, error) { return []string{"system"}, nil }

func (systemLoader) LoadSchema(name string) (*loader.RawSchema, error) {
	return &loader.RawSchema{
		Name: "system",
		LdapSyntaxes: []string{
			`( 1.3.6.1.4.1.1466.115.121.1.12 DESC 'DN' )`,
			`( 1.3.6.1.4.1.1466.115.121.1.38 DESC 'OID' )`,
			`( 1.3.6.1.4.1.1466.115.121.1.26 DESC 'IA5 String' )`,
			`( 1.3.6.1.4.1.1466.115.121.1.15 DESC 'Directory String' )`,
			`( 1.3.6.1.4.1.1466.115.121.1.7 DESC 'Boolean' )`,
		},
		MatchingRules: []string{
			`( 2.5.13.1 NAME 'distinguishedNameMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.12 )`,
			`( 2.5.13.0 NAME 'objectIdentifierMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.38 )`,
			`( 2.5.13.2 NAME 'caseIgnoreMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
		},
		AttributeTypes: []string{
			`( 2.5.4.0 NAME 'objectClass' EQUALITY objectIdentifierMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.38 )`,
			`( 2.5.18.4 NAME 'modifiersName' EQUALITY distinguishedNameMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.12 SINGLE-VALUE NO-USER-MODIFICATION USAGE directoryOperation )`,
			`( 2.5.4.3 NAME 'cn' SUP 2.5.4.41 )`,
			`( 2.5.4.41 NAME 'name' EQUALITY caseIgnoreMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )`,
		},
		ObjectClasses: []string{
			`( 2.5.6.0 NAME 'top' ABSTRACT MUST objectClass )`,
		},
	}, nil
}
