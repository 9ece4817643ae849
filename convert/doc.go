// Package convert translates VDF trees to and from YAML and JSON.
//
// Mappings keep their key order in both directions. Repeated VDF keys have
// no YAML or JSON counterpart, so they are grouped into a sequence placed at
// the position of the first occurrence; reading a sequence back produces
// one entry per element, under the same key.
//
//	"A" { "k" "1" "k" "2" "j" "3" }
//
// converts to
//
//	A:
//	  k:
//	  - "1"
//	  - "2"
//	  j: "3"
//
// Scalars read from YAML or JSON become leaves: booleans are written "1" and
// "0" and numbers in their shortest decimal form. Null has no counterpart
// and is an error.
package convert
