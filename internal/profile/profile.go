// Package profile holds the static registry of Order-X profiles and the
// per-profile field mask that decides which optional branches of an order
// document exist.
package profile

import (
	"fmt"
	"strings"
)

// Profile identifies an Order-X conformance level
type Profile int

const (
	Basic Profile = iota
	Comfort
	Extended
)

// RootElement is the message structure element shared by all profiles
const RootElement = "rsm:SCRDMCCBDACIOMessageStructure"

// Definition describes a profile
type Definition struct {
	Profile        Profile
	Name           string
	DisplayName    string
	GuidelineID    string
	XSDFile        string
	SchematronFile string
	RootElement    string
	fields         Field
}

// Has reports whether the profile exposes the given branch
func (d Definition) Has(f Field) bool {
	return d.fields&f == f
}

// Fields returns the raw field mask
func (d Definition) Fields() Field {
	return d.fields
}

var registry = []Definition{
	{
		Profile:        Basic,
		Name:           "basic",
		DisplayName:    "BASIC",
		GuidelineID:    "urn:order-x.eu:1p0:basic",
		XSDFile:        "SCRDMCCBDACIOMessageStructure_100pD20B.xsd",
		SchematronFile: "ORDER-X_BASIC.xslt",
		RootElement:    RootElement,
		fields:         basicFields,
	},
	{
		Profile:        Comfort,
		Name:           "comfort",
		DisplayName:    "COMFORT",
		GuidelineID:    "urn:order-x.eu:1p0:comfort",
		XSDFile:        "SCRDMCCBDACIOMessageStructure_100pD20B.xsd",
		SchematronFile: "ORDER-X_COMFORT.xslt",
		RootElement:    RootElement,
		fields:         comfortFields,
	},
	{
		Profile:        Extended,
		Name:           "extended",
		DisplayName:    "EXTENDED",
		GuidelineID:    "urn:order-x.eu:1p0:extended",
		XSDFile:        "SCRDMCCBDACIOMessageStructure_100pD20B.xsd",
		SchematronFile: "ORDER-X_EXTENDED.xslt",
		RootElement:    RootElement,
		fields:         extendedFields,
	},
}

// Lookup returns the definition of p. Unknown values resolve to BASIC.
func Lookup(p Profile) Definition {
	for _, d := range registry {
		if d.Profile == p {
			return d
		}
	}
	return registry[0]
}

// All returns all profile definitions, ordered from smallest to largest
func All() []Definition {
	out := make([]Definition, len(registry))
	copy(out, registry)
	return out
}

// Parse resolves a profile from its name or guideline id
func Parse(s string) (Profile, error) {
	s = strings.TrimSpace(s)
	for _, d := range registry {
		if strings.EqualFold(s, d.Name) || s == d.GuidelineID {
			return d.Profile, nil
		}
	}
	return Basic, fmt.Errorf("unknown profile %q", s)
}

// FromGuideline resolves a profile from the guideline parameter of a document
func FromGuideline(id string) (Profile, bool) {
	id = strings.TrimSpace(id)
	for _, d := range registry {
		if d.GuidelineID == id {
			return d.Profile, true
		}
	}
	return Basic, false
}

func (p Profile) String() string {
	return Lookup(p).DisplayName
}

// Definition returns the registry entry for p
func (p Profile) Definition() Definition {
	return Lookup(p)
}
