package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/orderx/internal/profile"
)

func TestLookup(t *testing.T) {
	def := profile.Lookup(profile.Extended)
	assert.Equal(t, "EXTENDED", def.DisplayName)
	assert.Equal(t, "urn:order-x.eu:1p0:extended", def.GuidelineID)
	assert.Equal(t, profile.RootElement, def.RootElement)
}

func TestLookup_UnknownFallsBackToBasic(t *testing.T) {
	def := profile.Lookup(profile.Profile(42))
	assert.Equal(t, profile.Basic, def.Profile)
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want profile.Profile
	}{
		{"basic", profile.Basic},
		{"COMFORT", profile.Comfort},
		{" Extended ", profile.Extended},
		{"urn:order-x.eu:1p0:comfort", profile.Comfort},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := profile.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}

	_, err := profile.Parse("minimum")
	require.Error(t, err)
}

func TestFromGuideline(t *testing.T) {
	p, ok := profile.FromGuideline("urn:order-x.eu:1p0:basic")
	require.True(t, ok)
	assert.Equal(t, profile.Basic, p)

	_, ok = profile.FromGuideline("urn:factur-x.eu:1p0:basic")
	assert.False(t, ok)
}

func TestFieldMasksAreNested(t *testing.T) {
	basic := profile.Lookup(profile.Basic)
	comfort := profile.Lookup(profile.Comfort)
	extended := profile.Lookup(profile.Extended)

	assert.Equal(t, basic.Fields(), basic.Fields()&comfort.Fields())
	assert.Equal(t, comfort.Fields(), comfort.Fields()&extended.Fields())
}

func TestHas(t *testing.T) {
	assert.False(t, profile.Lookup(profile.Basic).Has(profile.FieldBuyerRequisitioner))
	assert.True(t, profile.Lookup(profile.Comfort).Has(profile.FieldBuyerRequisitioner))
	assert.True(t, profile.Lookup(profile.Extended).Has(profile.FieldBuyerRequisitioner))

	assert.False(t, profile.Lookup(profile.Basic).Has(profile.FieldBusinessProcess))
	assert.True(t, profile.Lookup(profile.Comfort).Has(profile.FieldBusinessProcess))

	assert.False(t, profile.Lookup(profile.Comfort).Has(profile.FieldReferencedDocumentDate))
	assert.True(t, profile.Lookup(profile.Extended).Has(profile.FieldReferencedDocumentDate))
}

func TestAll(t *testing.T) {
	all := profile.All()
	require.Len(t, all, 3)
	assert.Equal(t, profile.Basic, all[0].Profile)
	assert.Equal(t, profile.Extended, all[2].Profile)
}
