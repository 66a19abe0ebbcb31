package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helmetVariants = `[
	{"groupName":"Talla","options":[{"value":"M"},{"value":"L"},{"value":"XL"}]},
	{"groupName":"Color","options":[{"value":"Negro"},{"value":"Rojo","extraPrice":5}]}
]`

func TestParseVariantGroups(t *testing.T) {
	groups := ParseVariantGroups(helmetVariants)
	require.Len(t, groups, 2)
	assert.Equal(t, "Talla", groups[0].GroupName)
	assert.Len(t, groups[0].Options, 3)
	assert.Equal(t, 5.0, groups[1].Options[1].ExtraPrice)
}

func TestParseVariantGroupsDegradesOnBadInput(t *testing.T) {
	assert.Nil(t, ParseVariantGroups(""))
	assert.Nil(t, ParseVariantGroups("  "))
	assert.Nil(t, ParseVariantGroups("not json"))
	assert.Nil(t, ParseVariantGroups(`{"groupName":"Talla"}`))
	assert.Nil(t, ParseVariantGroups(`[{"groupName":"","options":[{"value":"M"}]}]`))
	assert.Nil(t, ParseVariantGroups(`[{"groupName":"Talla","options":[]}]`))
}

func TestDefaultVariant(t *testing.T) {
	groups := ParseVariantGroups(helmetVariants)
	assert.Equal(t, "Talla: M", DefaultVariant(groups))
	assert.Equal(t, "", DefaultVariant(nil))
}

func TestResolveVariant(t *testing.T) {
	groups := ParseVariantGroups(helmetVariants)

	variant, err := ResolveVariant(groups, map[string]string{"Talla": "L", "Color": "Rojo"})
	require.NoError(t, err)
	assert.Equal(t, "Talla: L / Color: Rojo", variant)

	variant, err = ResolveVariant(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "", variant)
}

func TestResolveVariantNamesMissingGroups(t *testing.T) {
	groups := ParseVariantGroups(helmetVariants)

	_, err := ResolveVariant(groups, map[string]string{"Color": "Negro"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Talla")

	_, err = ResolveVariant(groups, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Talla, Color")
}

func TestResolveVariantRejectsUnknownOption(t *testing.T) {
	groups := ParseVariantGroups(helmetVariants)
	_, err := ResolveVariant(groups, map[string]string{"Talla": "XXL", "Color": "Negro"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Talla")
}
