package gamedata_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibahcorps/schedule1-go/internal/adapters/gamedata"
	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
	"github.com/kibahcorps/schedule1-go/internal/domain/dealer"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCatalog_EmptyPathUsesBuiltins(t *testing.T) {
	c, err := gamedata.LoadCatalog("")

	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Products(), c.Products())
}

func TestLoadCatalog_YAMLOverridesSection(t *testing.T) {
	// Arrange
	path := writeFile(t, "catalog.yaml", `
products:
  - name: Shrooms
    base_value: 55
mixers:
  - name: Cuke
    effect: Energizing
    cost: 3
`)

	// Act
	c, err := gamedata.LoadCatalog(path)

	// Assert
	require.NoError(t, err)
	p, ok := c.FlatProduct("Shrooms")
	require.True(t, ok)
	assert.Equal(t, 55.0, p.BaseValue)
	_, ok = c.FlatProduct("Cocaine")
	assert.False(t, ok, "products section replaced")
	assert.Equal(t, []string{"Cuke"}, c.MixerNames())
	_, ok = c.Strain("OG Kush")
	assert.True(t, ok, "strains kept from built-in tables")
}

func TestLoadCatalog_YAMLRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "catalog.yml", "prodcts: []\n")

	_, err := gamedata.LoadCatalog(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML catalog")
}

func TestLoadCatalog_JSON(t *testing.T) {
	// Arrange
	path := writeFile(t, "catalog.json", `{
		"effects": [
			{"name": "Calming", "multiplier": 0.1, "addictiveness": 0, "tier": 1},
			{"name": "Zany", "multiplier": 0.5, "addictiveness": 0.2, "tier": 2}
		],
		"mixers": [{"name": "Glue", "effect": "Zany", "cost": 4}],
		"strains": [],
		"products": [{"name": "Weed", "base_value": 40}],
		"replacements": [],
		"interactions": [],
		"addictiveness": {"Weed": 0.05},
		"production": {},
		"recipes": [{"name": "Sticky", "products": ["Weed"], "mixers": ["Glue"]}]
	}`)

	// Act
	c, err := gamedata.LoadCatalog(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"Weed"}, c.Products())
	m, ok := c.Mixer("Glue")
	require.True(t, ok)
	assert.Equal(t, "Zany", m.Effect)
	assert.Equal(t, 0.05, c.BaseAddictiveness("Weed"))
	require.Len(t, c.PredefinedRecipes(), 1)
	assert.Equal(t, "Sticky", c.PredefinedRecipes()[0].Name)
}

func TestParseCatalog_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ext  string
	}{
		{"malformed json", `{"products": [`, ".json"},
		{"json array at top level", `[]`, ".json"},
		{"missing mixer effect", `{"mixers": [{"name": "Glue", "cost": 1}]}`, ".json"},
		{"addictiveness above one", `{"effects": [{"name": "X", "addictiveness": 1.5}]}`, ".json"},
		{"inverted yield range", "strains:\n  - {name: S, effect: Calming, yield_min: 5, yield_max: 2}\n", ".yaml"},
		{"unsupported extension", `{}`, ".toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gamedata.ParseCatalog([]byte(tt.raw), tt.ext)
			assert.Error(t, err)
		})
	}
}

func TestParseCatalog_InvalidReferencesSurfaceCatalogError(t *testing.T) {
	raw := `{"products": [{"name": "Dup", "base_value": 1}, {"name": "Dup", "base_value": 2}]}`

	_, err := gamedata.ParseCatalog([]byte(raw), ".json")

	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
}

func TestParseDealers_Defaults(t *testing.T) {
	// Arrange
	raw := []byte(`{"dealers": [
		{"name": "Jane Lucero", "region": "Docks", "percentage_taken": 15, "preferred_effects": ["Toxic"], "max_quantity": 750},
		{"name": "Nobody"},
		{"region": "nameless"}
	]}`)

	// Act
	dealers, err := gamedata.ParseDealers(raw)

	// Assert
	require.NoError(t, err)
	require.Len(t, dealers, 2)
	assert.Equal(t, 15.0, dealers[0].PercentageTaken)
	assert.Equal(t, gamedata.UnknownLocation, dealers[0].Location)
	assert.Equal(t, []string{"Toxic"}, dealers[0].PreferredEffects)
	assert.Equal(t, dealer.DefaultPercentageTaken, dealers[1].PercentageTaken)
	assert.Equal(t, gamedata.UnknownRegion, dealers[1].Region)
}

func TestParseDealers_RejectsMissingArray(t *testing.T) {
	_, err := gamedata.ParseDealers([]byte(`{"people": []}`))
	assert.Error(t, err)

	_, err = gamedata.ParseDealers([]byte(`not json`))
	assert.Error(t, err)
}

func TestDealerDirectory_Builtin(t *testing.T) {
	dir := gamedata.NewDealerDirectory("")

	dealers, err := dir.ListDealers(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, dealers)
	d, err := dealer.FindByName(dealers, "benji coleman")
	require.NoError(t, err)
	assert.Equal(t, "Northtown", d.Region)
}

func TestDealerDirectory_File(t *testing.T) {
	path := writeFile(t, "dealers.json", `{"dealers": [{"name": "Wei Long", "region": "Suburbia"}]}`)
	dir := gamedata.NewDealerDirectory(path)

	dealers, err := dir.ListDealers(context.Background())

	require.NoError(t, err)
	require.Len(t, dealers, 1)
	assert.Equal(t, "Wei Long", dealers[0].Name)
}

func TestDealerDirectory_MissingFile(t *testing.T) {
	dir := gamedata.NewDealerDirectory(filepath.Join(t.TempDir(), "absent.json"))

	_, err := dir.ListDealers(context.Background())

	assert.Error(t, err)
}
