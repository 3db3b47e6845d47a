package mixing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
	"github.com/kibahcorps/schedule1-go/internal/domain/mixing"
)

func TestResolver_ResolveEffects(t *testing.T) {
	resolver := mixing.NewResolver(catalog.Default())

	tests := []struct {
		name     string
		product  string
		mixers   []string
		expected []string
	}{
		{
			name:     "strain seeds its inherent effect",
			product:  "OG Kush",
			mixers:   nil,
			expected: []string{"Calming"},
		},
		{
			name:     "flat product starts empty",
			product:  "Cocaine",
			mixers:   nil,
			expected: []string{},
		},
		{
			name:     "mixer without matching rule appends its effect",
			product:  "OG Kush",
			mixers:   []string{"Cuke"},
			expected: []string{"Calming", "Energizing"},
		},
		{
			name:     "replacement swaps the existing effect in place",
			product:  "OG Kush",
			mixers:   []string{"Mouth wash"},
			expected: []string{"Anti-gravity"},
		},
		{
			name:     "unknown mixer is skipped",
			product:  "OG Kush",
			mixers:   []string{"Glitter", "Cuke"},
			expected: []string{"Calming", "Energizing"},
		},
		{
			name:     "present default effect is not duplicated",
			product:  "Marijuana",
			mixers:   []string{"Cuke", "Cuke"},
			expected: []string{"Energizing"},
		},
		{
			name:     "rule keyed on a misspelt mixer never fires",
			product:  "Marijuana",
			mixers:   []string{"Cuke", "Paracetamol", "Flu medicine"},
			expected: []string{"Paranoia", "Sedating"},
		},
		{
			name:     "unknown product resolves from an empty seed",
			product:  "Moonshine",
			mixers:   []string{"Cuke"},
			expected: []string{"Energizing"},
		},
		{
			name:     "replacement already present drops the replaced effect",
			product:  "Green Crack",
			mixers:   []string{"Addy", "Banana"},
			expected: []string{"Thought-Provoking"},
		},
		{
			name:    "list stops growing at eight",
			product: "Marijuana",
			mixers: []string{"Donut", "Viagra", "Gasoline", "Motor oil", "Chili",
				"Battery", "Energy drink", "Iodine", "Addy", "Horse semen"},
			expected: []string{"Calorie-Dense", "Tropic Thunder", "Toxic", "Slippery",
				"Spicy", "Bright-Eyed", "Athletic", "Jennerising"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			effects := resolver.ResolveEffects(tt.product, tt.mixers)

			// Assert
			assert.Equal(t, tt.expected, effects)
		})
	}
}

func TestResolver_OrderSensitive(t *testing.T) {
	// Arrange
	resolver := mixing.NewResolver(catalog.Default())

	// Act
	forward := resolver.ResolveEffects("Marijuana", []string{"Cuke", "Paracetamol"})
	reversed := resolver.ResolveEffects("Marijuana", []string{"Paracetamol", "Cuke"})

	// Assert
	assert.Equal(t, []string{"Paranoia"}, forward)
	assert.Equal(t, []string{"Sneaky", "Energizing"}, reversed)
	assert.NotEqual(t, forward, reversed)
}

func TestResolver_InvariantsHoldForManySequences(t *testing.T) {
	c := catalog.Default()
	resolver := mixing.NewResolver(c)
	names := c.MixerNames()

	for _, product := range c.Products() {
		for offset := range names {
			// Rotate the mixer list and repeat it so every sequence overflows the cap
			sequence := make([]string, 0, 2*len(names))
			for i := range names {
				sequence = append(sequence, names[(i+offset)%len(names)])
			}
			sequence = append(sequence, sequence...)

			first := resolver.ResolveEffects(product, sequence)
			second := resolver.ResolveEffects(product, sequence)

			require.Equal(t, first, second, "deterministic for %s offset %d", product, offset)
			require.LessOrEqual(t, len(first), mixing.MaxEffects)

			seen := make(map[string]bool, len(first))
			for _, e := range first {
				require.False(t, seen[e], "duplicate effect %s for %s offset %d", e, product, offset)
				seen[e] = true
			}
		}
	}
}

func TestInteractionResolver_ResolveEffects(t *testing.T) {
	resolver := mixing.NewInteractionResolver(catalog.Default())

	tests := []struct {
		name     string
		product  string
		mixers   []string
		expected []string
	}{
		{
			name:     "rule with removal replaces in place",
			product:  "OG Kush",
			mixers:   []string{"Mouth wash"},
			expected: []string{"Anti-gravity"},
		},
		{
			name:     "rule without removal adds the result",
			product:  "OG Kush",
			mixers:   []string{"Cuke"},
			expected: []string{"Calming", "Energizing"},
		},
		{
			name:     "unconditional rule applies when nothing matches",
			product:  "Marijuana",
			mixers:   []string{"Battery"},
			expected: []string{"Euphoric"},
		},
		{
			name:     "specific rule beats unconditional rule",
			product:  "Green Crack",
			mixers:   []string{"Battery"},
			expected: []string{"Energizing", "Bright-Eyed"},
		},
		{
			name:     "mixer without rules falls back to its effect",
			product:  "Marijuana",
			mixers:   []string{"Banana", "Battery"},
			expected: []string{"Gingeritis", "Euphoric"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolver.ResolveEffects(tt.product, tt.mixers))
		})
	}
}

func TestInteractionResolver_RemovalWhenResultPresent(t *testing.T) {
	// Arrange
	c := catalog.MustNew(catalog.Data{
		Strains: []catalog.Strain{{Name: "Kush", Effect: "Calming", YieldMin: 1, YieldMax: 1}},
		Mixers: []catalog.Mixer{
			{Name: "Cuke", Effect: "Energizing", Cost: 1},
			{Name: "Soap", Effect: "Balding", Cost: 1},
		},
		Interactions: []catalog.InteractionRule{
			{Existing: "Calming", Mixer: "Soap", Result: "Energizing", Remove: "Calming"},
		},
	})
	resolver := mixing.NewInteractionResolver(c)

	// Act
	effects := resolver.ResolveEffects("Kush", []string{"Cuke", "Soap"})

	// Assert
	assert.Equal(t, []string{"Energizing"}, effects)
}

func TestNewEffectResolver(t *testing.T) {
	c := catalog.Default()

	assert.IsType(t, &mixing.InteractionResolver{}, mixing.NewEffectResolver(mixing.ResolverInteractions, c))
	assert.IsType(t, &mixing.Resolver{}, mixing.NewEffectResolver(mixing.ResolverReplacements, c))
	assert.IsType(t, &mixing.Resolver{}, mixing.NewEffectResolver("", c))
}
