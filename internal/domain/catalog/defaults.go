package catalog

// Default returns a freshly built Catalog carrying the shipped game data
func Default() *Catalog {
	return MustNew(DefaultData())
}

// DefaultData returns the shipped game tables. Each call returns new slices and maps.
func DefaultData() Data {
	return Data{
		Products: []FlatProduct{
			{Name: "Marijuana", BaseValue: 38},
			{Name: "Methamphetamine", BaseValue: 70},
			{Name: "Cocaine", BaseValue: 150},
		},
		Strains: []Strain{
			{Name: "OG Kush", Effect: "Calming", SeedCost: 30, BudValue: 38, YieldMin: 11, YieldMax: 13},
			{Name: "Sour Diesel", Effect: "Refreshing", SeedCost: 35, BudValue: 40, YieldMin: 11, YieldMax: 13},
			{Name: "Green Crack", Effect: "Energizing", SeedCost: 40, BudValue: 43, YieldMin: 11, YieldMax: 13},
			{Name: "Granddaddy Purple", Effect: "Sedating", SeedCost: 45, BudValue: 44, YieldMin: 11, YieldMax: 13},
		},
		Mixers: []Mixer{
			{Name: "Cuke", Effect: "Energizing", Cost: 2, Unlock: "Immediately"},
			{Name: "Banana", Effect: "Gingeritis", Cost: 2, Unlock: "Immediately"},
			{Name: "Paracetamol", Effect: "Sneaky", Cost: 3, Unlock: "Immediately"},
			{Name: "Donut", Effect: "Calorie-Dense", Cost: 3, Unlock: "Immediately"},
			{Name: "Viagra", Effect: "Tropic Thunder", Cost: 4, Unlock: "Hoodlum II"},
			{Name: "Flu medicine", Effect: "Sedating", Cost: 5, Unlock: "Hoodlum IV"},
			{Name: "Mouth wash", Effect: "Balding", Cost: 4, Unlock: "Hoodlum III"},
			{Name: "Gasoline", Effect: "Toxic", Cost: 5, Unlock: "Hoodlum V"},
			{Name: "Motor oil", Effect: "Slippery", Cost: 6, Unlock: "Peddler II"},
			{Name: "Mega bean", Effect: "Foggy", Cost: 7, Unlock: "Peddler II"},
			{Name: "Chili", Effect: "Spicy", Cost: 7, Unlock: "Peddler IV"},
			{Name: "Battery", Effect: "Bright-Eyed", Cost: 8, Unlock: "Peddler V"},
			{Name: "Energy drink", Effect: "Athletic", Cost: 6, Unlock: "Peddler I"},
			{Name: "Iodine", Effect: "Jennerising", Cost: 8, Unlock: "Hustler I"},
			{Name: "Addy", Effect: "Thought-Provoking", Cost: 9, Unlock: "Hustler II"},
			{Name: "Horse semen", Effect: "Long Faced", Cost: 9, Unlock: "Hustler III"},
		},
		Effects: []Effect{
			{Name: "Calming", Multiplier: 0.10, Addictiveness: 0.00, Tier: 1},
			{Name: "Paranoia", Multiplier: 0.12, Addictiveness: 0.12, Tier: 1},
			{Name: "Euphoric", Multiplier: 0.14, Addictiveness: 0.29, Tier: 1},
			{Name: "Munchies", Multiplier: 0.16, Addictiveness: 0.19, Tier: 1},
			{Name: "Laxative", Multiplier: 0.18, Addictiveness: 0.15, Tier: 1},
			{Name: "Focused", Multiplier: 0.20, Addictiveness: 0.31, Tier: 1},
			{Name: "Energizing", Multiplier: 0.22, Addictiveness: 0.34, Tier: 2},
			{Name: "Foggy", Multiplier: 0.24, Addictiveness: 0.27, Tier: 2},
			{Name: "Sedating", Multiplier: 0.26, Addictiveness: 0.30, Tier: 2},
			{Name: "Calorie-Dense", Multiplier: 0.28, Addictiveness: 0.27, Tier: 2},
			{Name: "Balding", Multiplier: 0.30, Addictiveness: 0.31, Tier: 2},
			{Name: "Thought-Provoking", Multiplier: 0.32, Addictiveness: 0.37, Tier: 2},
			{Name: "Slippery", Multiplier: 0.34, Addictiveness: 0.31, Tier: 3},
			{Name: "Toxic", Multiplier: 0.00, Addictiveness: 0.38, Tier: 3},
			{Name: "Spicy", Multiplier: 0.36, Addictiveness: 0.33, Tier: 3},
			{Name: "Gingeritis", Multiplier: 0.38, Addictiveness: 0.44, Tier: 3},
			{Name: "Sneaky", Multiplier: 0.40, Addictiveness: 0.48, Tier: 3},
			{Name: "Disorienting", Multiplier: 0.42, Addictiveness: 0.46, Tier: 3},
			{Name: "Athletic", Multiplier: 0.44, Addictiveness: 0.49, Tier: 3},
			{Name: "Tropic Thunder", Multiplier: 0.46, Addictiveness: 1.00, Tier: 4},
			{Name: "Glowing", Multiplier: 0.48, Addictiveness: 0.78, Tier: 4},
			{Name: "Electrifying", Multiplier: 0.50, Addictiveness: 0.80, Tier: 4},
			{Name: "Long Faced", Multiplier: 0.52, Addictiveness: 1.00, Tier: 4},
			{Name: "Anti-gravity", Multiplier: 0.54, Addictiveness: 0.86, Tier: 4},
			{Name: "Cyclopean", Multiplier: 0.56, Addictiveness: 0.88, Tier: 4},
			{Name: "Zombifying", Multiplier: 0.58, Addictiveness: 0.99, Tier: 4},
			{Name: "Shrinking", Multiplier: 0.60, Addictiveness: 0.91, Tier: 5},
			{Name: "Bright-Eyed", Multiplier: 0.62, Addictiveness: 0.93, Tier: 5},
			{Name: "Explosive", Multiplier: 0.42, Addictiveness: 0.55, Tier: 3},
			{Name: "Jennerising", Multiplier: 0.46, Addictiveness: 0.74, Tier: 4},
			{Name: "Schizophrenic", Multiplier: 0.48, Addictiveness: 0.80, Tier: 4},
			{Name: "Seizure-Inducing", Multiplier: 0.52, Addictiveness: 0.90, Tier: 4},
			{Name: "Refreshing", Multiplier: 0.10, Addictiveness: 0.10, Tier: 1},
			{Name: "Smelly", Multiplier: 0.30, Addictiveness: 0.35, Tier: 2},
		},
		// Three rules spell the mixer with a capital second word ("Flu Medicine",
		// "Mega Bean", "Horse Semen") and therefore never match a mixer.
		Replacements: []ReplacementRule{
			{Existing: "Smelly", Mixer: "Banana", Result: "Anti-gravity"},
			{Existing: "Munchies", Mixer: "Paracetamol", Result: "Anti-gravity"},
			{Existing: "Calming", Mixer: "Mouth wash", Result: "Anti-gravity"},
			{Existing: "Calming", Mixer: "Banana", Result: "Sneaky"},
			{Existing: "Paranoia", Mixer: "Banana", Result: "Zombifying"},
			{Existing: "Paranoia", Mixer: "Cuke", Result: "Shrinking"},
			{Existing: "Paranoia", Mixer: "Paracetamol", Result: "Sneaky"},
			{Existing: "Paranoia", Mixer: "Flu Medicine", Result: "Shrinking"},
			{Existing: "Paranoia", Mixer: "Mega Bean", Result: "Jennerising"},
			{Existing: "Paranoia", Mixer: "Iodine", Result: "Foggy"},
			{Existing: "Refreshing", Mixer: "Banana", Result: "Long Faced"},
			{Existing: "Refreshing", Mixer: "Flu Medicine", Result: "Long Faced"},
			{Existing: "Refreshing", Mixer: "Addy", Result: "Glowing"},
			{Existing: "Refreshing", Mixer: "Horse Semen", Result: "Gingeritis"},
			{Existing: "Energizing", Mixer: "Paracetamol", Result: "Paranoia"},
			{Existing: "Energizing", Mixer: "Banana", Result: "Thought-Provoking"},
			{Existing: "Calming", Mixer: "Paracetamol", Result: "Slippery"},
		},
		Interactions: []InteractionRule{
			{Existing: "Smelly", Mixer: "Banana", Result: "Anti-gravity", Remove: "Smelly"},
			{Existing: "Munchies", Mixer: "Paracetamol", Result: "Anti-gravity", Remove: "Munchies"},
			{Existing: "Calming", Mixer: "Mouth wash", Result: "Anti-gravity", Remove: "Calming"},
			{Existing: "Refreshing", Mixer: "Cuke", Result: "Energizing"},
			{Existing: "Refreshing", Mixer: "Horse semen", Result: "Long Faced"},
			{Existing: "Refreshing", Mixer: "Chili", Result: "Shrinking"},
			{Existing: "Refreshing", Mixer: "Addy", Result: "Glowing"},
			{Existing: "Calming", Mixer: "Cuke", Result: "Energizing"},
			{Existing: "Calming", Mixer: "Banana", Result: "Sneaky", Remove: "Calming"},
			{Existing: "Calming", Mixer: "Mouth wash", Result: "Cyclopean", Remove: "Calming"},
			{Existing: "Calming", Mixer: "Energy drink", Result: "Athletic"},
			{Existing: "Calming", Mixer: "Addy", Result: "Thought-Provoking"},
			{Existing: "Energizing", Mixer: "Motor oil", Result: "Slippery"},
			{Existing: "Energizing", Mixer: "Battery", Result: "Bright-Eyed"},
			{Existing: "Energizing", Mixer: "Addy", Result: "Thought-Provoking"},
			{Existing: "Energizing", Mixer: "Horse semen", Result: "Long Faced"},
			{Existing: "Sedating", Mixer: "Energy drink", Result: "Bright-Eyed", Remove: "Sedating"},
			{Existing: "Sedating", Mixer: "Flu medicine", Result: "Bright-Eyed"},
			{Existing: "Sedating", Mixer: "Chili", Result: "Spicy"},
			{Existing: "Paranoia", Mixer: "Banana", Result: "Zombifying", Remove: "Paranoia"},
			{Existing: "Paranoia", Mixer: "Cuke", Result: "Shrinking"},
			{Existing: "Paranoia", Mixer: "Mega bean", Result: "Jennerising"},
			{Existing: "Paranoia", Mixer: "Iodine", Result: "Foggy"},
			{Existing: "Paranoia", Mixer: "Paracetamol", Result: "Sneaky"},
			{Mixer: "Battery", Result: "Euphoric"},
			{Existing: "Zombifying", Mixer: "Battery", Result: "Electrifying"},
			{Mixer: "Mouth wash", Result: "Explosive"},
			{Existing: "Munchies", Mixer: "Motor oil", Result: "Energizing"},
			{Existing: "Calorie-Dense", Mixer: "Donut", Result: "Explosive"},
			{Existing: "Athletic", Mixer: "Energy drink", Result: "Glowing"},
		},
		Addictiveness: map[string]float64{
			"OG Kush":           0.0,
			"Sour Diesel":       0.10,
			"Green Crack":       0.34,
			"Granddaddy Purple": 0.0,
			"Methamphetamine":   0.60,
			"Cocaine":           0.40,
		},
		Production: map[string]ProductionInfo{
			"Methamphetamine": {IngredientsCost: 140, Yield: 10, UnitValue: 70},
			"Cocaine":         {IngredientsCost: 245, Yield: 10, UnitValue: 150},
		},
		Recipes: []PredefinedRecipe{
			{
				Name:     "Granddaddy Assblaster",
				Products: []string{"Methamphetamine", "Cocaine"},
				Mixers: []string{"Horse semen", "Addy", "Gasoline", "Paracetamol", "Banana",
					"Horse semen", "Iodine", "Cuke", "Gasoline", "Horse semen",
					"Battery", "Energy drink", "Mega bean", "Mouth wash"},
				Effects: []string{"Shrinking", "Zombifying", "Cyclopean", "Anti-gravity",
					"Long Faced", "Electrifying", "Glowing", "Tropic Thunder"},
				MultiplierTotal: 4.24,
			},
			{
				Name:     "Mega Diamond",
				Products: []string{"Sour Diesel"},
				Mixers: []string{"Horse semen", "Iodine", "Addy", "Gasoline", "Paracetamol",
					"Banana", "Horse semen", "Iodine", "Cuke", "Gasoline",
					"Horse semen", "Battery", "Energy drink", "Mega bean", "Mouth wash"},
				Effects: []string{"Shrinking", "Zombifying", "Cyclopean", "Anti-gravity",
					"Long Faced", "Electrifying", "Glowing", "Tropic Thunder"},
				MultiplierTotal: 4.24,
			},
			{
				Name:     "Efficient Mix",
				Products: []string{"Methamphetamine"},
				Mixers: []string{"Banana", "Cuke", "Paracetamol", "Gasoline", "Cuke",
					"Battery", "Horse semen", "Mega bean"},
				Effects: []string{"Electrifying", "Glowing", "Tropic Thunder", "Zombifying",
					"Cyclopean", "Bright-Eyed", "Long Faced", "Foggy"},
				Profit: 302,
			},
		},
	}
}
