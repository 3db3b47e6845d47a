package gamedata

import (
	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
)

// catalogFile is the on-disk catalog override. Every section is optional; a
// section present in the file replaces the built-in table of the same name.
type catalogFile struct {
	Products      []productRecord           `yaml:"products" validate:"omitempty,dive"`
	Strains       []strainRecord            `yaml:"strains" validate:"omitempty,dive"`
	Mixers        []mixerRecord             `yaml:"mixers" validate:"omitempty,dive"`
	Effects       []effectRecord            `yaml:"effects" validate:"omitempty,dive"`
	Replacements  []replacementRecord       `yaml:"replacements" validate:"omitempty,dive"`
	Interactions  []interactionRecord       `yaml:"interactions" validate:"omitempty,dive"`
	Addictiveness map[string]float64        `yaml:"addictiveness" validate:"omitempty,dive,min=0,max=1"`
	Production    map[string]productionInfo `yaml:"production" validate:"omitempty,dive"`
	Recipes       []recipeRecord            `yaml:"recipes" validate:"omitempty,dive"`
}

type productRecord struct {
	Name      string  `yaml:"name" validate:"required"`
	BaseValue float64 `yaml:"base_value" validate:"min=0"`
}

type strainRecord struct {
	Name     string  `yaml:"name" validate:"required"`
	Effect   string  `yaml:"effect" validate:"required"`
	SeedCost float64 `yaml:"seed_cost" validate:"min=0"`
	BudValue float64 `yaml:"bud_value" validate:"min=0"`
	YieldMin int     `yaml:"yield_min" validate:"min=1"`
	YieldMax int     `yaml:"yield_max" validate:"gtefield=YieldMin"`
}

type mixerRecord struct {
	Name   string `yaml:"name" validate:"required"`
	Effect string `yaml:"effect" validate:"required"`
	Cost   int    `yaml:"cost" validate:"min=0"`
	Unlock string `yaml:"unlock"`
}

type effectRecord struct {
	Name          string  `yaml:"name" validate:"required"`
	Multiplier    float64 `yaml:"multiplier"`
	Addictiveness float64 `yaml:"addictiveness" validate:"min=0,max=1"`
	Tier          int     `yaml:"tier" validate:"min=0"`
}

type replacementRecord struct {
	Existing string `yaml:"existing" validate:"required"`
	Mixer    string `yaml:"mixer" validate:"required"`
	Result   string `yaml:"result" validate:"required"`
}

type interactionRecord struct {
	Existing string `yaml:"existing"`
	Mixer    string `yaml:"mixer" validate:"required"`
	Result   string `yaml:"result" validate:"required"`
	Remove   string `yaml:"remove"`
}

type productionInfo struct {
	IngredientsCost float64 `yaml:"ingredients_cost" validate:"min=0"`
	Yield           int     `yaml:"yield" validate:"min=1"`
	UnitValue       float64 `yaml:"unit_value" validate:"min=0"`
}

type recipeRecord struct {
	Name            string   `yaml:"name" validate:"required"`
	Products        []string `yaml:"products" validate:"required,min=1"`
	Mixers          []string `yaml:"mixers" validate:"required,min=1"`
	Effects         []string `yaml:"effects"`
	MultiplierTotal float64  `yaml:"multiplier_total"`
	Profit          float64  `yaml:"profit"`
}

// merge overlays the sections present in f onto base
func (f *catalogFile) merge(base catalog.Data) catalog.Data {
	data := base

	if f.Products != nil {
		data.Products = make([]catalog.FlatProduct, len(f.Products))
		for i, p := range f.Products {
			data.Products[i] = catalog.FlatProduct{Name: p.Name, BaseValue: p.BaseValue}
		}
	}
	if f.Strains != nil {
		data.Strains = make([]catalog.Strain, len(f.Strains))
		for i, s := range f.Strains {
			data.Strains[i] = catalog.Strain{
				Name:     s.Name,
				Effect:   s.Effect,
				SeedCost: s.SeedCost,
				BudValue: s.BudValue,
				YieldMin: s.YieldMin,
				YieldMax: s.YieldMax,
			}
		}
	}
	if f.Mixers != nil {
		data.Mixers = make([]catalog.Mixer, len(f.Mixers))
		for i, m := range f.Mixers {
			data.Mixers[i] = catalog.Mixer{Name: m.Name, Effect: m.Effect, Cost: m.Cost, Unlock: m.Unlock}
		}
	}
	if f.Effects != nil {
		data.Effects = make([]catalog.Effect, len(f.Effects))
		for i, e := range f.Effects {
			data.Effects[i] = catalog.Effect{
				Name:          e.Name,
				Multiplier:    e.Multiplier,
				Addictiveness: e.Addictiveness,
				Tier:          e.Tier,
			}
		}
	}
	if f.Replacements != nil {
		data.Replacements = make([]catalog.ReplacementRule, len(f.Replacements))
		for i, r := range f.Replacements {
			data.Replacements[i] = catalog.ReplacementRule{Existing: r.Existing, Mixer: r.Mixer, Result: r.Result}
		}
	}
	if f.Interactions != nil {
		data.Interactions = make([]catalog.InteractionRule, len(f.Interactions))
		for i, r := range f.Interactions {
			data.Interactions[i] = catalog.InteractionRule{
				Existing: r.Existing,
				Mixer:    r.Mixer,
				Result:   r.Result,
				Remove:   r.Remove,
			}
		}
	}
	if f.Addictiveness != nil {
		data.Addictiveness = f.Addictiveness
	}
	if f.Production != nil {
		data.Production = make(map[string]catalog.ProductionInfo, len(f.Production))
		for name, p := range f.Production {
			data.Production[name] = catalog.ProductionInfo{
				IngredientsCost: p.IngredientsCost,
				Yield:           p.Yield,
				UnitValue:       p.UnitValue,
			}
		}
	}
	if f.Recipes != nil {
		data.Recipes = make([]catalog.PredefinedRecipe, len(f.Recipes))
		for i, r := range f.Recipes {
			data.Recipes[i] = catalog.PredefinedRecipe{
				Name:            r.Name,
				Products:        r.Products,
				Mixers:          r.Mixers,
				Effects:         r.Effects,
				MultiplierTotal: r.MultiplierTotal,
				Profit:          r.Profit,
			}
		}
	}
	return data
}
