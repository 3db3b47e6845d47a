package gamedata

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// decodeJSON reads a JSON catalog with gjson. Sections absent from the document
// stay nil so merge keeps the built-in tables for them.
func decodeJSON(raw []byte) (*catalogFile, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("failed to parse JSON catalog: malformed document")
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, fmt.Errorf("failed to parse JSON catalog: top level must be an object")
	}

	f := &catalogFile{}

	if v := doc.Get("products"); v.Exists() {
		f.Products = []productRecord{}
		v.ForEach(func(_, p gjson.Result) bool {
			f.Products = append(f.Products, productRecord{
				Name:      p.Get("name").String(),
				BaseValue: p.Get("base_value").Float(),
			})
			return true
		})
	}

	if v := doc.Get("strains"); v.Exists() {
		f.Strains = []strainRecord{}
		v.ForEach(func(_, s gjson.Result) bool {
			f.Strains = append(f.Strains, strainRecord{
				Name:     s.Get("name").String(),
				Effect:   s.Get("effect").String(),
				SeedCost: s.Get("seed_cost").Float(),
				BudValue: s.Get("bud_value").Float(),
				YieldMin: int(s.Get("yield_min").Int()),
				YieldMax: int(s.Get("yield_max").Int()),
			})
			return true
		})
	}

	if v := doc.Get("mixers"); v.Exists() {
		f.Mixers = []mixerRecord{}
		v.ForEach(func(_, m gjson.Result) bool {
			f.Mixers = append(f.Mixers, mixerRecord{
				Name:   m.Get("name").String(),
				Effect: m.Get("effect").String(),
				Cost:   int(m.Get("cost").Int()),
				Unlock: m.Get("unlock").String(),
			})
			return true
		})
	}

	if v := doc.Get("effects"); v.Exists() {
		f.Effects = []effectRecord{}
		v.ForEach(func(_, e gjson.Result) bool {
			f.Effects = append(f.Effects, effectRecord{
				Name:          e.Get("name").String(),
				Multiplier:    e.Get("multiplier").Float(),
				Addictiveness: e.Get("addictiveness").Float(),
				Tier:          int(e.Get("tier").Int()),
			})
			return true
		})
	}

	if v := doc.Get("replacements"); v.Exists() {
		f.Replacements = []replacementRecord{}
		v.ForEach(func(_, r gjson.Result) bool {
			f.Replacements = append(f.Replacements, replacementRecord{
				Existing: r.Get("existing").String(),
				Mixer:    r.Get("mixer").String(),
				Result:   r.Get("result").String(),
			})
			return true
		})
	}

	if v := doc.Get("interactions"); v.Exists() {
		f.Interactions = []interactionRecord{}
		v.ForEach(func(_, r gjson.Result) bool {
			f.Interactions = append(f.Interactions, interactionRecord{
				Existing: r.Get("existing").String(),
				Mixer:    r.Get("mixer").String(),
				Result:   r.Get("result").String(),
				Remove:   r.Get("remove").String(),
			})
			return true
		})
	}

	if v := doc.Get("addictiveness"); v.Exists() {
		f.Addictiveness = map[string]float64{}
		v.ForEach(func(name, a gjson.Result) bool {
			f.Addictiveness[name.String()] = a.Float()
			return true
		})
	}

	if v := doc.Get("production"); v.Exists() {
		f.Production = map[string]productionInfo{}
		v.ForEach(func(name, p gjson.Result) bool {
			f.Production[name.String()] = productionInfo{
				IngredientsCost: p.Get("ingredients_cost").Float(),
				Yield:           int(p.Get("yield").Int()),
				UnitValue:       p.Get("unit_value").Float(),
			}
			return true
		})
	}

	if v := doc.Get("recipes"); v.Exists() {
		f.Recipes = []recipeRecord{}
		v.ForEach(func(_, r gjson.Result) bool {
			f.Recipes = append(f.Recipes, recipeRecord{
				Name:            r.Get("name").String(),
				Products:        stringArray(r.Get("products")),
				Mixers:          stringArray(r.Get("mixers")),
				Effects:         stringArray(r.Get("effects")),
				MultiplierTotal: r.Get("multiplier_total").Float(),
				Profit:          r.Get("profit").Float(),
			})
			return true
		})
	}

	return f, nil
}

func stringArray(v gjson.Result) []string {
	if !v.Exists() {
		return nil
	}
	items := v.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	return out
}
