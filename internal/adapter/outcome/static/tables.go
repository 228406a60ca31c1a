// Package static implements the outcome tables from a YAML document checked
// in next to the deployment, so staff can retune weights and tier bands
// without a rebuild.
package static

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

type band struct {
	MinTotal int    `yaml:"min_total"`
	Outcome  string `yaml:"outcome"`
}

type tier struct {
	Name  string `yaml:"name"`
	Bands []band `yaml:"bands"`
}

type document struct {
	StatWeight  int    `yaml:"stat_weight"`
	SkillWeight int    `yaml:"skill_weight"`
	KnackWeight int    `yaml:"knack_weight"`
	Tiers       []tier `yaml:"tiers"`
}

type Tables struct {
	statWeight  int
	skillWeight int
	knackWeight int
	tiers       map[string][]band
}

// Load parses the tables from a YAML file. Bands are sorted ascending per
// tier; a roll lands in the highest band whose threshold it clears.
func Load(path string) (*Tables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read outcome tables: %w", err)
	}
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse outcome tables: %w", err)
	}
	return fromDocument(doc)
}

func fromDocument(doc document) (*Tables, error) {
	if len(doc.Tiers) == 0 {
		return nil, fmt.Errorf("outcome tables define no tiers")
	}
	t := &Tables{
		statWeight:  doc.StatWeight,
		skillWeight: doc.SkillWeight,
		knackWeight: doc.KnackWeight,
		tiers:       make(map[string][]band, len(doc.Tiers)),
	}
	for _, tr := range doc.Tiers {
		if len(tr.Bands) == 0 {
			return nil, fmt.Errorf("tier %q defines no bands", tr.Name)
		}
		bands := append([]band(nil), tr.Bands...)
		sort.Slice(bands, func(i, j int) bool { return bands[i].MinTotal < bands[j].MinTotal })
		t.tiers[tr.Name] = bands
	}
	return t, nil
}

// Default mirrors the stock tuning shipped with the server.
func Default() *Tables {
	t, err := fromDocument(document{
		StatWeight:  1,
		SkillWeight: 2,
		KnackWeight: 5,
		Tiers: []tier{
			{Name: "easy", Bands: []band{
				{MinTotal: 0, Outcome: "marginal failure"},
				{MinTotal: 10, Outcome: "success"},
				{MinTotal: 40, Outcome: "crushing success"},
			}},
			{Name: "normal", Bands: []band{
				{MinTotal: 0, Outcome: "failure"},
				{MinTotal: 25, Outcome: "success"},
				{MinTotal: 80, Outcome: "crushing success"},
			}},
			{Name: "hard", Bands: []band{
				{MinTotal: 0, Outcome: "failure"},
				{MinTotal: 60, Outcome: "marginal success"},
				{MinTotal: 120, Outcome: "success"},
			}},
			{Name: "daunting", Bands: []band{
				{MinTotal: 0, Outcome: "catastrophic failure"},
				{MinTotal: 100, Outcome: "marginal success"},
				{MinTotal: 200, Outcome: "success"},
			}},
		},
	})
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Tables) WeightStat(value int) int {
	return value * t.statWeight
}

func (t *Tables) WeightSkill(value int) int {
	return value * t.skillWeight
}

func (t *Tables) WeightKnack(level int) int {
	return level * t.knackWeight
}

// ResolveTier maps a total against the tier's bands. Unknown tiers are an
// error so a typo in the difficulty surfaces instead of silently scoring.
func (t *Tables) ResolveTier(total int, targetTier string) (string, error) {
	bands, ok := t.tiers[targetTier]
	if !ok {
		return "", fmt.Errorf("unknown difficulty tier %q", targetTier)
	}
	outcome := bands[0].Outcome
	for _, b := range bands {
		if total >= b.MinTotal {
			outcome = b.Outcome
		}
	}
	return outcome, nil
}
