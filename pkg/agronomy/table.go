// Package agronomy holds the static crop parameter table and the demo
// market-data generators driven by it.
package agronomy

import (
	"strings"
	"time"
)

// CropInfo is one row of the agronomic parameter table. Yields are in
// quintals per acre, prices in rupees per quintal.
type CropInfo struct {
	Name          string
	SowingMonths  []time.Month
	HarvestMonths []time.Month
	GrowingDays   int
	AvgYield      float64
	BasePrice     float64
	KeyBenefits   []string
	Risks         []string
}

// Table preserves crop ordering: "first three crops" and per-crop iteration
// are positional, not ranked.
type Table struct {
	crops  []CropInfo
	byName map[string]CropInfo
}

func NewTable(crops []CropInfo) *Table {
	t := &Table{crops: crops, byName: make(map[string]CropInfo, len(crops))}
	for _, c := range crops {
		t.byName[strings.ToLower(c.Name)] = c
	}
	return t
}

func (t *Table) Crops() []CropInfo { return t.crops }

func (t *Table) Lookup(name string) (CropInfo, bool) {
	c, ok := t.byName[strings.ToLower(name)]
	return c, ok
}

// First returns the leading n table entries in configured order.
func (t *Table) First(n int) []CropInfo {
	if n > len(t.crops) {
		n = len(t.crops)
	}
	return t.crops[:n]
}

// DefaultTable covers the six crops the advisory frontend offers.
func DefaultTable() *Table {
	return NewTable([]CropInfo{
		{
			Name:          "Rice",
			SowingMonths:  []time.Month{time.June, time.July},
			HarvestMonths: []time.Month{time.October, time.November},
			GrowingDays:   120,
			AvgYield:      25,
			BasePrice:     2100,
			KeyBenefits:   []string{"Assured government procurement", "Strong local demand"},
			Risks:         []string{"High water requirement", "Stubble management costs"},
		},
		{
			Name:          "Wheat",
			SowingMonths:  []time.Month{time.November, time.December},
			HarvestMonths: []time.Month{time.April, time.May},
			GrowingDays:   140,
			AvgYield:      20,
			BasePrice:     2250,
			KeyBenefits:   []string{"Stable MSP support", "Low input costs"},
			Risks:         []string{"Terminal heat stress", "Yellow rust in humid spells"},
		},
		{
			Name:          "Corn",
			SowingMonths:  []time.Month{time.June, time.July},
			HarvestMonths: []time.Month{time.September, time.October},
			GrowingDays:   100,
			AvgYield:      24,
			BasePrice:     1850,
			KeyBenefits:   []string{"Growing poultry-feed demand", "Short duration"},
			Risks:         []string{"Fall armyworm pressure", "Price swings at harvest"},
		},
		{
			Name:          "Cotton",
			SowingMonths:  []time.Month{time.April, time.May},
			HarvestMonths: []time.Month{time.October, time.November, time.December},
			GrowingDays:   180,
			AvgYield:      10,
			BasePrice:     6500,
			KeyBenefits:   []string{"High per-quintal price", "Export demand"},
			Risks:         []string{"Pink bollworm infestations", "Long season water needs"},
		},
		{
			Name:          "Sugarcane",
			SowingMonths:  []time.Month{time.February, time.March},
			HarvestMonths: []time.Month{time.December, time.January},
			GrowingDays:   365,
			AvgYield:      350,
			BasePrice:     380,
			KeyBenefits:   []string{"Contracted mill offtake", "Ratoon savings in later years"},
			Risks:         []string{"Delayed mill payments", "Year-long field occupation"},
		},
		{
			Name:          "Mustard",
			SowingMonths:  []time.Month{time.October, time.November},
			HarvestMonths: []time.Month{time.February, time.March},
			GrowingDays:   110,
			AvgYield:      8,
			BasePrice:     5400,
			KeyBenefits:   []string{"Rising edible-oil prices", "Low irrigation needs"},
			Risks:         []string{"Aphid attacks in cool weather", "Frost damage"},
		},
	})
}

// WindowLabel renders a month window like "Jun-Jul" for recommendation cards.
func WindowLabel(months []time.Month) string {
	if len(months) == 0 {
		return ""
	}
	first := months[0].String()[:3]
	if len(months) == 1 {
		return first
	}
	return first + "-" + months[len(months)-1].String()[:3]
}
