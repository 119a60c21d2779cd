package agronomy

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads a crop parameter workbook overriding the built-in table.
// Expected columns on the first sheet, one crop per row:
//
//	Crop | SowingMonths | HarvestMonths | GrowingDays | AvgYield | BasePrice
//
// Month lists are comma-separated month numbers, e.g. "6,7".
func LoadXLSX(path string) (*Table, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheet := x.GetSheetName(0)
	rows, err := x.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("crop table %s: no data rows", path)
	}

	defaults := DefaultTable()
	var crops []CropInfo
	for i, row := range rows[1:] {
		if len(row) < 6 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		sowing, err := parseMonths(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d sowing months: %w", i+2, err)
		}
		harvest, err := parseMonths(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d harvest months: %w", i+2, err)
		}
		days, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil || days <= 0 {
			return nil, fmt.Errorf("row %d: invalid growing days %q", i+2, row[3])
		}
		yield, err := strconv.ParseFloat(strings.TrimSpace(row[4]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid yield %q", i+2, row[4])
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(row[5]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid base price %q", i+2, row[5])
		}

		name := strings.TrimSpace(row[0])
		info := CropInfo{
			Name:          name,
			SowingMonths:  sowing,
			HarvestMonths: harvest,
			GrowingDays:   days,
			AvgYield:      yield,
			BasePrice:     price,
		}
		// Benefits/risks are narrative only; reuse the built-in text when the
		// workbook covers a known crop.
		if d, ok := defaults.Lookup(name); ok {
			info.KeyBenefits = d.KeyBenefits
			info.Risks = d.Risks
		}
		crops = append(crops, info)
	}
	if len(crops) == 0 {
		return nil, fmt.Errorf("crop table %s: no usable rows", path)
	}
	return NewTable(crops), nil
}

func parseMonths(s string) ([]time.Month, error) {
	parts := strings.Split(s, ",")
	out := make([]time.Month, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 || n > 12 {
			return nil, fmt.Errorf("invalid month %q", p)
		}
		out = append(out, time.Month(n))
	}
	return out, nil
}
