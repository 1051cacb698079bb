package serviceImp

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// catalogRow is one parsed line of a variety catalog. Nil fields were blank
// in the sheet and leave existing values alone on upsert.
type catalogRow struct {
	Line          int
	Name          string
	DaysToHarvest *int
	PricePerBunch *float64
	PricePerKg    *float64
	PricePer100g  *float64
	Notes         *string
}

func readCatalog(r io.Reader, format string) ([][]string, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "csv":
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true
		return cr.ReadAll()
	case "xlsx":
		x, err := excelize.OpenReader(r)
		if err != nil {
			return nil, err
		}
		defer x.Close()
		sheets := x.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		return x.GetRows(sheets[0])
	}
	return nil, fmt.Errorf("unsupported catalog format %q", format)
}

func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// parseCatalog maps sheet rows onto catalogRows. The header row may use any
// of several aliases per column; only the name column is mandatory. Rows
// with unparseable numbers are reported and skipped.
func parseCatalog(rows [][]string) ([]catalogRow, []string, error) {
	if len(rows) == 0 {
		return nil, nil, errors.New("catalog is empty")
	}
	head := rows[0]
	hmap := map[string]int{}
	for i, h := range head {
		hmap[normHeader(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[normHeader(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cName := findAny("name", "variety", "variety_name", "crop")
	cDays := findAny("days_to_harvest", "days", "maturity_days", "harvest_days")
	cBunch := findAny("price_per_bunch", "bunch", "bunch_price", "per_bunch")
	cKg := findAny("price_per_kg", "kg", "kg_price", "per_kg")
	c100g := findAny("price_per_100g", "100g", "per_100g", "price_100g")
	cNotes := findAny("notes", "note", "remark", "remarks")
	if cName == -1 {
		return nil, nil, fmt.Errorf("catalog missing a name column; found headers: %v", head)
	}

	var out []catalogRow
	var problems []string
	for i, rec := range rows[1:] {
		line := i + 2
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		row := catalogRow{Line: line, Name: get(cName)}
		if row.Name == "" {
			continue
		}

		var bad []string
		if v := get(cDays); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				bad = append(bad, "days_to_harvest")
			} else {
				row.DaysToHarvest = &n
			}
		}
		price := func(idx int, col string) *float64 {
			v := strings.TrimPrefix(get(idx), "\u20b9") // rupee sign
			if v == "" {
				return nil
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil || f < 0 {
				bad = append(bad, col)
				return nil
			}
			return &f
		}
		row.PricePerBunch = price(cBunch, "price_per_bunch")
		row.PricePerKg = price(cKg, "price_per_kg")
		row.PricePer100g = price(c100g, "price_per_100g")
		if cNotes != -1 {
			if n := get(cNotes); n != "" {
				row.Notes = &n
			}
		}

		if len(bad) > 0 {
			problems = append(problems, fmt.Sprintf("line %d (%s): invalid %s", line, row.Name, strings.Join(bad, ", ")))
			continue
		}
		out = append(out, row)
	}
	return out, problems, nil
}
