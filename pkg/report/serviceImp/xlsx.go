package serviceImp

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	orderService "farmhub/pkg/order/service"
)

// sheet writes a header row and data rows into a named sheet.
type sheet struct {
	name   string
	header []any
	rows   [][]any
	widths []float64
}

func writeWorkbook(w io.Writer, sheets ...sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E2EFDA"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return err
		}
		if err := f.SetSheetRow(sh.name, "A1", &sh.header); err != nil {
			return err
		}
		last, _ := excelize.CoordinatesToCellName(len(sh.header), 1)
		if err := f.SetCellStyle(sh.name, "A1", last, bold); err != nil {
			return err
		}
		for r, row := range sh.rows {
			cell, _ := excelize.CoordinatesToCellName(1, r+2)
			if err := f.SetSheetRow(sh.name, cell, &row); err != nil {
				return err
			}
		}
		for c, wd := range sh.widths {
			col, _ := excelize.ColumnNumberToName(c + 1)
			if err := f.SetColWidth(sh.name, col, col, wd); err != nil {
				return err
			}
		}
	}
	_, err = f.WriteTo(w)
	return err
}

func (s *reportSvc) DashboardXLSX(w io.Writer) error {
	d, err := s.Dashboard()
	if err != nil {
		return err
	}

	summary := sheet{
		name:   "Summary",
		header: []any{"Metric", "Value"},
		widths: []float64{24, 16},
		rows: [][]any{
			{"Generated", d.GeneratedAt.Format("2006-01-02 15:04")},
			{"Crops", d.Totals.Crops},
			{"Growing", d.Totals.Growing},
			{"Ready", d.Totals.Ready},
			{"Customers", d.Totals.Customers},
			{"Orders", d.Totals.Orders},
			{"Open orders", d.Totals.OpenOrders},
			{"Revenue", d.Totals.Revenue},
			{"Collected", d.Totals.Collected},
			{"Feedback", d.Totals.FeedbackCount},
			{"Average rating", d.Totals.AverageRating},
		},
	}

	varieties := sheet{
		name:   "Varieties",
		header: []any{"Variety", "Times sowed", "Growing", "Harvested", "Sold", "Total sowed", "Harvested by unit"},
		widths: []float64{22, 12, 10, 10, 8, 12, 30},
	}
	for _, v := range d.Varieties {
		parts := make([]string, 0, len(v.HarvestedByUnit))
		for _, u := range v.HarvestedByUnit {
			parts = append(parts, fmt.Sprintf("%g %s", u.Quantity, u.Unit))
		}
		varieties.rows = append(varieties.rows, []any{
			v.Name, v.TimesSowed, v.Growing, v.Harvested, v.Sold, v.TotalSowed, strings.Join(parts, ", "),
		})
	}

	customers := sheet{
		name:   "Customers",
		header: []any{"Customer", "Phone", "Orders", "Total spent", "Favourite", "Latest order", "Varieties"},
		widths: []float64{22, 14, 8, 12, 18, 14, 40},
	}
	for _, c := range d.Customers {
		parts := make([]string, 0, len(c.Varieties))
		for _, v := range c.Varieties {
			parts = append(parts, fmt.Sprintf("%s x%d (%g %s)", v.Name, v.Count, v.Quantity, v.Unit))
		}
		customers.rows = append(customers.rows, []any{
			c.Name, c.Phone, c.OrderCount, c.TotalSpent, c.FavouriteVariety, c.LatestOrderDate, strings.Join(parts, "; "),
		})
	}

	return writeWorkbook(w, summary, varieties, customers)
}

func (s *reportSvc) CropDemandXLSX(w io.Writer, q orderService.DemandQuery) error {
	lines, err := s.demand.CropDemand(q)
	if err != nil {
		return err
	}
	sh := sheet{
		name:   "Crop demand",
		header: []any{"Variety", "Unit", "Total quantity", "Orders", "Customers"},
		widths: []float64{22, 10, 14, 8, 40},
	}
	for _, l := range lines {
		sh.rows = append(sh.rows, []any{l.VarietyName, l.Unit, l.TotalQuantity, l.OrderCount, strings.Join(l.Customers, ", ")})
	}
	return writeWorkbook(w, sh)
}
