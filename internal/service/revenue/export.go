package revenue

import (
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
)

const sheetName = "Venituri"

// renderWorkbook строит XLSX: строки по датам и итоги под таблицей
func renderWorkbook(report *domain.RevenueReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	title := []interface{}{report.FieldName, report.From.Format(domain.DateFormat) + " - " + report.To.Format(domain.DateFormat)}
	if err := f.SetSheetRow(sheetName, "A1", &title); err != nil {
		return nil, err
	}

	header := []interface{}{"Data", "Venit (RON)", "Rezervări"}
	if err := f.SetSheetRow(sheetName, "A3", &header); err != nil {
		return nil, err
	}

	rowIdx := 4
	for _, row := range report.Rows {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return nil, err
		}
		values := []interface{}{row.Date.Format(domain.DateFormat), row.Revenue, row.Bookings}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, err
		}
		rowIdx++
	}

	// Итоги через пустую строку
	rowIdx++
	totals := [][]interface{}{
		{"Total venit", report.TotalRevenue},
		{"Total rezervări", report.TotalBookings},
		{"Plătite", report.PaidBookings},
		{"Neplătite", report.UnpaidBookings},
	}
	for _, values := range totals {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, err
		}
		rowIdx++
	}

	if err := f.SetColWidth(sheetName, "A", "C", 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
