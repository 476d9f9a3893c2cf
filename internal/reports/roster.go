// Package reports renders the company and driver roster as a workbook.
package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"fleetdesk/internal/models"
)

const (
	CompaniesSheet = "Companies"
	DriversSheet   = "Drivers"
)

var (
	companyHeader = []interface{}{"ID", "Name", "Address", "Phone", "Created"}
	driverHeader  = []interface{}{"ID", "Name", "Phone", "License", "Status", "Created"}
)

// WriteRoster writes an XLSX workbook with one sheet per entity.
// Driver PINs are left out of the export.
func WriteRoster(w io.Writer, companies []models.Company, drivers []models.Driver) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", CompaniesSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(DriversSheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := writeRows(f, CompaniesSheet, companyHeader, len(companies), func(i int) []interface{} {
		c := companies[i]
		return []interface{}{c.ID, c.Name, c.Address, c.Phone, c.CreatedAt.Format("2006-01-02")}
	}); err != nil {
		return err
	}
	if err := writeRows(f, DriversSheet, driverHeader, len(drivers), func(i int) []interface{} {
		d := drivers[i]
		return []interface{}{d.ID, d.Name, d.Phone, d.LicenseNumber, string(d.Status), d.CreatedAt.Format("2006-01-02")}
	}); err != nil {
		return err
	}

	for _, sheet := range []string{CompaniesSheet, DriversSheet} {
		if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
			return err
		}
		if err := f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, header []interface{}, n int, row func(int) []interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row(i)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}
