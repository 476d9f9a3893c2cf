package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"fleetdesk/internal/settings"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func swatch(color string, stored bool) string {
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(settings.Hex(color))).Render("●")
	label := color
	if !stored {
		label = mutedStyle.Render(color + " (default)")
	}
	return dot + " " + label
}

func companiesTable(rows []settings.CompanyRow) string {
	t := newTable("ID", "Color", "Name", "Address", "Phone")
	for _, r := range rows {
		t.Row(strconv.FormatUint(uint64(r.ID), 10), swatch(r.Color, r.StoredColor), r.Name, r.Address, r.Phone)
	}
	return t.String()
}

func driversTable(rows []settings.DriverRow) string {
	t := newTable("ID", "Name", "Phone", "License", "Status", "PIN")
	for _, r := range rows {
		t.Row(strconv.FormatUint(uint64(r.ID), 10), r.Name, r.Phone, r.LicenseNumber, string(r.Status), r.DisplayPIN())
	}
	return t.String()
}
