package controllers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fleetdesk/internal/reports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	Store Store
}

func NewReportController(s Store) *ReportController {
	return &ReportController{Store: s}
}

// Roster downloads the companies and drivers as an XLSX workbook.
func (h *ReportController) Roster(c *gin.Context) {
	ctx := c.Request.Context()

	companies, err := h.Store.ListCompanies(ctx)
	if err != nil {
		respondStoreError(c, err, "company")
		return
	}
	drivers, err := h.Store.ListDrivers(ctx)
	if err != nil {
		respondStoreError(c, err, "driver")
		return
	}

	var buf bytes.Buffer
	if err := reports.WriteRoster(&buf, companies, drivers); err != nil {
		logrus.WithError(err).Error("Failed to build roster workbook")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build roster"})
		return
	}

	filename := "roster-" + time.Now().UTC().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
