package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fleetdesk/internal/hub"
	"fleetdesk/internal/models"
	"fleetdesk/internal/store"
)

// Store is the persistence the company and driver controllers need.
type Store interface {
	ListCompanies(ctx context.Context) ([]models.Company, error)
	CreateCompany(ctx context.Context, in models.CompanyInput) (models.Company, error)
	UpdateCompany(ctx context.Context, id uint, patch models.CompanyPatch) (models.Company, error)
	DeleteCompany(ctx context.Context, id uint) error

	ListDrivers(ctx context.Context) ([]models.Driver, error)
	CreateDriver(ctx context.Context, in models.DriverInput) (models.Driver, error)
	UpdateDriver(ctx context.Context, id uint, patch models.DriverPatch) (models.Driver, error)
	DeleteDriver(ctx context.Context, id uint) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(models.Event) {}

func publisherOrNoop(p hub.Publisher) hub.Publisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}

// parseID reads the :id path parameter, answering 400 when it is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format."})
		return 0, false
	}
	return uint(id), true
}

// respondStoreError maps store and validation errors onto status codes.
func respondStoreError(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
	case errors.Is(err, store.ErrDuplicateLicense):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidPIN), errors.Is(err, models.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).WithField("entity", entity).Error("store operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not complete " + entity + " operation"})
	}
}

// Health answers liveness probes.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
