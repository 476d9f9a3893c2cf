package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetdesk/internal/hub"
	"fleetdesk/internal/models"
)

type DriverController struct {
	Store  Store
	Events hub.Publisher
}

func NewDriverController(s Store, events hub.Publisher) *DriverController {
	return &DriverController{Store: s, Events: publisherOrNoop(events)}
}

// ListDrivers lists all drivers, PINs included.
func (h *DriverController) ListDrivers(c *gin.Context) {
	drivers, err := h.Store.ListDrivers(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "driver")
		return
	}
	if drivers == nil {
		drivers = []models.Driver{}
	}
	c.JSON(http.StatusOK, gin.H{"data": drivers})
}

// CreateDriver registers a driver. Status defaults to available and PIN to 1234.
func (h *DriverController) CreateDriver(c *gin.Context) {
	var input models.DriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver input: " + err.Error()})
		return
	}

	driver, err := h.Store.CreateDriver(c.Request.Context(), input)
	if err != nil {
		respondStoreError(c, err, "driver")
		return
	}

	h.Events.Publish(models.NewEvent(models.EntityDriver, models.ActionCreated, driver.ID, driver))
	c.JSON(http.StatusCreated, gin.H{"driver": driver})
}

// UpdateDriver modifies only the fields present in the body.
func (h *DriverController) UpdateDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.DriverPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if (patch.Name != nil && *patch.Name == "") || (patch.LicenseNumber != nil && *patch.LicenseNumber == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and license_number cannot be empty"})
		return
	}

	driver, err := h.Store.UpdateDriver(c.Request.Context(), id, patch)
	if err != nil {
		respondStoreError(c, err, "driver")
		return
	}

	h.Events.Publish(models.NewEvent(models.EntityDriver, models.ActionUpdated, driver.ID, driver))
	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

// DeleteDriver removes a driver by ID.
func (h *DriverController) DeleteDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Store.DeleteDriver(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "driver")
		return
	}

	h.Events.Publish(models.NewEvent(models.EntityDriver, models.ActionDeleted, id, nil))
	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted"})
}
