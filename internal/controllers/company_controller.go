package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetdesk/internal/hub"
	"fleetdesk/internal/models"
)

type CompanyController struct {
	Store  Store
	Events hub.Publisher
}

func NewCompanyController(s Store, events hub.Publisher) *CompanyController {
	return &CompanyController{Store: s, Events: publisherOrNoop(events)}
}

// ListCompanies lists all companies
func (h *CompanyController) ListCompanies(c *gin.Context) {
	companies, err := h.Store.ListCompanies(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "company")
		return
	}
	if companies == nil {
		companies = []models.Company{}
	}
	c.JSON(http.StatusOK, gin.H{"data": companies})
}

// CreateCompany registers a new company
func (h *CompanyController) CreateCompany(c *gin.Context) {
	var input models.CompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.Store.CreateCompany(c.Request.Context(), input)
	if err != nil {
		respondStoreError(c, err, "company")
		return
	}

	h.Events.Publish(models.NewEvent(models.EntityCompany, models.ActionCreated, company.ID, company))
	c.JSON(http.StatusCreated, gin.H{"company": company})
}

// UpdateCompany modifies only the fields present in the body
func (h *CompanyController) UpdateCompany(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.CompanyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if patch.Name != nil && *patch.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
		return
	}

	company, err := h.Store.UpdateCompany(c.Request.Context(), id, patch)
	if err != nil {
		respondStoreError(c, err, "company")
		return
	}

	h.Events.Publish(models.NewEvent(models.EntityCompany, models.ActionUpdated, company.ID, company))
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// DeleteCompany removes a company by ID
func (h *CompanyController) DeleteCompany(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Store.DeleteCompany(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "company")
		return
	}

	h.Events.Publish(models.NewEvent(models.EntityCompany, models.ActionDeleted, id, nil))
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted"})
}
