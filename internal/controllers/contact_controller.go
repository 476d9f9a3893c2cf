package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetdesk/internal/contact"
)

type ContactController struct {
	Recipient string
}

func NewContactController(recipient string) *ContactController {
	return &ContactController{Recipient: recipient}
}

type contactRequest struct {
	contact.Message
	Variant contact.Variant `json:"variant"`
}

// ComposeMessage returns the subject, body and mailto link for a contact
// or suggestion form. Nothing is sent or stored.
func (h *ContactController) ComposeMessage(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	composed, err := contact.Compose(h.Recipient, req.Variant, req.Message)
	if err != nil {
		status := http.StatusBadRequest
		if !isValidationError(err) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, composed)
}

func isValidationError(err error) bool {
	for _, target := range []error{
		contact.ErrMissingName, contact.ErrMissingEmail, contact.ErrInvalidEmail,
		contact.ErrMissingMessage, contact.ErrUnknownVariant,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
