package handler

import (
	"github.com/gin-gonic/gin"

	contactapp "github.com/hsati/directory-backend/internal/application/contact"
	"github.com/hsati/directory-backend/internal/interfaces/http/dto"
)

// ContactHandler relays the public contact form to the association inbox
type ContactHandler struct {
	BaseHandler
	service *contactapp.Service
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(service *contactapp.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

// RegisterRoutes registers the contact route. It is public; the form sits
// on the association's marketing site.
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/send-contact-email", h.Send)
}

// Send relays one contact-form submission over SMTP
func (h *ContactHandler) Send(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.service.Send(c.Request.Context(), req.Name, req.Email, req.Message); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Email sent successfully", nil)
}
