package handler

import (
	"github.com/gin-gonic/gin"

	directoryapp "github.com/hsati/directory-backend/internal/application/directory"
	"github.com/hsati/directory-backend/internal/domain/identity"
)

// EventHandler serves the association event endpoints
type EventHandler struct {
	BaseHandler
	service *directoryapp.EventService
	guard   Guard
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(service *directoryapp.EventService, guard Guard) *EventHandler {
	return &EventHandler{service: service, guard: guard}
}

// RegisterRoutes registers event routes
func (h *EventHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := h.guard(identity.RoleAdmin, identity.RoleSuperAdmin)
	super := h.guard(identity.RoleSuperAdmin)

	rg.POST("/add-event", admin, h.Create)
	rg.GET("/getevents", h.List)
	rg.PUT("/update-event/:id", admin, h.Update)
	rg.DELETE("/delete-event/:id", super, h.Delete)
}

// Create adds an event
func (h *EventHandler) Create(c *gin.Context) {
	var req directoryapp.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	event, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "Event added successfully", event)
}

// List returns every event
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, "", events)
}

// Update modifies an event
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid event id")
		return
	}

	var req directoryapp.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	event, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Event updated successfully", event)
}

// Delete removes an event
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid event id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Event deleted successfully", nil)
}
