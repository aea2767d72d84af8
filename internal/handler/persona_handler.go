package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finverse/internal/service"
)

// PersonaHandler handles persona endpoints.
type PersonaHandler struct {
	personaService service.PersonaService
	dev            bool
}

// NewPersonaHandler creates a new PersonaHandler.
func NewPersonaHandler(personaService service.PersonaService, dev bool) *PersonaHandler {
	return &PersonaHandler{personaService: personaService, dev: dev}
}

// List handles GET /api/personas
// @Summary List personas
// @Description List all investor personas
// @Tags personas
// @Produce json
// @Success 200 {object} Response{data=[]domain.Persona} "Personas"
// @Router /personas [get]
func (h *PersonaHandler) List(c *gin.Context) {
	personas, err := h.personaService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err, h.dev)
		return
	}
	RespondOK(c, personas)
}

// GetByID handles GET /api/persona/:id
// @Summary Get persona by ID
// @Description Get a single investor persona
// @Tags personas
// @Produce json
// @Param id path string true "Persona ID"
// @Success 200 {object} Response{data=domain.Persona} "Persona"
// @Failure 404 {object} Response "Persona not found"
// @Router /persona/{id} [get]
func (h *PersonaHandler) GetByID(c *gin.Context) {
	persona, err := h.personaService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err, h.dev)
		return
	}
	RespondOK(c, persona)
}

// Select handles POST /api/persona
// @Summary Select a persona
// @Description Record a user's persona selection
// @Tags personas
// @Accept json
// @Produce json
// @Param request body service.SelectPersonaInput true "Selection"
// @Success 200 {object} Response "Selection recorded"
// @Failure 400 {object} Response "Missing fields"
// @Failure 404 {object} Response "Persona not found"
// @Router /persona [post]
func (h *PersonaHandler) Select(c *gin.Context) {
	var input service.SelectPersonaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "Missing required fields: userId and persona")
		return
	}

	if _, err := h.personaService.Select(c.Request.Context(), input); err != nil {
		HandleError(c, err, h.dev)
		return
	}

	RespondMessage(c, "Persona selected successfully", gin.H{
		"userId":  input.UserID,
		"persona": input.Persona,
	})
}
