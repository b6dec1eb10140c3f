package handlers

import (
	"log/slog"
	"net/http"

	"github.com/denimfab/denim_factory_app/internal/core/domain"
	portssvc "github.com/denimfab/denim_factory_app/internal/core/ports/services"
	"github.com/denimfab/denim_factory_app/internal/dto"
	"github.com/denimfab/denim_factory_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type specialNoteHandler struct {
	service portssvc.SpecialNoteSvcFacade
}

// registerSpecialNoteRoutes mounts the admin-only announcements board.
func registerSpecialNoteRoutes(rg *gin.RouterGroup, service portssvc.SpecialNoteSvcFacade) {
	h := &specialNoteHandler{service: service}

	notes := rg.Group("/special-notes", middleware.RequireRole(domain.RoleAdmin))
	{
		notes.POST("/", h.addNote)
		notes.GET("/", h.listActive)
		notes.DELETE("/:id", h.deactivate)
	}
}

// addNote godoc
// @Summary Add a special note
// @Description Posts a dated announcement; the date defaults to today.
// @Tags special-notes
// @Accept json
// @Produce json
// @Param note body dto.CreateSpecialNoteRequest true "Note"
// @Success 201 {object} domain.SpecialNote
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/special-notes [post]
func (h *specialNoteHandler) addNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSpecialNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	created, err := h.service.AddNote(c.Request.Context(), req, identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Special note added", slog.Int64("note_id", created.ID))
	c.JSON(http.StatusCreated, created)
}

// listActive godoc
// @Summary List active special notes
// @Tags special-notes
// @Produce json
// @Success 200 {array} domain.SpecialNote
// @Security BearerAuth
// @Router /api/special-notes [get]
func (h *specialNoteHandler) listActive(c *gin.Context) {
	notes, err := h.service.ListActiveNotes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// deactivate godoc
// @Summary Deactivate a special note
// @Description Soft-deletes a note; the row is retained but hidden.
// @Tags special-notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/special-notes/{id} [delete]
func (h *specialNoteHandler) deactivate(c *gin.Context) {
	noteID, ok := parseEntryID(c)
	if !ok {
		return
	}

	if err := h.service.DeactivateNote(c.Request.Context(), noteID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Special note deactivated successfully."})
}
