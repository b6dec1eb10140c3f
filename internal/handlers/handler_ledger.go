package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/denimfab/denim_factory_app/internal/core/domain"
	portssvc "github.com/denimfab/denim_factory_app/internal/core/ports/services"
	"github.com/denimfab/denim_factory_app/internal/dto"
	"github.com/denimfab/denim_factory_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves the shared approval-workflow routes for one
// production ledger. R is the submit request DTO, T the entry type.
type ledgerHandler[R any, T any] struct {
	service  portssvc.LedgerSvcFacade[T]
	toDomain func(R) (T, error)
	resource string
}

// registerLedgerRoutes mounts the five workflow routes for one ledger under
// the given path. Submission is open to data-entry staff; everything else is
// admin only.
func registerLedgerRoutes[R any, T any](
	rg *gin.RouterGroup,
	path string,
	resource string,
	service portssvc.LedgerSvcFacade[T],
	toDomain func(R) (T, error),
) {
	h := &ledgerHandler[R, T]{service: service, toDomain: toDomain, resource: resource}

	ledger := rg.Group(path)
	{
		ledger.POST("/", middleware.RequireRole(domain.RoleDataEntry), h.submit)
		ledger.GET("/pending", middleware.RequireRole(domain.RoleAdmin), h.listPending)
		ledger.PUT("/approve/:id", middleware.RequireRole(domain.RoleAdmin), h.approve)
		ledger.PUT("/reject/:id", middleware.RequireRole(domain.RoleAdmin), h.reject)
		ledger.GET("/report", middleware.RequireRole(domain.RoleAdmin), h.report)
	}
}

// submit godoc
// @Summary Submit a ledger entry
// @Description Records a new production entry awaiting admin approval.
// @Tags ledgers
// @Accept json
// @Produce json
// @Success 201 {object} any
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
func (h *ledgerHandler[R, T]) submit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind submission", slog.String("resource", h.resource), slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	entry, err := h.toDomain(req)
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.service.Submit(c.Request.Context(), entry, identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Entry submitted", slog.String("resource", h.resource))
	c.JSON(http.StatusCreated, created)
}

// listPending godoc
// @Summary List pending entries
// @Description Returns all entries awaiting resolution, newest first.
// @Tags ledgers
// @Produce json
// @Success 200 {array} any
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
func (h *ledgerHandler[R, T]) listPending(c *gin.Context) {
	entries, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// approve godoc
// @Summary Approve a pending entry
// @Tags ledgers
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} any
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
func (h *ledgerHandler[R, T]) approve(c *gin.Context) {
	h.resolve(c, h.service.Approve)
}

// reject godoc
// @Summary Reject a pending entry
// @Tags ledgers
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} any
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
func (h *ledgerHandler[R, T]) reject(c *gin.Context) {
	h.resolve(c, h.service.Reject)
}

// resolve is the shared terminal-transition handler behind approve and reject.
func (h *ledgerHandler[R, T]) resolve(c *gin.Context, op func(ctx context.Context, entryID int64, adminID int64) (*T, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entryID, ok := parseEntryID(c)
	if !ok {
		return
	}

	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	resolved, err := op(c.Request.Context(), entryID, identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Entry resolved", slog.String("resource", h.resource), slog.Int64("entry_id", entryID))
	c.JSON(http.StatusOK, resolved)
}

// report godoc
// @Summary Report approved entries in a date range
// @Tags ledgers
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} any
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
func (h *ledgerHandler[R, T]) report(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind report params", slog.String("resource", h.resource), slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	entries, err := h.service.ReportApproved(c.Request.Context(), params.StartDate, params.EndDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func parseEntryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Entry ID must be a positive integer."})
		return 0, false
	}
	return id, true
}
