package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/denimfab/denim_factory_app/internal/apperrors"
	"github.com/denimfab/denim_factory_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the error body shape for every route.
type ErrorResponse struct {
	Message string `json:"message"`
}

// respondError maps an application error onto its HTTP status. Internal
// failures are logged server-side and reported with a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: errDetail(err)})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: errDetail(err)})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Message: errDetail(err)})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: errDetail(err)})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Message: errDetail(err)})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Internal server error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error."})
	}
}

// errDetail strips the sentinel prefix so clients see only the detail, e.g.
// "validation error: quantity must be positive" -> "quantity must be positive".
func errDetail(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{apperrors.ErrValidation, apperrors.ErrNotFound, apperrors.ErrDuplicate, apperrors.ErrUnauthorized, apperrors.ErrForbidden} {
		prefix := sentinel.Error() + ": "
		idx := strings.Index(msg, prefix)
		if idx < 0 {
			continue
		}
		detail := msg[idx+len(prefix):]
		if detail == "" {
			return msg
		}
		return strings.ToUpper(detail[:1]) + detail[1:] + "."
	}
	return msg
}

// respondBindingError turns gin binding failures into the {message} shape,
// naming the first offending field when the validator provides one.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("Field '%s' failed validation on the '%s' rule.", fe.Field(), fe.Tag()),
		})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body."})
}

// mustIdentity pulls the authenticated caller out of the context; the auth
// middleware guarantees it is present on protected routes.
func mustIdentity(c *gin.Context) (middleware.Identity, bool) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
	}
	return identity, ok
}
