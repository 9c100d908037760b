// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tollcalc/internal/modules/toll"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeTollError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, toll.ErrMissingVehicle):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, toll.ErrInvalidVehicleType):
		writeError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
