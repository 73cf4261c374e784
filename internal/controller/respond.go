// Package controller holds the HTTP helpers shared by the user and admin
// controllers.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/pesomatch/internal/apperror"
	"github.com/lshigami/pesomatch/internal/dto"
	"github.com/lshigami/pesomatch/internal/middleware"
	"github.com/lshigami/pesomatch/internal/service"
	"github.com/rs/zerolog/log"
)

// RespondError maps a service error to its status code and writes an
// ErrorResponse. op names the handler in the log line.
func RespondError(ctx *gin.Context, op string, err error) {
	switch {
	case apperror.IsValidation(err):
		log.Warn().Err(err).Msg(op + ": Rejected request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request", Details: apperror.Details(err)})
	case apperror.IsNotFound(err):
		log.Warn().Err(err).Msg(op + ": Not found")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrAssistantNotConfigured):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Msg(op + ": Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
	}
}

// BindError answers a request whose body failed gin binding.
func BindError(ctx *gin.Context, op string, err error) {
	log.Warn().Err(err).Msg(op + ": Failed to bind JSON")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}

// UintParam parses a numeric path parameter, answering 400 when it is not one.
func UintParam(ctx *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || v == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(v), true
}

// Candidate returns the authenticated candidate, answering 401 when the
// request carries none.
func Candidate(ctx *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.CandidateID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return uuid.Nil, false
	}
	return id, true
}
