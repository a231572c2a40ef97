package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/universalnft/nft-bridge/internal/domain"
	"github.com/universalnft/nft-bridge/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest       ErrorCode = "bad_request"
	errCodeNotFound         ErrorCode = "not_found"
	errCodeValidationFailed ErrorCode = "validation_failed"
	errCodeForbidden        ErrorCode = "forbidden"
	errCodeConflict         ErrorCode = "conflict"
	errCodeProgramPaused    ErrorCode = "program_paused"
	errCodeNotInitialized   ErrorCode = "not_initialized"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
	errCodeGatewayError  ErrorCode = "gateway_error"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", details)
}

// respondServiceError maps a transfer service error to an HTTP response.
// Unrecognized errors are logged and reported as 500s without leaking
// internals to the client.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, domain.ErrInvalidGasLimit),
		errors.Is(err, domain.ErrInvalidURIEncoding),
		errors.Is(err, domain.ErrInvalidMessageFormat):
		respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, err.Error())

	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(c, http.StatusForbidden, errCodeForbidden, "Caller is not allowed to perform this operation")

	case errors.Is(err, domain.ErrInvalidCrossChainMessage):
		respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, err.Error())

	case errors.Is(err, domain.ErrNFTOriginNotFound):
		respondWithError(c, http.StatusNotFound, errCodeNotFound, "Token not found")

	case errors.Is(err, domain.ErrTokenAlreadyExists):
		respondWithError(c, http.StatusConflict, errCodeConflict, err.Error())

	case errors.Is(err, domain.ErrNextTokenIdMismatch),
		errors.Is(err, domain.ErrTokenIdOverflow):
		respondWithError(c, http.StatusConflict, errCodeConflict, err.Error())

	case errors.Is(err, domain.ErrProgramPaused):
		respondWithError(c, http.StatusConflict, errCodeProgramPaused, "Program is paused")

	case errors.Is(err, domain.ErrNotInitialized):
		respondWithError(c, http.StatusConflict, errCodeNotInitialized, "Program is not initialized")

	case errors.Is(err, domain.ErrGatewayCallFailed):
		logger.Error(err, zap.String("path", c.Request.URL.Path))
		respondWithError(c, http.StatusBadGateway, errCodeGatewayError, "Cross-chain relay failed")

	default:
		logger.Error(err, zap.String("path", c.Request.URL.Path))
		respondWithError(c, http.StatusInternalServerError, errCodeInternalError, "Internal server error")
	}
}
