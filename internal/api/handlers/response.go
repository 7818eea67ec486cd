package handlers

import (
	"net/http"

	"tasting-contest-backend/internal/auth"
	apperrors "tasting-contest-backend/internal/errors"
	"tasting-contest-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Response is the envelope of every API response
type Response struct {
	Status  string      `json:"status" example:"success"`
	Message string      `json:"message" example:"ok"`
	Data    interface{} `json:"data"`
}

// ErrorResponse is the envelope of a failed request
type ErrorResponse struct {
	Status  string      `json:"status" example:"error"`
	Message string      `json:"message" example:"contest not found"`
	Data    interface{} `json:"data" swaggertype:"object"`
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Status: "success", Message: message, Data: data})
}

func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Response{Status: "error", Message: message})
}

// respondError maps a service error to the envelope. Every deterministic
// denial is a 400; anything else is a 500 and is logged.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsAuthentication(err):
		fail(c, http.StatusUnauthorized, err.Error())
	case apperrors.IsDenial(err):
		fail(c, http.StatusBadRequest, err.Error())
	default:
		logger.WithContext(c.Request.Context()).WithField("error", err.Error()).Error("request failed")
		fail(c, http.StatusInternalServerError, "internal server error")
	}
}

// requireActor returns the authenticated user or answers 401
func requireActor(c *gin.Context) (uuid.UUID, bool) {
	actor, ok := auth.Actor(c)
	if !ok {
		fail(c, http.StatusUnauthorized, apperrors.ErrMissingActor.Error())
		return uuid.Nil, false
	}
	return actor, true
}

// pathID parses a UUID path parameter or answers 400
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body or answers 400
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}
