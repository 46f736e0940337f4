package http

import (
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Message string `json:"message" example:"bicycle not found"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message})
}
