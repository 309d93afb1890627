package handlers

import (
	"net/http"

	"todo_api/internal/logger"

	"github.com/gin-gonic/gin"
)

// FieldErrors maps a request field to its validation messages.
type FieldErrors map[string][]string

func respondSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

func respondValidation(c *gin.Context, status int, errs FieldErrors) {
	c.JSON(status, gin.H{
		"success": false,
		"message": "Validation errors",
		"errors":  errs,
	})
}

func respondInternal(c *gin.Context, err error, msg string) {
	logger.FromContext(c.Request.Context()).Error(msg, "error", err)
	respondError(c, http.StatusInternalServerError, "internal error")
}
