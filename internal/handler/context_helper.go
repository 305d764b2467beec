package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vmachado/escritorio-api/internal/middleware"
	"github.com/vmachado/escritorio-api/internal/models"
)

func userFromContext(c *gin.Context) *models.User {
	return middleware.CurrentUser(c)
}
