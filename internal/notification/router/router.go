// Package router provides notification module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamup/internal/notification/handler"
	"github.com/festy23/teamup/internal/notification/repository"
)

// RegisterRoutes registers notification module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	h := handler.New(repo, logger)

	r.GET("/notification/list", h.List)
	r.POST("/notification/read-all", h.MarkAllRead)
}
