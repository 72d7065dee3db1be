// Package router provides profile module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamup/internal/profile/handler"
	"github.com/festy23/teamup/internal/profile/repository"
	"github.com/festy23/teamup/internal/profile/service"
)

// RegisterRoutes registers profile module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.POST("/profile/save", h.SaveProfile)
	r.GET("/profile/get", h.GetProfile)
}
