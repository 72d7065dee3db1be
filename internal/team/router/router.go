// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamup/internal/team/handler"
	"github.com/festy23/teamup/internal/team/repository"
	"github.com/festy23/teamup/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	r.POST("/team/create", h.CreateTeam)
	r.GET("/team/get", h.GetTeam)
	r.GET("/team/list", h.ListTeams)
}
