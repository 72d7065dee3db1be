// Package router provides matching module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamup/internal/matching/handler"
	"github.com/festy23/teamup/internal/matching/service"
	profileRepository "github.com/festy23/teamup/internal/profile/repository"
	teamRepository "github.com/festy23/teamup/internal/team/repository"
)

// RegisterRoutes registers matching module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	profiles := profileRepository.New(db)
	teams := teamRepository.New(db)
	svc := service.New(profiles, teams, nil, logger)
	h := handler.New(svc, logger)

	r.GET("/matching/recommendations", h.Recommendations)
}
