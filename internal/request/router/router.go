// Package router provides request module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamup/internal/notification/dispatcher"
	"github.com/festy23/teamup/internal/request/handler"
	"github.com/festy23/teamup/internal/request/repository"
	"github.com/festy23/teamup/internal/request/service"
	teamRepository "github.com/festy23/teamup/internal/team/repository"
)

// RegisterRoutes registers request module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, d *dispatcher.Dispatcher, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	teams := teamRepository.New(db)
	svc := service.New(repo, teams, db, d, logger)
	h := handler.New(svc, logger)

	r.POST("/request/join", h.CreateJoinRequest)
	r.POST("/request/invite", h.CreateInvite)
	r.POST("/request/accept", h.Accept)
	r.POST("/request/reject", h.Reject)
	r.POST("/request/cancel", h.Cancel)
	r.GET("/request/incoming", h.ListIncoming)
	r.POST("/request/read", h.MarkRead)
	r.POST("/request/read-all", h.MarkAllRead)
	r.POST("/request/delete-all", h.DeleteAll)
}
