package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testTeam struct {
	TeamID         string    `gorm:"primaryKey;column:team_id"`
	TeamName       string    `gorm:"column:team_name;not null"`
	EventName      string    `gorm:"column:event_name;not null"`
	Category       string    `gorm:"column:category;not null"`
	RequiredSkills string    `gorm:"column:required_skills"`
	Capacity       int       `gorm:"column:capacity;not null"`
	MemberCount    int       `gorm:"column:member_count;not null;default:0"`
	OwnerID        string    `gorm:"column:owner_id;not null"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (testTeam) TableName() string {
	return "teams"
}

type testRequest struct {
	RequestID  string    `gorm:"primaryKey;column:request_id"`
	Kind       string    `gorm:"column:kind;not null"`
	FromUserID string    `gorm:"column:from_user_id;not null"`
	ToUserID   string    `gorm:"column:to_user_id;not null"`
	TeamID     string    `gorm:"column:team_id;not null"`
	TeamName   string    `gorm:"column:team_name;not null"`
	Message    string    `gorm:"column:message"`
	Status     string    `gorm:"column:status;not null"`
	Read       bool      `gorm:"column:read;not null;default:false"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (testRequest) TableName() string {
	return "membership_requests"
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&testTeam{}, &testRequest{})
	require.NoError(t, err)

	return db
}

func insertTeam(t *testing.T, db *gorm.DB, teamID string, capacity, memberCount int) {
	t.Helper()
	err := db.Create(&testTeam{
		TeamID:      teamID,
		TeamName:    "Team " + teamID,
		EventName:   "Event",
		Category:    "Hackathon",
		Capacity:    capacity,
		MemberCount: memberCount,
		OwnerID:     "owner",
	}).Error
	require.NoError(t, err)
}

func insertRequest(t *testing.T, db *gorm.DB, requestID, status string) {
	t.Helper()
	err := db.Create(&testRequest{
		RequestID:  requestID,
		Kind:       "JOIN_REQUEST",
		FromUserID: "u1",
		ToUserID:   "owner",
		TeamID:     "t1",
		TeamName:   "Team t1",
		Status:     status,
		CreatedAt:  time.Now(),
	}).Error
	require.NoError(t, err)
}

func TestRepository_GetTeamStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates fill rates", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())

		insertTeam(t, db, "t1", 4, 4) // full, fill 1.0
		insertTeam(t, db, "t2", 4, 2) // fill 0.5
		insertTeam(t, db, "t3", 2, 1) // fill 0.5

		stats, err := repo.GetTeamStatistics(ctx)

		require.NoError(t, err)
		assert.Equal(t, 3, stats.TotalTeams)
		assert.Equal(t, 1, stats.FullTeams)
		assert.Equal(t, 7, stats.TotalMembers)
		assert.InDelta(t, 2.0/3.0, stats.AverageFillRate, 0.001)
	})

	t.Run("no teams", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())

		stats, err := repo.GetTeamStatistics(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, stats.TotalTeams)
		assert.Equal(t, 0, stats.TotalMembers)
		assert.Zero(t, stats.AverageFillRate)
	})
}

func TestRepository_GetRequestStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates by status", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())

		insertRequest(t, db, "r1", "PENDING")
		insertRequest(t, db, "r2", "ACCEPTED")
		insertRequest(t, db, "r3", "ACCEPTED")
		insertRequest(t, db, "r4", "REJECTED")

		stats, err := repo.GetRequestStatistics(ctx)

		require.NoError(t, err)
		assert.Equal(t, 4, stats.TotalRequests)
		assert.Equal(t, 1, stats.PendingRequests)
		assert.Equal(t, 2, stats.AcceptedRequests)
		assert.Equal(t, 1, stats.RejectedRequests)
		assert.InDelta(t, 2.0/3.0, stats.AcceptanceRate, 0.001)
	})

	t.Run("no resolved requests", func(t *testing.T) {
		db := setupTestDB(t)
		repo := New(db, zap.NewNop().Sugar())

		insertRequest(t, db, "r1", "PENDING")

		stats, err := repo.GetRequestStatistics(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, stats.TotalRequests)
		assert.Zero(t, stats.AcceptanceRate)
	})
}
