package service

import (
	"testing"
	"time"

	"github.com/iamlouiesison/usefully-fin/config"
	"github.com/iamlouiesison/usefully-fin/dao"
	"github.com/iamlouiesison/usefully-fin/dao/cache"
	"github.com/iamlouiesison/usefully-fin/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Users{},
		&models.UserStats{},
		&models.Asset{},
		&models.AssetStats{},
		&models.UsefulVote{},
		&models.UserFollow{},
		&models.Stack{},
		&models.StackItem{},
		&models.Badge{},
		&models.Review{},
		&models.ForumPost{},
	))
	return db
}

func setupVoteCache(t *testing.T) *cache.VoteStorage {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewVoteStorage(client)
}

func testConfig() *config.Config {
	return &config.Config{
		App: &config.App{Env: "test", HashSalt: "test-salt"},
		Jwt: &config.Jwt{Secret: "test-secret", ExpiresTime: 3600},
	}
}

func seedUser(t *testing.T, db *gorm.DB, id uint64, email string) *models.Users {
	t.Helper()
	now := time.Now()
	user := &models.Users{
		ID:        id,
		Email:     email,
		Name:      email,
		Password:  "x",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedAsset(t *testing.T, db *gorm.DB, id, ownerID uint64, createdAt time.Time) *models.Asset {
	t.Helper()
	asset := &models.Asset{
		ID:        id,
		OwnerID:   ownerID,
		URL:       "https://example.com/a",
		Title:     "测试资源",
		WhyUseful: "很有用",
		Tag:       "tools",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, db.Create(asset).Error)
	return asset
}

func newVoteService(t *testing.T, db *gorm.DB) *VoteService {
	t.Helper()
	return &VoteService{
		VoteDAO:  dao.NewUsefulVoteDAO(db),
		StatsDAO: dao.NewAssetStatsDAO(db),
		AssetDAO: dao.NewAssetDAO(db),
		UsersDAO: dao.NewUsers(db),
		BadgeDAO: dao.NewBadgeDAO(db),
		Cache:    setupVoteCache(t),
	}
}

func newFollowService(db *gorm.DB) *FollowService {
	return &FollowService{
		FollowDAO: dao.NewUserFollowDAO(db),
		StatsDAO:  dao.NewUserStatsDAO(db),
		UsersDAO:  dao.NewUsers(db),
	}
}

func newAssetService(db *gorm.DB) *AssetService {
	return &AssetService{
		AssetDAO:  dao.NewAssetDAO(db),
		VoteDAO:   dao.NewUsefulVoteDAO(db),
		ReviewDAO: dao.NewReviewDAO(db),
		UsersDAO:  dao.NewUsers(db),
		BadgeDAO:  dao.NewBadgeDAO(db),
	}
}

func newStackService(db *gorm.DB) *StackService {
	return &StackService{
		Config:       testConfig(),
		StackDAO:     dao.NewStackDAO(db),
		StackItemDAO: dao.NewStackItemDAO(db),
		AssetDAO:     dao.NewAssetDAO(db),
		VoteDAO:      dao.NewUsefulVoteDAO(db),
		UsersDAO:     dao.NewUsers(db),
		BadgeDAO:     dao.NewBadgeDAO(db),
	}
}

func newForumService(db *gorm.DB) *ForumService {
	return &ForumService{
		ReviewDAO: dao.NewReviewDAO(db),
		PostDAO:   dao.NewForumPostDAO(db),
		AssetDAO:  dao.NewAssetDAO(db),
		StackDAO:  dao.NewStackDAO(db),
		StatsDAO:  dao.NewAssetStatsDAO(db),
		UsersDAO:  dao.NewUsers(db),
	}
}

func newUserService(db *gorm.DB) *UserService {
	return &UserService{
		UsersDAO: dao.NewUsers(db),
		StatsDAO: dao.NewUserStatsDAO(db),
		AssetDAO: dao.NewAssetDAO(db),
		BadgeDAO: dao.NewBadgeDAO(db),
	}
}
