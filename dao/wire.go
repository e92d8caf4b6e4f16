//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewUserStatsDAO,
	NewAssetDAO,
	NewAssetStatsDAO,
	NewUsefulVoteDAO,
	NewUserFollowDAO,
	NewStackDAO,
	NewStackItemDAO,
	NewReviewDAO,
	NewForumPostDAO,
	NewBadgeDAO,
)
