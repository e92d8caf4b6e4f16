package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(AssetService), "*"),
	wire.Bind(new(IAssetService), new(*AssetService)),

	wire.Struct(new(VoteService), "*"),
	wire.Bind(new(IVoteService), new(*VoteService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(StackService), "*"),
	wire.Bind(new(IStackService), new(*StackService)),

	wire.Struct(new(ForumService), "*"),
	wire.Bind(new(IForumService), new(*ForumService)),
)
