package server

import (
	"github.com/iamlouiesison/usefully-fin/handler"
)

type Handlers struct {
	Auth   *handler.Auth
	User   *handler.User
	Asset  *handler.Asset
	Vote   *handler.Vote
	Follow *handler.Follow
	Stack  *handler.Stack
	Forum  *handler.Forum
}
