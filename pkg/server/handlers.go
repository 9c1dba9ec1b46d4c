package server

import (
	"EcoBin/handler"
)

type Handlers struct {
	User     *handler.User
	Bin      *handler.Bin
	Disposal *handler.Disposal
	Reward   *handler.Reward
	Admin    *handler.Admin
}
