package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/campus-companion/internal/campus"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

const (
	NSNews      = "news"
	NSTeachers  = "teachers"
	NSLinks     = "links"
	NSBuildings = "buildings"
	NSSettings  = "settings"
)

// New returns the JSON-RPC 2.0 server exposing manager. It implements
// http.Handler and publishes its SMD schema.
func New(logger *slog.Logger, manager *campus.Manager) *zenrpc.Server {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register(NSNews, NewNewsService(manager))
	rpcServer.Register(NSTeachers, NewTeachersService(manager))
	rpcServer.Register(NSLinks, NewLinksService(manager))
	rpcServer.Register(NSBuildings, NewBuildingsService(manager))
	rpcServer.Register(NSSettings, NewSettingsService(manager))
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "campus-companion", nil))

	return rpcServer
}
