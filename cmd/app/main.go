package main

import (
	"go.uber.org/fx"

	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/auth"
	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/config"
	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/db"
	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/logger"
	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/proto"
	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/service"
	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/transport"
)

func main() {
	fx.New(
		logger.Module,
		proto.Module,
		fx.Provide(
			config.NewConfig,
			db.NewGormClient,
			fx.Annotate(db.NewBookmarkRepository, fx.As(new(service.BookmarkRepository))),
			fx.Annotate(db.NewUserRepository, fx.As(new(service.UserRepository))),
			auth.NewTokenManager,
			func(m *auth.TokenManager) service.TokenIssuer { return m },
			service.NewBookmarks,
			service.NewUsers,
			transport.NewHTTPServer,
		),
		fx.Invoke(func(*transport.HTTPServer, *proto.BookmarkerServerImpl) {}),
	).Run()
}
