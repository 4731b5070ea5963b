package submissionservice

import (
	"log/slog"

	httpadapter "agora/contexts/community-feed/submission-service/adapters/http"
	"agora/contexts/community-feed/submission-service/adapters/memory"
	"agora/contexts/community-feed/submission-service/application/commands"
	"agora/contexts/community-feed/submission-service/application/queries"
	"agora/contexts/community-feed/submission-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Channels ports.ChannelRepository
	Posts    ports.PostRepository
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	submitUseCase := commands.SubmitPostUseCase{
		Channels: deps.Channels,
		Posts:    deps.Posts,
		Clock:    deps.Clock,
		IDGen:    deps.IDGen,
		Logger:   deps.Logger,
	}
	feedUseCase := queries.FeedUseCase{
		Channels: deps.Channels,
		Posts:    deps.Posts,
	}
	return Module{
		Handler: httpadapter.Handler{
			Submissions: submitUseCase,
			Feed:        feedUseCase,
			Logger:      deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Channels: store,
		Posts:    store,
		Clock:    store,
		IDGen:    store,
		Logger:   logger,
	})
	module.Store = store
	return module
}
