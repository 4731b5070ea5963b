package votingservice

import (
	"log/slog"

	httpadapter "agora/contexts/community-feed/voting-service/adapters/http"
	"agora/contexts/community-feed/voting-service/adapters/memory"
	"agora/contexts/community-feed/voting-service/application/commands"
	"agora/contexts/community-feed/voting-service/application/queries"
	"agora/contexts/community-feed/voting-service/domain/entities"
	"agora/contexts/community-feed/voting-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Votes  ports.VoteLog
	Clock  ports.Clock
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	castUseCase := commands.CastVoteUseCase{
		Votes:  deps.Votes,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	statusUseCase := queries.VoteStatusUseCase{
		Votes: deps.Votes,
	}
	return Module{
		Handler: httpadapter.Handler{
			Votes:  castUseCase,
			Status: statusUseCase,
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Vote, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Votes:  store,
		Clock:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
