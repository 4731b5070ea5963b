package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	submissionservice "agora/contexts/community-feed/submission-service"
	feederrors "agora/contexts/community-feed/submission-service/domain/errors"
	feedhttp "agora/contexts/community-feed/submission-service/transport/http"
	votingservice "agora/contexts/community-feed/voting-service"
	votingerrors "agora/contexts/community-feed/voting-service/domain/errors"
	votinghttp "agora/contexts/community-feed/voting-service/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "agora/internal/platform/httpserver/docs"
)

// identityHeader carries the signed-in user's handle, resolved by the
// identity provider in front of this service. Absence means "not signed in".
const identityHeader = "X-User"

type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string
	feed   submissionservice.Module
	voting votingservice.Module
}

func New(
	feed submissionservice.Module,
	voting votingservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
		addr:   addr,
		feed:   feed,
		voting: voting,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/feed/v1/posts", s.handleSubmitPost)
	s.mux.HandleFunc("GET /api/feed/v1/posts", s.handleFeed)
	s.mux.HandleFunc("GET /api/feed/v1/posts/{post_id}", s.handleGetPost)
	s.mux.HandleFunc("GET /api/feed/v1/channels/{topic}", s.handleGetChannel)
	s.mux.HandleFunc("GET /api/feed/v1/channels/{topic}/posts", s.handleChannelFeed)

	s.mux.HandleFunc("POST /api/votes/v1/posts/{post_id}/votes", s.handleCastVote)
	s.mux.HandleFunc("GET /api/votes/v1/posts/{post_id}/votes", s.handleVoteStatus)
}

func (s *Server) handleSubmitPost(w http.ResponseWriter, r *http.Request) {
	author := r.Header.Get(identityHeader)
	if author == "" {
		writeFeedError(w, http.StatusUnauthorized, "sign_in_required", "sign in to post")
		return
	}

	var req feedhttp.SubmitPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFeedError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.feed.Handler.SubmitPostHandler(r.Context(), author, req)
	if err != nil {
		writeFeedDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	resp, err := s.feed.Handler.FeedHandler(r.Context())
	if err != nil {
		writeFeedDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	resp, err := s.feed.Handler.GetPostHandler(r.Context(), r.PathValue("post_id"))
	if err != nil {
		writeFeedDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetChannel(w http.ResponseWriter, r *http.Request) {
	resp, err := s.feed.Handler.GetChannelHandler(r.Context(), r.PathValue("topic"))
	if err != nil {
		writeFeedDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChannelFeed(w http.ResponseWriter, r *http.Request) {
	resp, err := s.feed.Handler.ChannelFeedHandler(r.Context(), r.PathValue("topic"))
	if err != nil {
		writeFeedDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCastVote(w http.ResponseWriter, r *http.Request) {
	var req votinghttp.CastVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeVotingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	voter := r.Header.Get(identityHeader)
	resp, err := s.voting.Handler.CastVoteHandler(r.Context(), voter, r.PathValue("post_id"), req)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVoteStatus(w http.ResponseWriter, r *http.Request) {
	voter := r.Header.Get(identityHeader)
	resp, err := s.voting.Handler.VoteStatusHandler(r.Context(), r.PathValue("post_id"), voter)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeFeedDomainError(w http.ResponseWriter, err error) {
	var submissionErr *feederrors.SubmissionError
	switch {
	case errors.Is(err, feederrors.ErrTopicRequired):
		writeFeedError(w, http.StatusBadRequest, "topic_required", err.Error())
	case errors.Is(err, feederrors.ErrTitleRequired):
		writeFeedError(w, http.StatusBadRequest, "title_required", err.Error())
	case errors.Is(err, feederrors.ErrAuthorRequired):
		writeFeedError(w, http.StatusUnauthorized, "sign_in_required", err.Error())
	case errors.Is(err, feederrors.ErrChannelNotFound):
		writeFeedError(w, http.StatusNotFound, "channel_not_found", err.Error())
	case errors.Is(err, feederrors.ErrPostNotFound):
		writeFeedError(w, http.StatusNotFound, "post_not_found", err.Error())
	case errors.As(err, &submissionErr):
		// The stage is diagnostic; the cause never reaches the client verbatim.
		writeFeedError(w, http.StatusBadGateway, "submission_failed",
			"submission failed at stage "+string(submissionErr.Stage))
	default:
		writeFeedError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeVotingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, votingerrors.ErrSignInRequired):
		writeVotingError(w, http.StatusUnauthorized, "sign_in_required", err.Error())
	case errors.Is(err, votingerrors.ErrInvalidVoteInput):
		writeVotingError(w, http.StatusBadRequest, "invalid_direction", "direction must be up or down")
	case errors.Is(err, votingerrors.ErrPostRequired):
		writeVotingError(w, http.StatusBadRequest, "post_required", err.Error())
	default:
		writeVotingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeFeedError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, feedhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeVotingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, votinghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
