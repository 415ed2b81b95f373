package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/WeShipHQ/panda-monopoly-sub001/internal/core"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/http/handler/middleware"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/http/payload"
	"github.com/WeShipHQ/panda-monopoly-sub001/internal/repository"
	"go.uber.org/zap"
)

var (
	Authenticate      = "POST /monopoly/authenticate"
	ListGames         = "GET /monopoly/games"
	GetGame           = "GET /monopoly/games/{pubkey}"
	GetGamePlayers    = "GET /monopoly/games/{pubkey}/players"
	GetGameProperties = "GET /monopoly/games/{pubkey}/properties"
	SyncStatus        = "GET /monopoly/status"
	TriggerSync       = "POST /monopoly/sync"
)

type MonopolyHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	syncer           SyncService
}

func NewMonopolyHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, syncService SyncService) *MonopolyHandler {
	return &MonopolyHandler{
		logs:             logger,
		requestValidator: requestValidator,
		syncer:           syncService,
	}
}

func (h *MonopolyHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var authPayload payload.AuthRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &authPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.syncer.Authenticate(r.Context(), authPayload.ToCoreAuthMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrOperatorNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *MonopolyHandler) HandleListGames(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	games, err := h.syncer.ListGames(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve games",
			Error:   fmt.Errorf("list games: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to list games",
			"error", err,
			"handler", ListGames,
			"request_id", requestId)
		return
	}

	resp := map[string][]repository.Game{
		"games": games,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *MonopolyHandler) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	pubkey, ok := h.pathPubkey(w, r, GetGame, requestId)
	if !ok {
		return
	}

	game, err := h.syncer.GetGame(r.Context(), pubkey)
	if err != nil {
		resp := Response{Message: "Could not retrieve game"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, repository.ErrGameNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = "game not found"
		} else {
			resp.Error = fmt.Errorf("get game: %w", err).Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get game",
			"error", err,
			"handler", GetGame,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]repository.Game{"game": game}, http.StatusOK, requestId)
}

func (h *MonopolyHandler) HandleGetGamePlayers(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	pubkey, ok := h.pathPubkey(w, r, GetGamePlayers, requestId)
	if !ok {
		return
	}

	players, err := h.syncer.GetGamePlayers(r.Context(), pubkey)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve players",
			Error:   fmt.Errorf("get game players: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get game players",
			"error", err,
			"handler", GetGamePlayers,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string][]repository.Player{"players": players}, http.StatusOK, requestId)
}

func (h *MonopolyHandler) HandleGetGameProperties(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	pubkey, ok := h.pathPubkey(w, r, GetGameProperties, requestId)
	if !ok {
		return
	}

	properties, err := h.syncer.GetGameProperties(r.Context(), pubkey)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve properties",
			Error:   fmt.Errorf("get game properties: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get game properties",
			"error", err,
			"handler", GetGameProperties,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string][]repository.Property{"properties": properties}, http.StatusOK, requestId)
}

func (h *MonopolyHandler) HandleSyncStatus(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	summary := h.syncer.LastSummary()
	if summary == nil {
		h.respond(w, Response{
			Message: "No sync pass has completed yet",
		}, http.StatusOK, requestId)
		return
	}

	h.respond(w, map[string]*core.PassSummary{"last_pass": summary}, http.StatusOK, requestId)
}

func (h *MonopolyHandler) HandleTriggerSync(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken := r.Header.Get("AUTH_TOKEN")
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", TriggerSync, "request_id", requestId)
		return
	}

	if err := h.syncer.ValidateToken(authToken); err != nil {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("invalid AUTH_TOKEN", "error", err, "handler", TriggerSync, "request_id", requestId)
		return
	}

	// The pass outlives the request; its outcome lands in the logs and the
	// status endpoint.
	go func() {
		if _, err := h.syncer.RunPass(context.Background()); err != nil {
			h.logs.Errorw("triggered sync pass failed",
				"error", err,
				"handler", TriggerSync,
				"request_id", requestId)
		}
	}()

	h.respond(w, Response{Message: "Sync pass started"}, http.StatusAccepted, requestId)
}

func (h *MonopolyHandler) pathPubkey(w http.ResponseWriter, r *http.Request, route string, requestId string) (string, bool) {
	param := payload.PubkeyParam{Pubkey: r.PathValue("pubkey")}
	if err := param.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate pubkey parameter: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid pubkey parameter",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return "", false
	}
	return param.Pubkey, true
}

func (h *MonopolyHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if v := r.Context().Value(middleware.RequestIDKey); v != nil {
		return v.(string)
	}
	return ""
}
