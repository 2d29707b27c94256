package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"hugoland/internal/app/game"
	"hugoland/internal/app/ports"
	"hugoland/internal/app/replay"
	"hugoland/internal/app/status"
	"hugoland/internal/domain/catalog"
	"hugoland/internal/domain/player"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	GameUC   game.UseCase
	StatusUC status.UseCase
	ReplayUC replay.UseCase
	Catalog  catalog.Catalog
	KPI      kpiSnapshotProvider

	// AllowOrigin is sent as Access-Control-Allow-Origin. Empty means any.
	AllowOrigin string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware(h.AllowOrigin))

	api := s.Group("/api/game")
	api.GET("/state", h.state)
	api.POST("/action", h.action)
	api.GET("/events", h.events)
	api.POST("/save", h.save)
	api.POST("/reset", h.reset)
	api.GET("/catalog", h.catalog)

	s.GET("/ops/kpi", h.kpi)
}

type actionRequest struct {
	Op     string          `json:"op"`
	Params json.RawMessage `json:"params,omitempty"`
}

func (h Handler) state(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.StatusUC.Execute())
}

func (h Handler) action(c context.Context, ctx *app.RequestContext) {
	var body actionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.GameUC.Execute(c, game.Request{Op: body.Op, Params: body.Params})
	if err != nil {
		writeError(ctx, err)
		return
	}
	if !resp.Accepted {
		writeActionRejected(ctx, resp)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"result_code": "OK",
		"op":          resp.Op,
		"state":       resp.State,
		"events":      resp.Events,
		"reward":      resp.Reward,
	})
}

func (h Handler) events(c context.Context, ctx *app.RequestContext) {
	req := replay.Request{}
	if raw := string(ctx.Query("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "limit must be an integer")
			return
		}
		req.Limit = limit
	}
	if raw := strings.TrimSpace(string(ctx.Query("types"))); raw != "" {
		req.Types = strings.Split(raw, ",")
	}
	if from, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64); from > 0 {
		req.From = time.Unix(from, 0)
	}
	if to, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64); to > 0 {
		req.To = time.Unix(to, 0)
	}

	resp, err := h.ReplayUC.Execute(c, req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) save(c context.Context, ctx *app.RequestContext) {
	if err := h.GameUC.Save(c); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"result_code": "OK"})
}

func (h Handler) reset(c context.Context, ctx *app.RequestContext) {
	st, err := h.GameUC.Reset(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"result_code": "OK", "state": st})
}

func (h Handler) catalog(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{
		"catalog":    h.Catalog,
		"operations": game.SupportedOps(),
	})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, game.ErrUnknownOperation):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_operation", err.Error())
	case errors.Is(err, game.ErrInvalidParams):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_action_params", err.Error())
	case errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

var rejectMessages = map[player.RejectReason]string{
	player.ReasonInsufficientCoins:  "not enough coins",
	player.ReasonInsufficientGems:   "not enough gems",
	player.ReasonInsufficientShiny:  "not enough shiny gems",
	player.ReasonInsufficientPoints: "not enough skill points",
	player.ReasonNotFound:           "item not found",
	player.ReasonEquipped:           "item is equipped",
	player.ReasonRelicSlotsFull:     "all relic slots are in use",
	player.ReasonInvalidState:       "operation not allowed in the current state",
	player.ReasonNotReady:           "not ready yet",
	player.ReasonInvalidParams:      "invalid parameters",
	player.ReasonMaxLevel:           "already at max level",
}

// writeActionRejected reports a refused transform. The body carries the
// unchanged document so clients can resync.
func writeActionRejected(ctx *app.RequestContext, resp game.Response) {
	message := rejectMessages[resp.Reason]
	if message == "" {
		message = string(resp.Reason)
	}
	ctx.JSON(consts.StatusConflict, map[string]any{
		"result_code": "REJECTED",
		"op":          resp.Op,
		"error": map[string]any{
			"code":      string(resp.Reason),
			"message":   message,
			"retryable": resp.Reason == player.ReasonNotReady,
		},
		"state": resp.State,
	})
}
