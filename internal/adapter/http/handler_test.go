package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"math/rand/v2"
	"testing"
	"time"

	"hugoland/internal/adapter/content/standard"
	metricsinmem "hugoland/internal/adapter/metrics/inmemory"
	memrepo "hugoland/internal/adapter/repo/memory"
	"hugoland/internal/app/game"
	"hugoland/internal/app/persist"
	"hugoland/internal/app/ports"
	"hugoland/internal/app/replay"
	"hugoland/internal/app/status"
	"hugoland/internal/app/store"
	"hugoland/internal/domain/catalog"
	"hugoland/internal/domain/player"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

var now = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

type testServer struct {
	h       Handler
	kv      memrepo.KVStore
	metrics *metricsinmem.Recorder
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	cat := catalog.Default()
	rng := rand.New(rand.NewPCG(1, 2))
	eng := player.Engine{Catalog: cat, Content: standard.New(cat, rng), Rand: rng}
	clock := func() time.Time { return now }
	quiet := log.New(io.Discard, "", 0)

	mem := memrepo.NewStore()
	kv := memrepo.NewKVStore(mem)
	events := memrepo.NewEventRepo(mem)
	metrics := metricsinmem.NewRecorder()
	codec := persist.Codec{Store: kv, Key: persist.DefaultKey, Logger: quiet, Now: clock}

	st := store.New(player.NewState(now), store.Options{
		Engine:   eng,
		Events:   events,
		StreamID: persist.DefaultKey,
		Metrics:  metrics,
		Saver:    store.NewSaver(codec, quiet, metrics),
		Tx:       memrepo.NewTxManager(mem),
		Logger:   quiet,
		Now:      clock,
	})
	return testServer{
		h: Handler{
			GameUC:   game.UseCase{Store: st, Engine: eng, Now: clock},
			StatusUC: status.UseCase{Store: st, Engine: eng, Now: clock},
			ReplayUC: replay.UseCase{Events: events, StreamID: persist.DefaultKey},
			Catalog:  cat,
			KPI:      metrics,
		},
		kv:      kv,
		metrics: metrics,
	}
}

func postAction(h Handler, body string) *app.RequestContext {
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(body))
	h.action(context.Background(), ctx)
	return ctx
}

func decodeBody(t *testing.T, ctx *app.RequestContext) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return body
}

func TestAction_AcceptedReturnsState(t *testing.T) {
	s := newTestServer(t)
	ctx := postAction(s.h, `{"op":"open_chest","params":{"cost":100}}`)

	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d body=%s", got, want, ctx.Response.Body())
	}
	body := decodeBody(t, ctx)
	if body["result_code"] != "OK" {
		t.Fatalf("expected OK, got %v", body["result_code"])
	}
	state := body["state"].(map[string]any)
	coins := state["currencies"].(map[string]any)["coins"].(float64)
	if coins != player.StartingCoins-100 {
		t.Fatalf("expected coins %d, got %v", player.StartingCoins-100, coins)
	}
	if s.metrics.Snapshot().TransformAccepted != 1 {
		t.Fatalf("expected accepted transform to be counted")
	}
}

func TestAction_RejectionIsConflict(t *testing.T) {
	s := newTestServer(t)
	ctx := postAction(s.h, `{"op":"purchase_mythical","params":{"kind":"weapon"}}`)

	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	body := decodeBody(t, ctx)
	if body["result_code"] != "REJECTED" {
		t.Fatalf("expected REJECTED, got %v", body["result_code"])
	}
	if code := body["error"].(map[string]any)["code"]; code != string(player.ReasonInsufficientCoins) {
		t.Fatalf("unexpected error code %v", code)
	}
	if _, ok := body["state"]; !ok {
		t.Fatalf("rejection should carry the document")
	}
}

func TestAction_BadRequests(t *testing.T) {
	s := newTestServer(t)
	cases := []struct {
		body string
		code string
	}{
		{`{"op":`, "invalid_json"},
		{`{"op":"fly"}`, "unknown_operation"},
		{`{"op":"sell_item","params":{"kind":"weapon"}}`, "invalid_action_params"},
	}
	for _, tc := range cases {
		ctx := postAction(s.h, tc.body)
		if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
			t.Fatalf("%s: status mismatch: got=%d want=%d", tc.body, got, want)
		}
		errBody := decodeBody(t, ctx)["error"].(map[string]any)
		if errBody["code"] != tc.code {
			t.Fatalf("%s: expected %s, got %v", tc.body, tc.code, errBody["code"])
		}
	}
}

func TestEvents_ListsJournal(t *testing.T) {
	s := newTestServer(t)
	postAction(s.h, `{"op":"open_chest","params":{"cost":50}}`)
	postAction(s.h, `{"op":"mine_gem"}`)

	ctx := &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/game/events?limit=10&types=chest_opened")
	s.h.events(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var resp replay.Response
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Events) != 1 || resp.Events[0].Type != player.EventChestOpened {
		t.Fatalf("expected one chest event, got %+v", resp.Events)
	}
}

func TestEvents_RejectsBadLimit(t *testing.T) {
	s := newTestServer(t)
	ctx := &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/game/events?limit=abc")
	s.h.events(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

func TestSaveAndReset_Persist(t *testing.T) {
	s := newTestServer(t)
	postAction(s.h, `{"op":"upgrade_research"}`)

	ctx := &app.RequestContext{}
	s.h.save(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("save status %d", got)
	}
	raw, err := s.kv.GetItem(context.Background(), persist.DefaultKey)
	if err != nil {
		t.Fatalf("expected saved document: %v", err)
	}
	var saved player.State
	if err := json.Unmarshal([]byte(raw), &saved); err != nil || saved.Research.Level != 1 {
		t.Fatalf("expected research level 1 saved, got %d (%v)", saved.Research.Level, err)
	}

	ctx = &app.RequestContext{}
	s.h.reset(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("reset status %d", got)
	}
	if s.h.StatusUC.Execute().State.Research.Level != 0 {
		t.Fatalf("expected research reset")
	}
}

func TestState_ReturnsReadModel(t *testing.T) {
	s := newTestServer(t)
	ctx := &app.RequestContext{}
	s.h.state(context.Background(), ctx)

	var resp status.Response
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.State.Zone != 1 || resp.Stats.MaxHP != player.StartingMaxHP {
		t.Fatalf("unexpected state: zone=%d max_hp=%d", resp.State.Zone, resp.Stats.MaxHP)
	}
}

func TestCatalog_ListsOperations(t *testing.T) {
	s := newTestServer(t)
	ctx := &app.RequestContext{}
	s.h.catalog(context.Background(), ctx)

	body := decodeBody(t, ctx)
	ops, _ := body["operations"].([]any)
	if len(ops) != len(game.SupportedOps()) {
		t.Fatalf("expected %d operations, got %d", len(game.SupportedOps()), len(ops))
	}
}

func TestWriteError_Mapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{game.ErrUnknownOperation, consts.StatusBadRequest, "unknown_operation"},
		{replay.ErrInvalidRequest, consts.StatusBadRequest, "bad_request"},
		{ports.ErrNotFound, consts.StatusNotFound, "not_found"},
		{errors.New("disk on fire"), consts.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		ctx := &app.RequestContext{}
		writeError(ctx, tc.err)
		if got := ctx.Response.StatusCode(); got != tc.status {
			t.Fatalf("%v: status mismatch: got=%d want=%d", tc.err, got, tc.status)
		}
		var body map[string]map[string]any
		if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if got := body["error"]["code"]; got != tc.code {
			t.Fatalf("%v: error code mismatch: got=%q want=%q", tc.err, got, tc.code)
		}
	}
}

func TestKPI_NotConfigured(t *testing.T) {
	ctx := &app.RequestContext{}
	Handler{}.kpi(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}
