package feedsync

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestApplyToggle(t *testing.T) {
	cases := []struct {
		name         string
		before       ReactionSnapshot
		kind         ReactionKind
		wantReaction ReactionKind
		wantCounts   map[ReactionKind]int64
	}{
		{
			name:         "react on empty post",
			before:       ReactionSnapshot{Counts: map[ReactionKind]int64{}},
			kind:         ReactionLike,
			wantReaction: ReactionLike,
			wantCounts:   map[ReactionKind]int64{ReactionLike: 1},
		},
		{
			name:         "toggle off",
			before:       ReactionSnapshot{UserReaction: ReactionLike, Counts: map[ReactionKind]int64{ReactionLike: 4}},
			kind:         ReactionLike,
			wantReaction: ReactionNone,
			wantCounts:   map[ReactionKind]int64{ReactionLike: 3},
		},
		{
			name:         "switch kinds",
			before:       ReactionSnapshot{UserReaction: ReactionLike, Counts: map[ReactionKind]int64{ReactionLike: 2, ReactionLove: 1}},
			kind:         ReactionLove,
			wantReaction: ReactionLove,
			wantCounts:   map[ReactionKind]int64{ReactionLike: 1, ReactionLove: 2},
		},
		{
			name:         "decrement floors at zero",
			before:       ReactionSnapshot{UserReaction: ReactionWow, Counts: map[ReactionKind]int64{}},
			kind:         ReactionWow,
			wantReaction: ReactionNone,
			wantCounts:   map[ReactionKind]int64{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			after := c.before.ApplyToggle(c.kind)
			if after.UserReaction != c.wantReaction {
				t.Fatalf("user reaction = %q, want %q", after.UserReaction, c.wantReaction)
			}
			for kind, want := range c.wantCounts {
				if after.Counts[kind] != want {
					t.Fatalf("counts[%s] = %d, want %d", kind, after.Counts[kind], want)
				}
			}
			for kind, count := range after.Counts {
				if count < 0 {
					t.Fatalf("counts[%s] = %d, must never be negative", kind, count)
				}
			}
		})
	}
}

func TestApplyToggleDoesNotMutateReceiver(t *testing.T) {
	before := ReactionSnapshot{UserReaction: ReactionLike, Counts: map[ReactionKind]int64{ReactionLike: 3}}
	before.ApplyToggle(ReactionLove)
	if before.UserReaction != ReactionLike || before.Counts[ReactionLike] != 3 {
		t.Fatalf("receiver mutated: %+v", before)
	}
}

// reactionStub serves the enhanced shape with server-side toggle semantics.
type reactionStub struct {
	counts       map[ReactionKind]int64
	userReaction ReactionKind
	requests     int
}

func (s *reactionStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.requests++

		var req struct {
			ReactionType ReactionKind `json:"reactionType"`
		}
		json.NewDecoder(r.Body).Decode(&req)

		if s.userReaction == req.ReactionType {
			s.counts[req.ReactionType]--
			if s.counts[req.ReactionType] == 0 {
				delete(s.counts, req.ReactionType)
			}
			s.userReaction = ReactionNone
		} else {
			if s.userReaction != ReactionNone {
				s.counts[s.userReaction]--
			}
			s.counts[req.ReactionType]++
			s.userReaction = req.ReactionType
		}

		resp := map[string]interface{}{"reactionCounts": s.counts}
		if s.userReaction != ReactionNone {
			resp["userReaction"] = s.userReaction
		} else {
			resp["userReaction"] = nil
		}
		json.NewEncoder(w).Encode(resp)
	}
}

func TestReactDoubleToggleRoundTrip(t *testing.T) {
	stub := &reactionStub{counts: map[ReactionKind]int64{ReactionLike: 3}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client := NewClient(srv.URL, WithAccessToken("token"))
	manager := NewReactionManager(client, 1, ReactionSnapshot{Counts: map[ReactionKind]int64{ReactionLike: 3}})

	ctx := context.Background()

	first, err := manager.React(ctx, ReactionLike)
	if err != nil {
		t.Fatalf("first react: %v", err)
	}
	if first.UserReaction != ReactionLike || first.Counts[ReactionLike] != 4 {
		t.Fatalf("after first react: reaction=%q counts=%v", first.UserReaction, first.Counts)
	}

	second, err := manager.React(ctx, ReactionLike)
	if err != nil {
		t.Fatalf("second react: %v", err)
	}
	if second.UserReaction != ReactionNone {
		t.Fatalf("after toggle off: reaction=%q, want none", second.UserReaction)
	}
	if second.Counts[ReactionLike] != 3 {
		t.Fatalf("after toggle off: counts[like]=%d, want 3", second.Counts[ReactionLike])
	}
}

func TestReactRollbackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	initial := ReactionSnapshot{UserReaction: ReactionLove, Counts: map[ReactionKind]int64{ReactionLove: 2, ReactionLike: 7}}
	client := NewClient(srv.URL, WithAccessToken("token"))
	manager := NewReactionManager(client, 1, initial)

	state, err := manager.React(context.Background(), ReactionLike)
	if err == nil {
		t.Fatal("expected error")
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) || reqErr.Kind != ErrorKindServer {
		t.Fatalf("expected server RequestError, got %v", err)
	}

	if state.UserReaction != initial.UserReaction {
		t.Fatalf("rollback reaction = %q, want %q", state.UserReaction, initial.UserReaction)
	}
	if len(state.Counts) != len(initial.Counts) {
		t.Fatalf("rollback counts = %v, want %v", state.Counts, initial.Counts)
	}
	for kind, want := range initial.Counts {
		if state.Counts[kind] != want {
			t.Fatalf("rollback counts[%s] = %d, want %d", kind, state.Counts[kind], want)
		}
	}
}

func TestReactUnauthenticatedShortCircuits(t *testing.T) {
	stub := &reactionStub{counts: map[ReactionKind]int64{}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client := NewClient(srv.URL)
	manager := NewReactionManager(client, 1, ReactionSnapshot{Counts: map[ReactionKind]int64{ReactionLike: 1}})

	_, err := manager.React(context.Background(), ReactionLike)
	if err != ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if stub.requests != 0 {
		t.Fatalf("expected no network call, got %d requests", stub.requests)
	}
	if state := manager.State(); state.Counts[ReactionLike] != 1 || state.UserReaction != ReactionNone {
		t.Fatalf("state mutated: %+v", state)
	}
}

func TestReactInvalidKind(t *testing.T) {
	client := NewClient("http://unused", WithAccessToken("token"))
	manager := NewReactionManager(client, 1, ReactionSnapshot{})

	_, err := manager.React(context.Background(), ReactionKind("yikes"))
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestReactServerWinsOverOptimisticGuess(t *testing.T) {
	// Server reports counts that include other users' concurrent reactions.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"reactionCounts": map[string]int64{"like": 10},
			"userReaction":   "like",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithAccessToken("token"))
	manager := NewReactionManager(client, 1, ReactionSnapshot{Counts: map[ReactionKind]int64{ReactionLike: 3}})

	state, err := manager.React(context.Background(), ReactionLike)
	if err != nil {
		t.Fatalf("react: %v", err)
	}
	if state.Counts[ReactionLike] != 10 {
		t.Fatalf("counts[like] = %d, want server value 10", state.Counts[ReactionLike])
	}
}

func TestReactLegacyLikeShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"liked": true, "likeCount": 4})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithAccessToken("token"))
	manager := NewReactionManager(client, 1, ReactionSnapshot{Counts: map[ReactionKind]int64{ReactionLike: 3}})

	state, err := manager.React(context.Background(), ReactionLike)
	if err != nil {
		t.Fatalf("react: %v", err)
	}
	if state.UserReaction != ReactionLike || state.Counts[ReactionLike] != 4 {
		t.Fatalf("legacy normalize: reaction=%q counts=%v", state.UserReaction, state.Counts)
	}
}
