package feedsync

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// trailStub holds the authoritative ordered trail list and assigns order
// numbers on append.
type trailStub struct {
	trails []TrailEntry
	gets   int
	posts  int
	fail   bool
}

func (s *trailStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		switch r.Method {
		case http.MethodGet:
			s.gets++
			json.NewEncoder(w).Encode(map[string]interface{}{"trails": s.trails})
		case http.MethodPost:
			s.posts++
			var req struct {
				Content string `json:"content"`
			}
			json.NewDecoder(r.Body).Decode(&req)

			var maxOrder int64
			for _, entry := range s.trails {
				if entry.Trail.Order > maxOrder {
					maxOrder = entry.Trail.Order
				}
			}
			trail := Trail{ID: int64(len(s.trails) + 1), PostID: 1, Content: req.Content, Order: maxOrder + 1}
			s.trails = append(s.trails, TrailEntry{Trail: trail})
			json.NewEncoder(w).Encode(map[string]interface{}{"trail": trail})
		}
	}
}

func TestTrailPanelStateMachine(t *testing.T) {
	stub := &trailStub{trails: []TrailEntry{{Trail: Trail{ID: 1, Order: 1, Content: "first"}}}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client := NewClient(srv.URL, WithAccessToken("token"))
	manager := NewTrailManager(client, 1)

	if manager.State() != PanelCollapsed {
		t.Fatalf("initial state = %s, want collapsed", manager.State())
	}

	trails, err := manager.Expand(context.Background())
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if manager.State() != PanelExpanded {
		t.Fatalf("state after expand = %s, want expanded", manager.State())
	}
	if len(trails) != 1 || trails[0].Trail.Content != "first" {
		t.Fatalf("unexpected trails: %+v", trails)
	}

	// Second expand answers from cache.
	if _, err := manager.Expand(context.Background()); err != nil {
		t.Fatalf("second expand: %v", err)
	}
	if stub.gets != 1 {
		t.Fatalf("expected 1 fetch, got %d", stub.gets)
	}
}

func TestTrailExpandFailureReturnsToCollapsed(t *testing.T) {
	stub := &trailStub{fail: true}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client := NewClient(srv.URL, WithAccessToken("token"))
	manager := NewTrailManager(client, 1)

	if _, err := manager.Expand(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if manager.State() != PanelCollapsed {
		t.Fatalf("state after failed expand = %s, want collapsed", manager.State())
	}

	// A later expand retries and succeeds.
	stub.fail = false
	if _, err := manager.Expand(context.Background()); err != nil {
		t.Fatalf("retry expand: %v", err)
	}
	if manager.State() != PanelExpanded {
		t.Fatalf("state after retry = %s, want expanded", manager.State())
	}
}

func TestTrailAppendReloadsAuthoritativeOrder(t *testing.T) {
	stub := &trailStub{trails: []TrailEntry{{Trail: Trail{ID: 1, Order: 3, Content: "old"}}}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client := NewClient(srv.URL, WithAccessToken("token"))
	manager := NewTrailManager(client, 1)

	if _, err := manager.Expand(context.Background()); err != nil {
		t.Fatalf("expand: %v", err)
	}

	created, err := manager.Append(context.Background(), "hello", nil)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if created.Order <= 3 {
		t.Fatalf("new trail order = %d, want > 3", created.Order)
	}
	if stub.posts != 1 || stub.gets != 2 {
		t.Fatalf("expected append to trigger reload, got %d posts %d gets", stub.posts, stub.gets)
	}

	trails := manager.Trails()
	if len(trails) != 2 || trails[1].Trail.Order != created.Order {
		t.Fatalf("local list out of sync: %+v", trails)
	}
}

func TestTrailAppendEmptyContentNoNetworkCall(t *testing.T) {
	stub := &trailStub{}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client := NewClient(srv.URL, WithAccessToken("token"))
	manager := NewTrailManager(client, 1)

	_, err := manager.Append(context.Background(), "   ", nil)
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if stub.posts != 0 || stub.gets != 0 {
		t.Fatalf("expected no network calls, got %d posts %d gets", stub.posts, stub.gets)
	}
}

func TestTrailAppendFailureLeavesListUntouched(t *testing.T) {
	stub := &trailStub{trails: []TrailEntry{{Trail: Trail{ID: 1, Order: 1, Content: "only"}}}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client := NewClient(srv.URL, WithAccessToken("token"))
	manager := NewTrailManager(client, 1)

	if _, err := manager.Expand(context.Background()); err != nil {
		t.Fatalf("expand: %v", err)
	}

	stub.fail = true
	if _, err := manager.Append(context.Background(), "hello", nil); err == nil {
		t.Fatal("expected error")
	}

	trails := manager.Trails()
	if len(trails) != 1 || trails[0].Trail.Content != "only" {
		t.Fatalf("list mutated after failed append: %+v", trails)
	}
}
