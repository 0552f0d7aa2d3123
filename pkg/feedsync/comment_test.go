package feedsync

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type commentStub struct {
	comments []CommentEntry
	gets     int
	posts    int
	fail     bool
}

func (s *commentStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		switch r.Method {
		case http.MethodGet:
			s.gets++
			json.NewEncoder(w).Encode(map[string]interface{}{"comments": s.comments})
		case http.MethodPost:
			s.posts++
			var req struct {
				Content string `json:"content"`
			}
			json.NewDecoder(r.Body).Decode(&req)

			comment := Comment{ID: int64(len(s.comments) + 1), PostID: 1, Content: req.Content}
			s.comments = append(s.comments, CommentEntry{Comment: comment})
			json.NewEncoder(w).Encode(map[string]interface{}{"comment": comment})
		}
	}
}

func TestCommentLoadReplacesList(t *testing.T) {
	stub := &commentStub{comments: []CommentEntry{{Comment: Comment{ID: 1, Content: "hi"}}}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client := NewClient(srv.URL, WithAccessToken("token"))
	manager := NewCommentManager(client, 1)

	if manager.Loaded() {
		t.Fatal("manager must start unloaded")
	}

	comments, err := manager.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !manager.Loaded() || len(comments) != 1 {
		t.Fatalf("load result: loaded=%v comments=%+v", manager.Loaded(), comments)
	}

	// The server list changed; a reload replaces wholesale.
	stub.comments = append(stub.comments, CommentEntry{Comment: Comment{ID: 2, Content: "again"}})
	comments, err = manager.Load(context.Background())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("reload did not replace list: %+v", comments)
	}
}

func TestCommentAppendServerFirst(t *testing.T) {
	stub := &commentStub{}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client := NewClient(srv.URL, WithAccessToken("token"))
	manager := NewCommentManager(client, 1)

	created, err := manager.Append(context.Background(), "hello")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if created.Content != "hello" {
		t.Fatalf("created comment: %+v", created)
	}

	comments := manager.Comments()
	if len(comments) != 1 || comments[0].Comment.ID != created.ID {
		t.Fatalf("local list after append: %+v", comments)
	}
	if stub.gets != 0 {
		t.Fatalf("comment append must not reload, got %d gets", stub.gets)
	}
}

func TestCommentAppendFailureLeavesListUnchanged(t *testing.T) {
	stub := &commentStub{comments: []CommentEntry{{Comment: Comment{ID: 1, Content: "kept"}}}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client := NewClient(srv.URL, WithAccessToken("token"))
	manager := NewCommentManager(client, 1)

	if _, err := manager.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	stub.fail = true
	if _, err := manager.Append(context.Background(), "lost"); err == nil {
		t.Fatal("expected error")
	}

	comments := manager.Comments()
	if len(comments) != 1 || comments[0].Comment.Content != "kept" {
		t.Fatalf("list mutated after failed append: %+v", comments)
	}
}

func TestCommentAppendValidation(t *testing.T) {
	stub := &commentStub{}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client := NewClient(srv.URL, WithAccessToken("token"))
	manager := NewCommentManager(client, 1)

	cases := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t"},
		{"over max length", strings.Repeat("x", MaxCommentLength+1)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := manager.Append(context.Background(), c.content)
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}

	if stub.posts != 0 {
		t.Fatalf("expected no network calls, got %d posts", stub.posts)
	}
}

func TestCommentAppendUnauthenticated(t *testing.T) {
	stub := &commentStub{}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	client := NewClient(srv.URL)
	manager := NewCommentManager(client, 1)

	if _, err := manager.Append(context.Background(), "hello"); err != ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if stub.posts != 0 {
		t.Fatalf("expected no network calls, got %d posts", stub.posts)
	}
}
