package anilist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSearchAnimeReturnsBodyVerbatim(t *testing.T) {
	const upstream = `{"data":{"Media":{"id":1,"title":{"romaji":"Cowboy Bebop"},"episodes":26,"coverImage":{"large":"https://img.example/cb.png"},"status":"FINISHED"}}}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q, want application/json", ct)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(upstream))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	body, err := client.SearchAnime(context.Background(), "cowboy bebop")
	if err != nil {
		t.Fatalf("SearchAnime() unexpected error: %v", err)
	}
	if body != upstream {
		t.Errorf("SearchAnime() = %q, want upstream body verbatim", body)
	}
	if !json.Valid([]byte(body)) {
		t.Error("SearchAnime() returned invalid JSON")
	}
}

func TestSearchAnimeUsesVariables(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		// The search term travels as a variable, never inside the query text.
		if req.Variables["search"] != `evil " input` {
			t.Errorf("search variable = %q", req.Variables["search"])
		}
		if strings.Contains(req.Query, "evil") {
			t.Error("search term was interpolated into the query text")
		}
		if !strings.Contains(req.Query, "Media(search: $search, type: ANIME)") {
			t.Errorf("unexpected query shape: %q", req.Query)
		}
		w.Write([]byte(`{"data":null}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	if _, err := client.SearchAnime(context.Background(), `evil " input`); err != nil {
		t.Fatalf("SearchAnime() unexpected error: %v", err)
	}
}

func TestSearchAnimeUpstreamErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.SearchAnime(context.Background(), "bebop")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("SearchAnime() error = %v, want ErrUpstream", err)
	}
}

func TestSearchAnimeConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := NewClient(srv.URL, time.Second)
	_, err := client.SearchAnime(context.Background(), "bebop")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("SearchAnime() error = %v, want ErrUpstream", err)
	}
}
