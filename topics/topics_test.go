package topics

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/vartanbeno/go-reddit/v2/reddit"
)

const dealsListing = `{
	"kind": "Listing",
	"data": {
		"after": "",
		"children": [
			{"kind": "t3", "data": {"id": "p1", "title": "robot vacuum deal"}},
			{"kind": "t3", "data": {"id": "p2", "title": ""}},
			{"kind": "t3", "data": {"id": "p3", "title": "air fryer sale"}}
		]
	}
}`

func TestFetchFiltersEmptyTitles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(dealsListing))
	}))
	defer srv.Close()

	feed, err := NewFeed(reddit.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewFeed() error: %v", err)
	}

	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	items := feed.Fetch(context.Background(), []string{"deals"}, 10)
	if len(items) != 2 {
		t.Fatalf("Fetch() = %d items, want 2 (empty titles filtered)", len(items))
	}
	if items[0].Name != "p1" || items[0].Topic != "robot vacuum deal" {
		t.Errorf("items[0] = %+v", items[0])
	}
	if items[1].Name != "p3" || items[1].Topic != "air fryer sale" {
		t.Errorf("items[1] = %+v", items[1])
	}
	// the log reports appended items, not raw posts
	if !strings.Contains(logs.String(), "r/deals: 2 topics") {
		t.Errorf("log reported wrong count: %q", logs.String())
	}
}

func TestFetchSkipsFailingSubreddit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "broken") {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(dealsListing))
	}))
	defer srv.Close()

	feed, err := NewFeed(reddit.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewFeed() error: %v", err)
	}

	items := feed.Fetch(context.Background(), []string{"broken", "deals"}, 10)
	if len(items) != 2 {
		t.Fatalf("Fetch() = %d items, want 2 from the healthy subreddit", len(items))
	}
}
