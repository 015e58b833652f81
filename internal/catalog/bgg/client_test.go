package bgg

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const searchXML = `<?xml version="1.0" encoding="utf-8"?>
<items total="3">
	<item type="boardgame" id="13"><name type="primary" value="Catan"/></item>
	<item type="boardgameexpansion" id="926"><name type="primary" value="Catan: Seafarers"/></item>
	<item type="boardgame" id="266192"><name type="primary" value="Wingspan"/></item>
</items>`

const thingXML = `<?xml version="1.0" encoding="utf-8"?>
<items>
	<item type="boardgame" id="13">
		<name type="alternate" value="Die Siedler von Catan"/>
		<name type="primary" value="Catan"/>
		<yearpublished value="1995"/>
		<image>https://example.com/catan.jpg</image>
		<thumbnail>https://example.com/catan_t.jpg</thumbnail>
		<description>Trade and build.</description>
		<minplayers value="3"/>
		<maxplayers value="4"/>
		<playingtime value="120"/>
		<link type="boardgamedesigner" id="11" value="Klaus Teuber"/>
		<link type="boardgamepublisher" id="37" value="KOSMOS"/>
		<link type="boardgamecategory" id="1026" value="Negotiation"/>
		<statistics><ratings><averageweight value="2.2923"/></ratings></statistics>
	</item>
	<item type="boardgame" id="266192">
		<name type="primary" value="Wingspan"/>
		<yearpublished value="2019"/>
		<minplayers value="1"/>
		<maxplayers value="5"/>
		<playingtime value="70"/>
		<statistics><ratings><averageweight value="2.4486"/></ratings></statistics>
	</item>
</items>`

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("type") != "boardgame" {
			t.Errorf("expected type=boardgame, got %q", r.URL.Query().Get("type"))
		}
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(searchXML))
	})
	mux.HandleFunc("/thing", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") != "13,266192" {
			t.Errorf("expected expansion filtered from ids, got %q", r.URL.Query().Get("id"))
		}
		if r.URL.Query().Get("stats") != "1" {
			t.Errorf("expected stats=1, got %q", r.URL.Query().Get("stats"))
		}
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(thingXML))
	})
	return httptest.NewServer(mux)
}

func TestSearch(t *testing.T) {
	server := newCatalogServer(t)
	defer server.Close()

	client := NewClient(server.URL, time.Second, 5)
	games, err := client.Search(context.Background(), "catan")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}

	catan := games[0]
	if catan.Name != "Catan" {
		t.Fatalf("expected primary name, got %q", catan.Name)
	}
	if catan.YearPublished != "1995" {
		t.Fatalf("expected year 1995, got %q", catan.YearPublished)
	}
	if catan.Complexity != "2.3" {
		t.Fatalf("expected complexity rounded to 2.3, got %q", catan.Complexity)
	}
	if len(catan.Designers) != 1 || catan.Designers[0] != "Klaus Teuber" {
		t.Fatalf("expected designer from links, got %+v", catan.Designers)
	}
	if len(catan.Publishers) != 1 || catan.Publishers[0] != "KOSMOS" {
		t.Fatalf("expected publisher from links, got %+v", catan.Publishers)
	}
}

func TestSearchQueryRequired(t *testing.T) {
	client := NewClient("http://localhost:0", time.Second, 5)
	_, err := client.Search(context.Background(), "   ")
	if !errors.Is(err, ErrQueryRequired) {
		t.Fatalf("expected ErrQueryRequired, got %v", err)
	}
}

func TestSearchMaxResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search":
			_, _ = w.Write([]byte(searchXML))
		case "/thing":
			if r.URL.Query().Get("id") != "13" {
				t.Errorf("expected single id, got %q", r.URL.Query().Get("id"))
			}
			_, _ = w.Write([]byte(thingXML))
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, 1)
	if _, err := client.Search(context.Background(), "catan"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestSearchNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/thing" {
			t.Errorf("expected no thing request for empty search")
		}
		_, _ = w.Write([]byte(`<items total="0"></items>`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, 5)
	games, err := client.Search(context.Background(), "zzzz")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected empty result, got %d", len(games))
	}
}

func TestSearchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, 5)
	if _, err := client.Search(context.Background(), "catan"); err == nil {
		t.Fatalf("expected error on upstream failure")
	}
}
