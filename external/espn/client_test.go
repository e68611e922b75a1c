package espn

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/jdguggs10/flaim-app/internal/domain/league"
	"github.com/jdguggs10/flaim-app/internal/domain/player"
	"github.com/jdguggs10/flaim-app/internal/domain/session"
	"github.com/jdguggs10/flaim-app/internal/platform/logging"
	"github.com/jdguggs10/flaim-app/internal/usecase"
)

const leaguePayload = `{
	"id": 1234,
	"seasonId": 2025,
	"settings": {"name": "Wire League", "scoringSettings": {"scoringType": "ROTO"}},
	"status": {"currentMatchupPeriod": 5},
	"teams": [{"id": 1, "name": "Team One", "abbrev": "ONE"}]
}`

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(ClientConfig{
		BaseURL: srv.URL,
		Logger:  logging.NewNop(),
	})
	return client, srv
}

func TestFetchLeague(t *testing.T) {
	var gotPath, gotCookies string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCookies = r.Header.Get("Cookie")
		if got := r.URL.Query()["view"]; len(got) != len(leagueViews) {
			t.Errorf("views = %v, want %v", got, leagueViews)
		}
		_, _ = w.Write([]byte(leaguePayload))
	}))

	creds := session.Credentials{ESPNS2: "secret-s2", SWID: "{SWID}"}
	snap, err := client.FetchLeague(context.Background(), 1234, 2025, creds)
	if err != nil {
		t.Fatalf("FetchLeague: %v", err)
	}

	if gotPath != "/seasons/2025/segments/0/leagues/1234" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotCookies == "" {
		t.Fatal("credential cookies were not sent")
	}
	if snap.League.Name != "Wire League" || snap.League.ScoringType != "ROTO" {
		t.Fatalf("league = %+v", snap.League)
	}
	if len(snap.League.Teams) != 1 || snap.League.Teams[0].Abbrev != "ONE" {
		t.Fatalf("teams = %+v", snap.League.Teams)
	}
}

func TestFetchLeagueHistoryFallback(t *testing.T) {
	var historyHits atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/leagueHistory/1234" {
			historyHits.Add(1)
			if got := r.URL.Query().Get("seasonId"); got != "2019" {
				t.Errorf("seasonId = %q, want 2019", got)
			}
			_, _ = w.Write([]byte("[" + leaguePayload + "]"))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))

	snap, err := client.FetchLeague(context.Background(), 1234, 2019, session.Credentials{})
	if err != nil {
		t.Fatalf("FetchLeague with fallback: %v", err)
	}
	if historyHits.Load() != 1 {
		t.Fatalf("history endpoint hits = %d, want 1", historyHits.Load())
	}
	if snap.League.Name != "Wire League" {
		t.Fatalf("league = %+v", snap.League)
	}
}

func TestFetchLeaguePrivateLeagueError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.FetchLeague(context.Background(), 1234, 2025, session.Credentials{})
	if !errors.Is(err, usecase.ErrUpstreamAccess) {
		t.Fatalf("err = %v, want ErrUpstreamAccess", err)
	}
}

func TestFetchLeagueNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.FetchLeague(context.Background(), 1234, 2025, session.Credentials{})
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestFetchPlayersSendsFantasyFilter(t *testing.T) {
	var gotFilter string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFilter = r.Header.Get(fantasyFilterHeader)
		_, _ = w.Write([]byte(`{"players": [
			{"player": {"id": 11, "fullName": "Frank Freeagent", "proTeamId": 2, "eligibleSlots": [1, 9]}},
			{"player": null}
		]}`))
	}))

	players, err := client.FetchPlayers(context.Background(), 1234, 2025, session.Credentials{}, usecase.PlayerPageFilter{
		Limit:   200,
		Offset:  400,
		SlotIDs: []int{4},
	})
	if err != nil {
		t.Fatalf("FetchPlayers: %v", err)
	}

	if gotFilter == "" {
		t.Fatal("fantasy filter header missing")
	}
	for _, fragment := range []string{`"FREEAGENT"`, `"WAIVERS"`, `"limit":200`, `"offset":400`, `"filterSlotIds"`} {
		if !strings.Contains(gotFilter, fragment) {
			t.Fatalf("filter %q missing fragment %q", gotFilter, fragment)
		}
	}

	if len(players) != 1 || players[0].Name != "Frank Freeagent" || players[0].ProTeam != "Bos" {
		t.Fatalf("players = %+v", players)
	}
}

func TestFetchActivity(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("view"); got != "kona_league_communication" {
			t.Errorf("view = %q", got)
		}
		if r.Header.Get(fantasyFilterHeader) == "" {
			t.Error("activity filter header missing")
		}
		_, _ = w.Write([]byte(`{"topics": [
			{"date": 1717000000000, "messages": [{"messageTypeId": 178, "targetId": 55, "to": 1}]}
		]}`))
	}))

	snap := usecase.LeagueSnapshot{League: &league.League{
		ID:   1234,
		Year: 2025,
		Teams: []league.Team{
			{
				ID:   1,
				Name: "Team One",
				Roster: []league.RosterEntry{
					{Player: player.Player{ID: 55, Name: "Andy Addition"}},
				},
			},
		},
	}}

	raws, err := client.FetchActivity(context.Background(), snap, session.Credentials{}, 25)
	if err != nil {
		t.Fatalf("FetchActivity: %v", err)
	}
	if len(raws) != 1 || len(raws[0].Actions) != 1 {
		t.Fatalf("raws = %+v", raws)
	}
	if raws[0].Actions[0].Action != "FA ADDED" || raws[0].Actions[0].PlayerName != "Andy Addition" {
		t.Fatalf("action = %+v", raws[0].Actions[0])
	}
}

func TestDoJSONRetriesTransientStatus(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(leaguePayload))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		BaseURL:    srv.URL,
		MaxRetries: 1,
		Logger:     logging.NewNop(),
	})

	if _, err := client.FetchLeague(context.Background(), 1234, 2025, session.Credentials{}); err != nil {
		t.Fatalf("FetchLeague after retry: %v", err)
	}
	if hits.Load() != 2 {
		t.Fatalf("request hits = %d, want 2", hits.Load())
	}
}
