package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jdguggs10/flaim-app/internal/domain/activity"
	"github.com/jdguggs10/flaim-app/internal/domain/league"
	"github.com/jdguggs10/flaim-app/internal/platform/logging"
)

func rawAction(team *league.TeamRef, action, playerName string) activity.ActionTuple {
	return activity.ActionTuple{Team: team, Action: action, PlayerName: playerName}
}

func testActivityFeed() []activity.RawActivity {
	alpha := &league.TeamRef{ID: 1, Name: "Alpha Sluggers"}
	beta := &league.TeamRef{ID: 2, Name: "Beta Bashers"}
	return []activity.RawActivity{
		{Date: 1700000060000, Actions: []activity.ActionTuple{rawAction(alpha, "FA ADDED", "Jane Doe")}},
		{Date: 1700000050000, Actions: []activity.ActionTuple{rawAction(beta, "WAIVER ADDED", "Rich Reliever")}},
		{Date: 1700000040000, Actions: []activity.ActionTuple{rawAction(alpha, "DROPPED", "John Roe")}},
		{Date: 1700000030000, Actions: []activity.ActionTuple{
			rawAction(beta, "FA ADDED", "Newt Arrival"),
			rawAction(beta, "DROPPED", "Olt Timer"),
		}},
		{Date: 1700000020000, Actions: []activity.ActionTuple{rawAction(alpha, "TRADED", "Star Pitcher")}},
		{Date: 1700000010000, Actions: []activity.ActionTuple{rawAction(beta, "KEEPER", "Young Gun")}},
	}
}

func newTestActivityService(gw *stubGateway) *ActivityService {
	leagues, _ := newTestLeagueService(gw, time.Minute)
	return NewActivityService(gw, leagues, 0, logging.NewNop())
}

// TestActivityConfiguredPageSize pins that the constructor's page size
// replaces the package default for unbounded calls.
func TestActivityConfiguredPageSize(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{snapshot: testLeagueSnapshot(), raws: testActivityFeed()}
	leagues, _ := newTestLeagueService(gw, time.Minute)
	svc := NewActivityService(gw, leagues, 2, logging.NewNop())

	records, err := svc.Recent(context.Background(), 1234, 2025, "", 0, 0, "")
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected configured page size of 2 records, got %d", len(records))
	}
}

func TestRecentClassifiesFeed(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{snapshot: testLeagueSnapshot(), raws: testActivityFeed()}
	svc := newTestActivityService(gw)

	records, err := svc.Recent(context.Background(), 1234, 2025, "", 10, 0, "")
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("expected 6 records, got %d", len(records))
	}
	if records[0].Kind != activity.KindAdd || records[0].AddedPlayer == nil || records[0].AddedPlayer.Name != "Jane Doe" {
		t.Fatalf("unexpected first record %+v", records[0])
	}
	if records[3].Kind != activity.KindRosterMove {
		t.Fatalf("add+drop should classify as roster move, got %s", records[3].Kind)
	}
	if records[5].Kind != activity.KindKeeperSelect {
		t.Fatalf("expected keeper record, got %s", records[5].Kind)
	}
}

func TestRecentPagination(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{snapshot: testLeagueSnapshot(), raws: testActivityFeed()}
	svc := newTestActivityService(gw)

	records, err := svc.Recent(context.Background(), 1234, 2025, "", 2, 1, "")
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].AddedPlayer == nil || records[0].AddedPlayer.Name != "Rich Reliever" {
		t.Fatalf("offset skipped the wrong record: %+v", records[0])
	}

	if got := gw.activitySizes[0]; got != 53 {
		t.Fatalf("expected fetch size limit+offset+50 = 53, got %d", got)
	}

	records, err = svc.Recent(context.Background(), 1234, 2025, "", 5, 100, "")
	if err != nil {
		t.Fatalf("recent past end: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("offset past feed should be empty, got %d", len(records))
	}
}

func TestRecentFilteredByKind(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{snapshot: testLeagueSnapshot(), raws: testActivityFeed()}
	svc := newTestActivityService(gw)

	records, err := svc.Recent(context.Background(), 1234, 2025, "", 10, 0, activity.KindAdd)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 ADD records, got %d", len(records))
	}
	for _, r := range records {
		if r.Kind != activity.KindAdd {
			t.Fatalf("unexpected kind %s", r.Kind)
		}
	}
}

func TestWaiversView(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{snapshot: testLeagueSnapshot(), raws: testActivityFeed()}
	svc := newTestActivityService(gw)

	records, err := svc.Waivers(context.Background(), 1234, 2025, "", 10)
	if err != nil {
		t.Fatalf("waivers: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 waiver record, got %d", len(records))
	}
	if records[0].Source != activity.SourceWaivers {
		t.Fatalf("unexpected source %q", records[0].Source)
	}
}

func TestTradesView(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{snapshot: testLeagueSnapshot(), raws: testActivityFeed()}
	svc := newTestActivityService(gw)

	records, err := svc.Trades(context.Background(), 1234, 2025, "", 10)
	if err != nil {
		t.Fatalf("trades: %v", err)
	}
	if len(records) != 1 || records[0].Kind != activity.KindTradeAccepted {
		t.Fatalf("unexpected trade records %+v", records)
	}
}

func TestTeamTransactions(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{snapshot: testLeagueSnapshot(), raws: testActivityFeed()}
	svc := newTestActivityService(gw)

	records, err := svc.TeamTransactions(context.Background(), 1234, 2025, 2, "", 10)
	if err != nil {
		t.Fatalf("team transactions: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records for team 2, got %d", len(records))
	}
	for _, r := range records {
		if r.Team == nil || r.Team.ID != 2 {
			t.Fatalf("record for wrong team: %+v", r)
		}
	}

	if _, err := svc.TeamTransactions(context.Background(), 1234, 2025, 0, "", 10); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerHistory(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{snapshot: testLeagueSnapshot(), raws: testActivityFeed()}
	svc := newTestActivityService(gw)

	records, err := svc.PlayerHistory(context.Background(), 1234, 2025, "", "jane doe", 10)
	if err != nil {
		t.Fatalf("player history: %v", err)
	}
	if len(records) != 1 || records[0].AddedPlayer == nil || records[0].AddedPlayer.Name != "Jane Doe" {
		t.Fatalf("unexpected history %+v", records)
	}

	if _, err := svc.PlayerHistory(context.Background(), 1234, 2025, "", "", 10); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
