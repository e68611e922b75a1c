package activity

import (
	"context"
	"fmt"
	"strings"

	"github.com/jdguggs10/flaim-app/internal/platform/logging"
)

// Classifier turns raw vendor activities into normalized records.
type Classifier struct {
	logger *logging.Logger
}

func NewClassifier(logger *logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Classifier{logger: logger}
}

// Classify builds one Record from one vendor activity. It never fails:
// a malformed activity produces a diagnostic record so one bad entry
// cannot block the rest of the feed.
func (c *Classifier) Classify(ctx context.Context, raw RawActivity) (rec Record) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.ErrorContext(ctx, "activity classification panicked", "panic", fmt.Sprint(r), "raw_timestamp", raw.Date)
			rec = Record{
				Kind:         KindProcessingError,
				Date:         ConvertTimestamp(raw.Date),
				RawTimestamp: raw.Date,
				Error:        fmt.Sprintf("failed to process activity: %v", r),
			}
		}
	}()

	rec = Record{
		Kind:         KindUnknown,
		Date:         ConvertTimestamp(raw.Date),
		RawTimestamp: raw.Date,
	}

	for i, tuple := range raw.Actions {
		if tuple.Action == "" && tuple.PlayerName == "" && tuple.Team == nil {
			c.logger.WarnContext(ctx, "skipping malformed action tuple", "index", i, "raw_timestamp", raw.Date)
			continue
		}

		// First tuple with a team wins; later tuples never overwrite it.
		if rec.Team == nil && tuple.Team != nil {
			ref := *tuple.Team
			rec.Team = &ref
		}

		kind, ok := MapAction(tuple.Action)
		if !ok {
			c.logger.WarnContext(ctx, "unknown action string", "action", tuple.Action, "index", i)
			continue
		}

		if rec.Kind == KindUnknown {
			rec.Kind = kind
		}

		switch kind {
		case KindAdd:
			if rec.AddedPlayer == nil {
				rec.AddedPlayer = &PlayerRef{Name: tuple.PlayerName}
				rec.Source = addSource(tuple.Action)
			}
		case KindDrop:
			if rec.DroppedPlayer == nil {
				rec.DroppedPlayer = &PlayerRef{Name: tuple.PlayerName}
			}
		case KindTradeAccepted:
			rec.PlayersIn = append(rec.PlayersIn, PlayerRef{Name: tuple.PlayerName})
		}
	}

	// An add and a drop in one activity is a roster move.
	if rec.AddedPlayer != nil && rec.DroppedPlayer != nil && (rec.Kind == KindAdd || rec.Kind == KindDrop) {
		rec.Kind = KindRosterMove
	}

	return rec
}

func addSource(action string) Source {
	switch {
	case strings.Contains(action, "FA"):
		return SourceFreeAgent
	case strings.Contains(action, "WAIVER"):
		return SourceWaivers
	default:
		return ""
	}
}
