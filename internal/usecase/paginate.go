package usecase

import (
	"context"

	"github.com/jdguggs10/flaim-app/internal/domain/player"
	"github.com/jdguggs10/flaim-app/internal/platform/logging"
)

// pageFunc fetches one page of players at the given offset. A short or
// empty page signals the end of the pool.
type pageFunc func(ctx context.Context, offset, limit int) ([]player.Player, error)

// forEachPlayer streams players page by page until the pool runs dry,
// maxTotal players have been seen, or the visitor returns false. A page
// error ends the stream with whatever was already delivered; the
// partial result is still useful and the error is only logged.
func forEachPlayer(ctx context.Context, logger *logging.Logger, fetch pageFunc, batchSize, maxTotal int, visit func(player.Player) bool) {
	if batchSize <= 0 || maxTotal <= 0 {
		return
	}

	seen := 0
	offset := 0
	for seen < maxTotal {
		limit := batchSize
		if remaining := maxTotal - seen; remaining < limit {
			limit = remaining
		}

		batch, err := fetch(ctx, offset, limit)
		if err != nil {
			logger.WarnContext(ctx, "player page fetch failed, returning partial results",
				"offset", offset, "limit", limit, "error", err.Error())
			return
		}
		if len(batch) == 0 {
			return
		}

		for _, p := range batch {
			if !visit(p) {
				return
			}
			seen++
			if seen >= maxTotal {
				return
			}
		}

		// A short page means the vendor has nothing further.
		if len(batch) < limit {
			return
		}
		offset += len(batch)
	}
}
