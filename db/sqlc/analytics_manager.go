package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

// RecordSetup bumps the run counter and adds the placements that
// were rejected in that run. Only counters are kept, never boards.
func (a *AnalyticsManager) RecordSetup(ctx context.Context, serverIpNet pqtype.Inet, rejectedPlacements int) error {
	if err := a.queries.IncrementSetupRunsCount(ctx, serverIpNet); err != nil {
		return err
	}

	if rejectedPlacements == 0 {
		return nil
	}

	return a.queries.AddRejectedPlacementsCount(ctx, AddRejectedPlacementsCountParams{
		ServerIp:           serverIpNet,
		RejectedPlacements: int64(rejectedPlacements),
	})
}

func (a *AnalyticsManager) GetSetupRunsCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetSetupRunsCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetRejectedPlacementsCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetRejectedPlacementsCount(ctx, serverIpNet)
}
