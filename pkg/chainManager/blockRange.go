package chainManager

import (
	"context"
	"fmt"
)

// GetLogsQueryStartHeight returns the block height delta blocks behind the
// current tip, clamped to zero. It is the first block of a retrospective log scan.
// Query failures are returned unchanged apart from wrapping.
func GetLogsQueryStartHeight(ctx context.Context, client BlockNumberReader, delta uint64) (uint64, error) {
	blockHeight, err := client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get block number: %w", err)
	}
	if delta >= blockHeight {
		return 0, nil
	}
	return blockHeight - delta, nil
}
