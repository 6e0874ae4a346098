package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/stockroomhq/stockroom/internal/domain"
	"github.com/stockroomhq/stockroom/internal/repository"
)

// nextOrderNumber generates the next human-readable order number for the
// type, formatted "{PREFIX}-{5-digit sequence}". The sequence is the highest
// existing suffix for the prefix plus one, starting at 1. An unparsable
// suffix also restarts at 1. The read-then-insert pair is racy under
// concurrent writers; the unique index on order_number rejects the loser.
func nextOrderNumber(ctx context.Context, orders repository.OrderRepository, orderType domain.OrderType) (string, error) {
	prefix := orderType.NumberPrefix()

	last, err := orders.LastOrderNumber(ctx, prefix)
	if err != nil {
		return "", err
	}

	sequence := 1
	if last != "" {
		if n, err := strconv.Atoi(strings.TrimPrefix(last, prefix+"-")); err == nil {
			sequence = n + 1
		}
	}
	return fmt.Sprintf("%s-%05d", prefix, sequence), nil
}
