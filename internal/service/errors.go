package service

import (
	"context"
	"strconv"
	"strings"

	"recipeapp/internal/domain"
	applog "recipeapp/internal/log"
)

// fail classifies err for the caller and logs it. Domain failures are
// expected outcomes and only logged at debug.
func fail(ctx context.Context, op string, err error, args ...any) error {
	err = domain.Unexpected(op, err)
	args = append(args, "error", err)
	if domain.KindOf(err) == domain.KindUnexpected {
		applog.Error(ctx, op+" failed", args...)
	} else {
		applog.Debug(ctx, op+" rejected", append(args, "kind", string(domain.KindOf(err)))...)
	}
	return err
}

func joinIDs(ids []uint) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatUint(uint64(id), 10))
	}
	return strings.Join(parts, ", ")
}
