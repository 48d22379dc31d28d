package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/flockhq/flock/pkg/prefs"
	prefsfile "github.com/flockhq/flock/pkg/prefs/file"
	prefsredis "github.com/flockhq/flock/pkg/prefs/redis"
)

// NewPrefsStore picks the preference backend from the URL scheme. Bare
// paths and file:// URLs get the file backend.
func NewPrefsStore(ctx context.Context, logger *slog.Logger, url string) (prefs.Store, error) {
	if strings.HasPrefix(url, "redis://") || strings.HasPrefix(url, "rediss://") {
		store, err := prefsredis.NewStore(ctx, url, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis preference store: %w", err)
		}

		return store, nil
	}

	return prefsfile.NewStore(url, logger), nil
}
