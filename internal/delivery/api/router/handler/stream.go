package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/snapshot"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// heartbeatInterval keeps idle proxies from closing the stream.
const heartbeatInterval = 15 * time.Second

// streamSnapshots writes every snapshot of it as a server-sent event until
// the client disconnects or the query fails. The subscription is released
// before returning.
func streamSnapshots[T any](c echo.Context, it snapshot.Iterator[T], logger *slog.Logger) error {
	ctx := c.Request().Context()
	logger = deliverycontext.GetLoggerOrDefault(ctx, logger)

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	snapshots := make(chan []T)
	failures := make(chan error, 1)
	done := make(chan struct{})

	unsubscribe := snapshot.Subscribe(ctx, it, func(items []T) {
		select {
		case snapshots <- items:
		case <-done:
		}
	}, func(err error) {
		failures <- err
	})
	defer unsubscribe()
	defer close(done)

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case items := <-snapshots:
			if items == nil {
				items = []T{}
			}
			if err := writeEvent(res, "snapshot", items); err != nil {
				return nil
			}
		case err := <-failures:
			logger.Warn("Live query failed", slog.Any("error", err))
			_ = writeEvent(res, "error", map[string]string{"message": "live query failed"})

			return nil
		case <-heartbeat.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

func writeEvent(res *echo.Response, name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", name, data); err != nil {
		return errors.WithStack(err)
	}
	res.Flush()

	return nil
}
