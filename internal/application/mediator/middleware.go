package mediator

import (
	"context"
	"fmt"
	"time"

	"github.com/kibahcorps/schedule1-go/internal/application/logging"
)

// LoggingMiddleware logs every dispatched request with its duration and outcome
func LoggingMiddleware() Middleware {
	return func(ctx context.Context, request Request, next HandlerFunc) (Response, error) {
		logger := logging.LoggerFromContext(ctx)
		started := time.Now()

		response, err := next(ctx, request)

		metadata := map[string]interface{}{
			"request":     fmt.Sprintf("%T", request),
			"duration_ms": time.Since(started).Milliseconds(),
		}
		if err != nil {
			metadata["error"] = err.Error()
			logger.Log(logging.LevelWarn, "request failed", metadata)
			return nil, err
		}
		logger.Log(logging.LevelDebug, "request handled", metadata)
		return response, nil
	}
}

// ContextLoggerMiddleware attaches logger to requests whose context has none,
// so transports that build their own contexts still get request logs
func ContextLoggerMiddleware(logger logging.Logger) Middleware {
	return func(ctx context.Context, request Request, next HandlerFunc) (Response, error) {
		if logger != nil && !logging.HasLogger(ctx) {
			ctx = logging.WithLogger(ctx, logger)
		}
		return next(ctx, request)
	}
}
