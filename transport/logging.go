package transport

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spetersoncode/oaikit"
)

// ErrorLogMessage is the message of every error log line.
const ErrorLogMessage = "OpenAI HTTP Error (spotted in oaikit " + oaikit.Version + ")"

// ErrorLogging returns an Interceptor that logs the body of error responses
// the service answered with a JSON object. The error is returned unchanged.
// Errors without a structured body, such as connection failures, pass
// through without a log line.
func ErrorLogging(logger *slog.Logger) Interceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Handler) Handler {
		return func(ctx context.Context, req *Request) (*oaikit.Response, error) {
			resp, err := next(ctx, req)
			if err == nil {
				return resp, nil
			}

			var apiErr *oaikit.APIError
			if !errors.As(err, &apiErr) || !apiErr.Structured() {
				return resp, err
			}

			logger.ErrorContext(ctx, ErrorLogMessage,
				"method", req.Method,
				"path", req.Path,
				"status", apiErr.Code,
				"body", apiErr.Body,
			)
			return resp, err
		}
	}
}
