package retry

import (
	"context"
	"errors"
	"io"
	"net"
	"syscall"

	"github.com/spetersoncode/oaikit"
)

// IsTransient reports whether a failed request is worth sending again.
//
// Responses are judged by their category (429 and 5xx are transient).
// Without a response, a failure is transient when the connection could
// not be made, timed out, or was dropped mid-exchange. A per-attempt
// timeout counts as transient; cancellation never does.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	var ce oaikit.CategorizedError
	if errors.As(err, &ce) {
		return ce.Category() == oaikit.ErrorTransient
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return isConnectionFailure(err)
}

func isConnectionFailure(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsTemporary || dnsErr.IsTimeout
	}

	switch {
	case errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ETIMEDOUT),
		errors.Is(err, syscall.EPIPE):
		return true
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		// The server closed the connection before a full response.
		return true
	}
	return false
}
