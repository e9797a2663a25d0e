package transport

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/openai/openai-go/packages/ssestream"
)

// StreamEvent is one server-sent event of a streaming response.
type StreamEvent struct {
	Type string
	Data []byte
}

// StreamFunc receives streamed events in order. Returning an error stops
// the stream and fails the request with that error.
type StreamFunc func(event StreamEvent) error

// StreamError is a stream failure that retrying would make visible to the
// StreamFunc twice: the stream broke after events were delivered, or the
// StreamFunc itself failed. Requests failing this way are not retried.
type StreamError struct {
	// Delivered is the number of events handed to the StreamFunc.
	Delivered int
	Err       error
}

func (e *StreamError) Error() string { return e.Err.Error() }

func (e *StreamError) Unwrap() error { return e.Err }

// doneMarker terminates a stream.
var doneMarker = []byte("[DONE]")

func decodeStream(resp *http.Response, fn StreamFunc) error {
	dec := ssestream.NewDecoder(resp)
	if dec == nil {
		return nil
	}
	defer dec.Close()

	delivered := 0
	for dec.Next() {
		ev := dec.Event()
		data := bytes.TrimSpace(ev.Data)
		if len(data) == 0 {
			continue
		}
		if bytes.HasPrefix(data, doneMarker) {
			return nil
		}
		if err := fn(StreamEvent{Type: ev.Type, Data: data}); err != nil {
			return &StreamError{Delivered: delivered, Err: err}
		}
		delivered++
	}
	if err := dec.Err(); err != nil {
		err = fmt.Errorf("read stream: %w", err)
		if delivered > 0 {
			return &StreamError{Delivered: delivered, Err: err}
		}
		return err
	}
	return nil
}
