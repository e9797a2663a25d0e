package client

import "github.com/spetersoncode/oaikit/transport"

// Event represents an observable occurrence during a request.
type Event = transport.Event

// EventType identifies the kind of event.
type EventType = transport.EventType

const (
	EventRequestStart    = transport.EventRequestStart
	EventRequestComplete = transport.EventRequestComplete
	EventRequestError    = transport.EventRequestError
	EventRetry           = transport.EventRetry
)

// WithEvents sends request lifecycle events to ch. Events are sent
// non-blocking; if the channel is full, events are dropped.
//
//	events := make(chan client.Event, 100)
//	c, err := client.New(client.WithEvents(events))
//	go func() {
//	    for e := range events {
//	        log.Printf("%s %s %s", e.Type, e.Method, e.Path)
//	    }
//	}()
func WithEvents(ch chan<- Event) Option {
	return WithTransport(func(s *transport.Stack) { s.Events = ch })
}
