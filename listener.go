// Copyright 2024 The http1dec Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package http1dec

// Listener receives the events produced while decoding a single request.
// Every byte slice passed to a Listener method borrows from the caller's
// Feed input and must not be retained past the call (spec invariant 1).
//
// A Listener may request that decoding stop by returning true from Stop
// the next time it is checked (after each decoding step that neither
// completes nor fails); the decoder then transitions to its Error step and
// Feed returns IllFormed.
type Listener interface {
	OnEvent(event EventKind)
	OnCompleteText(token TokenKind, text []byte)
	OnPartialText(token PartialTokenKind, position Position, text []byte)
	OnEnd()
	OnError(msg string)

	// Stop is checked after every OnEvent, OnCompleteText and OnPartialText
	// callback, and after steps that make no callback; it is not checked
	// after OnEnd or OnError. Returning true aborts
	// decoding; the decoder does not call OnError for this case (spec §7,
	// "Listener-initiated abort").
	Stop() bool
}

// NopListener is a Listener that observes nothing and never stops decoding.
// Attaching it is equivalent to attaching no listener, except that it
// satisfies code that assumes a non-nil Listener is always present.
type NopListener struct{}

func (NopListener) OnEvent(EventKind)                                {}
func (NopListener) OnCompleteText(TokenKind, []byte)                 {}
func (NopListener) OnPartialText(PartialTokenKind, Position, []byte) {}
func (NopListener) OnEnd()                                           {}
func (NopListener) OnError(string)                                   {}
func (NopListener) Stop() bool                                       { return false }

// CollectingListener accumulates every token — complete or delivered in
// partial-text pieces — into whole []byte values, and records the event and
// error sequence. It is grounded on the original decoder's test-tool
// "collapsing" listener, which exists to make assertions about decoded
// values independent of how the input happened to be chunked.
//
// Collected token byte slices are owned copies: CollectingListener appends
// into its own buffers, so the values it exposes remain valid after Feed
// returns (unlike the borrowed slices passed to OnCompleteText/OnPartialText
// themselves).
type CollectingListener struct {
	Events []EventKind
	Errors []string
	Ended  bool

	Method       []byte
	PathSegments [][]byte
	QueryString  []byte
	Headers      []CollectedHeader

	// StopAfterEvents, if non-zero, causes Stop to return true once this
	// many events (OnEvent calls) have been observed, which lets a caller
	// exercise listener-initiated abort.
	StopAfterEvents int

	partial []byte // accumulator for the in-flight partial token
}

// CollectedHeader is one fully-collected header name/value pair.
type CollectedHeader struct {
	Name  []byte
	Value []byte
}

func (c *CollectingListener) OnEvent(event EventKind) {
	c.Events = append(c.Events, event)
}

func (c *CollectingListener) OnCompleteText(token TokenKind, text []byte) {
	cp := append([]byte(nil), text...)
	switch token {
	case HttpMethod:
		c.Method = cp
	case PathSegment:
		c.PathSegments = append(c.PathSegments, cp)
	case HeaderName:
		c.Headers = append(c.Headers, CollectedHeader{Name: cp})
	case HeaderValue:
		if n := len(c.Headers); n > 0 && c.Headers[n-1].Value == nil {
			c.Headers[n-1].Value = cp
		} else {
			c.Headers = append(c.Headers, CollectedHeader{Value: cp})
		}
	}
}

func (c *CollectingListener) OnPartialText(token PartialTokenKind, position Position, text []byte) {
	if position == First {
		c.partial = c.partial[:0]
	}
	c.partial = append(c.partial, text...)
	if position != Last {
		return
	}
	whole := append([]byte(nil), c.partial...)
	c.partial = c.partial[:0]
	switch token {
	case PartialPathSegment:
		c.PathSegments = append(c.PathSegments, whole)
	case QueryString:
		c.QueryString = whole
	case PartialHeaderName:
		c.Headers = append(c.Headers, CollectedHeader{Name: whole})
	case PartialHeaderValue:
		if n := len(c.Headers); n > 0 && c.Headers[n-1].Value == nil {
			c.Headers[n-1].Value = whole
		} else {
			c.Headers = append(c.Headers, CollectedHeader{Value: whole})
		}
	}
}

func (c *CollectingListener) OnEnd() {
	c.Ended = true
}

func (c *CollectingListener) OnError(msg string) {
	c.Errors = append(c.Errors, msg)
}

func (c *CollectingListener) Stop() bool {
	return c.StopAfterEvents != 0 && len(c.Events) >= c.StopAfterEvents
}
