// Copyright 2024 The http1dec Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package http1dec

// stepID names the grammar production currently active. Kept as a small
// tagged variant dispatched through a switch (decoder.dispatch), rather
// than as a function pointer, so that Decoder stays copyable, comparable
// and trivially loggable (spec §9 design notes).
type stepID uint8

const (
	// stepError is both the zero value of stepID and the sink a decoder
	// lands in after any grammar failure. A freshly zero-valued Decoder
	// therefore already reads as "in its error step", matching the spec's
	// "a decoder is created in Error step to force an explicit reset".
	stepError stepID = iota
	stepCompleted

	stepDecodeMethod
	stepDecodeMethodError

	stepDecodePathStart
	stepDecodePathSegment
	stepAfterSegment

	stepDecodeQueryStringStart
	stepDecodePartialQueryString
	stepMatchAfterRequestTarget

	stepDecodeHttpVersion

	stepDecodeHeaderLines
	stepMatchHeaderNameValueSeparator
	stepSkipOptionalWhitespace
	stepDecodeHeaderValue
	stepMatchHeaderValueEnd

	stepPartialPathSegmentStart
	stepPartialPathSegmentContinue
	stepPartialHeaderNameStart
	stepPartialHeaderNameContinue
	stepPartialHeaderValueStart
	stepPartialHeaderValueContinue
)

// Decoder decodes the request line and headers of one HTTP/1.1 request at
// a time. The zero value is a valid Decoder, but Feed refuses to run until
// Reset has been called (spec §3 lifecycle).
type Decoder struct {
	step        stepID
	resetCalled bool
	listener    Listener

	fallback    stepID
	hasFallback bool

	// pendingEmptySegment is set by decodePathSegment when it finds the
	// path-segment prefix empty (current byte isn't a pchar), and cleared
	// whenever a non-empty segment (complete or partial) is emitted. It
	// lets AfterSegment tell a legitimate "/" separator apart from a
	// second consecutive "/" that denotes an empty path segment.
	pendingEmptySegment bool
}

// NewDecoder returns a Decoder in its initial, pre-Reset state.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Reset prepares the decoder to decode a new request. It clears the
// listener: AttachListener must be called again if decoding
// events are wanted for the new request.
func (d *Decoder) Reset() {
	d.step = stepDecodeMethod
	d.resetCalled = true
	d.listener = nil
	d.fallback = stepError
	d.hasFallback = false
	d.pendingEmptySegment = false
}

// AttachListener binds the listener that will receive events for the
// request currently being decoded.
func (d *Decoder) AttachListener(l Listener) {
	d.listener = l
}

// Feed decodes as much of input as possible. bufferIsFull asserts that
// the caller cannot grow input before Feed consumes some of it — i.e. this
// is as large as this slice will get before progress is required.
//
// Feed returns the status of this call together with the unconsumed
// suffix of input. Invariants (spec §3): Feed never retains a reference to
// input past this call; every emitted text slice borrows from input for
// the duration of a single Listener callback only.
func (d *Decoder) Feed(input []byte, bufferIsFull bool) (Status, []byte) {
	if !d.resetCalled || len(input) == 0 {
		return InternalError, input
	}
	if d.step == stepCompleted {
		return InternalError, input
	}
	if d.step == stepError {
		return IllFormed, input
	}

	// entryLen is the input length as of the start of this call. The
	// buffer-full fallback below must trigger whenever zero cumulative
	// bytes have been consumed since entry, even if intermediate steps
	// transitioned among themselves while consuming nothing (e.g.
	// SkipOptionalWhitespace falling straight through to DecodeHeaderValue
	// when there is no OWS to skip) — so this is compared by length, never
	// by step identity.
	entryLen := len(input)

	for len(input) > 0 {
		beforeStep := d.step
		beforeLen := len(input)
		// A fallback only applies to the step that set it in this dispatch.
		d.hasFallback = false

		var status Status
		status, input = d.dispatch(input)

		switch status {
		case Complete, IllFormed:
			// Already terminal (and, for IllFormed, already reported via
			// fail/OnError); do not let a late Stop() poll overwrite it.
			return status, input
		}

		if d.listener != nil && d.listener.Stop() {
			d.step = stepError
			return IllFormed, input
		}

		switch status {
		case DecodingInProgress:
			if len(input) == beforeLen && d.step == beforeStep {
				panic("http1dec: step returned DecodingInProgress without making progress")
			}
			continue
		case NeedMoreInput:
			if bufferIsFull && len(input) == entryLen {
				if d.hasFallback {
					d.step = d.fallback
					d.hasFallback = false
					continue
				}
				d.step = stepError
				return IllFormed, input
			}
			return NeedMoreInput, input
		}
	}

	// The last step consumed the remainder of input and returned
	// DecodingInProgress: report that directly rather than dispatching
	// again on an empty slice, which would only re-derive NeedMoreInput.
	return DecodingInProgress, input
}

// dispatch invokes the step function named by d.step.
func (d *Decoder) dispatch(input []byte) (Status, []byte) {
	switch d.step {
	case stepDecodeMethod:
		return d.stepDecodeMethod(input)
	case stepDecodeMethodError:
		return d.stepDecodeMethodError(input)
	case stepDecodePathStart:
		return d.stepDecodePathStart(input)
	case stepDecodePathSegment:
		return d.stepDecodePathSegment(input)
	case stepAfterSegment:
		return d.stepAfterSegment(input)
	case stepDecodeQueryStringStart:
		return d.stepDecodeQueryStringStart(input)
	case stepDecodePartialQueryString:
		return d.stepDecodePartialQueryString(input)
	case stepMatchAfterRequestTarget:
		return d.stepMatchAfterRequestTarget(input)
	case stepDecodeHttpVersion:
		return d.stepDecodeHttpVersion(input)
	case stepDecodeHeaderLines:
		return d.stepDecodeHeaderLines(input)
	case stepMatchHeaderNameValueSeparator:
		return d.stepMatchHeaderNameValueSeparator(input)
	case stepSkipOptionalWhitespace:
		return d.stepSkipOptionalWhitespace(input)
	case stepDecodeHeaderValue:
		return d.stepDecodeHeaderValue(input)
	case stepMatchHeaderValueEnd:
		return d.stepMatchHeaderValueEnd(input)
	case stepPartialPathSegmentStart:
		return d.stepPartialPathSegmentStart(input)
	case stepPartialPathSegmentContinue:
		return d.stepPartialPathSegmentContinue(input)
	case stepPartialHeaderNameStart:
		return d.stepPartialHeaderNameStart(input)
	case stepPartialHeaderNameContinue:
		return d.stepPartialHeaderNameContinue(input)
	case stepPartialHeaderValueStart:
		return d.stepPartialHeaderValueStart(input)
	case stepPartialHeaderValueContinue:
		return d.stepPartialHeaderValueContinue(input)
	default:
		panic("http1dec: dispatch on unreachable step")
	}
}

// fail transitions the decoder to its terminal error step, reports msg to
// the listener, and reports IllFormed. remaining is returned unchanged:
// once failed, nothing more is consumed.
func (d *Decoder) fail(msg string, remaining []byte) (Status, []byte) {
	d.step = stepError
	if d.listener != nil {
		d.listener.OnError(msg)
	}
	return IllFormed, remaining
}

func (d *Decoder) emitEvent(event EventKind) {
	if d.listener != nil {
		d.listener.OnEvent(event)
	}
}

func (d *Decoder) emitCompleteText(token TokenKind, text []byte) {
	if d.listener != nil {
		d.listener.OnCompleteText(token, text)
	}
}

func (d *Decoder) emitPartialText(token PartialTokenKind, position Position, text []byte) {
	if d.listener != nil {
		d.listener.OnPartialText(token, position, text)
	}
}

func (d *Decoder) emitEnd() {
	if d.listener != nil {
		d.listener.OnEnd()
	}
}
