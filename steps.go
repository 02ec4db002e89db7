// Copyright 2024 The http1dec Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package http1dec

import "bytes"

// httpVersionLiteral is the only HTTP version this decoder accepts,
// including the trailing CRLF (spec §4.2, DecodeHttpVersion). HTTP
// versions other than 1.1 are a non-goal.
var httpVersionLiteral = []byte("HTTP/1.1\r\n")

var crlf = []byte("\r\n")

// matchLiteral compares input against lit, which is known in full. It
// reports whether input starts with the complete literal, or — if input is
// shorter than lit — whether input is a proper prefix of it (in which case
// the caller should wait for more bytes rather than fail).
func matchLiteral(input, lit []byte) (full, properPrefix bool) {
	if len(input) >= len(lit) {
		return bytes.Equal(input[:len(lit)], lit), false
	}
	return false, bytes.Equal(input, lit[:len(input)])
}

// stepDecodeMethod implements spec §4.2's "Step: DecodeMethod".
func (d *Decoder) stepDecodeMethod(input []byte) (Status, []byte) {
	if len(input) == 0 {
		return NeedMoreInput, input
	}
	if !isUpperAlpha(input[0]) {
		return d.fail(errInvalidMethod, input)
	}
	i := scanFirstNonMatching(input, isUpperAlpha)
	if i == len(input) {
		// All of the input is uppercase letters with no SP in sight yet.
		d.fallback = stepDecodeMethodError
		d.hasFallback = true
		return NeedMoreInput, input
	}
	if input[i] != ' ' {
		return d.fail(errInvalidMethod, input)
	}
	d.emitCompleteText(HttpMethod, input[:i])
	d.step = stepDecodePathStart
	return DecodingInProgress, input[i+1:]
}

// stepDecodeMethodError is the buffer-full fallback for stepDecodeMethod:
// the method never gets a partial-text form, so an oversize method is
// always a hard failure (spec §4.3).
func (d *Decoder) stepDecodeMethodError(input []byte) (Status, []byte) {
	return d.fail(errMethodTooLong, input)
}

// stepDecodePathStart implements "Step: DecodePathStart".
func (d *Decoder) stepDecodePathStart(input []byte) (Status, []byte) {
	if len(input) == 0 {
		return NeedMoreInput, input
	}
	if input[0] != '/' {
		return d.fail(errInvalidPathStart, input)
	}
	d.emitEvent(PathStart)
	d.step = stepDecodePathSegment
	return DecodingInProgress, input[1:]
}

// stepDecodePathSegment implements "Step: DecodePathSegment".
func (d *Decoder) stepDecodePathSegment(input []byte) (Status, []byte) {
	if len(input) == 0 {
		return NeedMoreInput, input
	}
	i := scanFirstNonMatching(input, isPchar)
	switch {
	case i == 0:
		// Current byte isn't pchar: no segment here at all.
		d.pendingEmptySegment = true
		d.step = stepAfterSegment
		return DecodingInProgress, input
	case i == len(input):
		d.fallback = stepPartialPathSegmentStart
		d.hasFallback = true
		return NeedMoreInput, input
	default:
		d.emitCompleteText(PathSegment, input[:i])
		d.pendingEmptySegment = false
		d.step = stepAfterSegment
		return DecodingInProgress, input[i:]
	}
}

// stepAfterSegment implements "Step: AfterSegment".
func (d *Decoder) stepAfterSegment(input []byte) (Status, []byte) {
	if len(input) == 0 {
		return NeedMoreInput, input
	}
	switch input[0] {
	case ' ':
		d.emitEvent(PathAndUrlEnd)
		d.step = stepDecodeHttpVersion
		return DecodingInProgress, input[1:]
	case '?':
		d.emitEvent(PathEndQueryStart)
		d.step = stepDecodeQueryStringStart
		return DecodingInProgress, input[1:]
	case '/':
		if d.pendingEmptySegment {
			return d.fail(errEmptyPathSegment, input)
		}
		d.emitEvent(PathSeparator)
		d.step = stepDecodePathSegment
		return DecodingInProgress, input[1:]
	default:
		return d.fail(errInvalidPath, input)
	}
}

// stepDecodeQueryStringStart implements "Step: DecodeQueryStringStart".
// Query strings always reach the listener as partial text, even when the
// entire query fits in one slice (spec §4.2: "there is no complete-text
// form" because no maximum length is ever asserted for it).
func (d *Decoder) stepDecodeQueryStringStart(input []byte) (Status, []byte) {
	if len(input) == 0 {
		return NeedMoreInput, input
	}
	if !isQueryChar(input[0]) {
		d.emitEvent(QueryAndUrlEnd)
		d.step = stepMatchAfterRequestTarget
		return DecodingInProgress, input
	}
	i := scanFirstNonMatching(input, isQueryChar)
	d.emitPartialText(QueryString, First, input[:i])
	d.step = stepDecodePartialQueryString
	return DecodingInProgress, input[i:]
}

// stepDecodePartialQueryString implements "Step: DecodePartialQueryString".
// Unlike the PartialXxxContinue steps of the oversize-token protocol (spec
// §4.3), this one never combines a non-empty matched prefix with its
// terminator in the same callback: it emits Middle for whatever query-char
// run it finds, and only emits Last — always empty, since the terminator
// itself is never a query-char — once re-entered with the terminator as the
// very next byte (spec §4.2, DecodePartialQueryString).
func (d *Decoder) stepDecodePartialQueryString(input []byte) (Status, []byte) {
	if len(input) == 0 {
		return NeedMoreInput, input
	}
	i := scanFirstNonMatching(input, isQueryChar)
	if i == 0 {
		d.emitPartialText(QueryString, Last, input[:0])
		d.step = stepMatchAfterRequestTarget
		return DecodingInProgress, input
	}
	d.emitPartialText(QueryString, Middle, input[:i])
	return DecodingInProgress, input[i:]
}

// stepMatchAfterRequestTarget implements "Step: MatchAfterRequestTarget".
func (d *Decoder) stepMatchAfterRequestTarget(input []byte) (Status, []byte) {
	if len(input) == 0 {
		return NeedMoreInput, input
	}
	if input[0] != ' ' {
		return d.fail(errInvalidPathEnd, input)
	}
	d.emitEvent(PathAndUrlEnd)
	d.step = stepDecodeHttpVersion
	return DecodingInProgress, input[1:]
}

// stepDecodeHttpVersion implements "Step: DecodeHttpVersion". The literal
// is matched byte-exact (not case-folded): RFC 7230 treats the HTTP-version
// token as case sensitive, unlike header field names.
func (d *Decoder) stepDecodeHttpVersion(input []byte) (Status, []byte) {
	if len(input) == 0 {
		return NeedMoreInput, input
	}
	full, properPrefix := matchLiteral(input, httpVersionLiteral)
	if full {
		d.emitEvent(HttpVersion1_1)
		d.step = stepDecodeHeaderLines
		return DecodingInProgress, input[len(httpVersionLiteral):]
	}
	if properPrefix {
		return NeedMoreInput, input
	}
	return d.fail(errUnsupportedVersion, input)
}

// stepDecodeHeaderLines implements "Step: DecodeHeaderLines".
func (d *Decoder) stepDecodeHeaderLines(input []byte) (Status, []byte) {
	if len(input) == 0 {
		return NeedMoreInput, input
	}
	i := scanFirstNonMatching(input, isTchar)
	if i == len(input) {
		d.fallback = stepPartialHeaderNameStart
		d.hasFallback = true
		return NeedMoreInput, input
	}
	if i > 0 {
		d.emitCompleteText(HeaderName, input[:i])
		d.step = stepMatchHeaderNameValueSeparator
		return DecodingInProgress, input[i:]
	}
	// i == 0: no header-name characters here at all; this must be the
	// blank line ending the header section.
	full, properPrefix := matchLiteral(input, crlf)
	if full {
		d.emitEnd()
		d.step = stepCompleted
		return Complete, input[len(crlf):]
	}
	if properPrefix {
		return NeedMoreInput, input
	}
	return d.fail(errIllformedHeaderName, input)
}

// stepMatchHeaderNameValueSeparator implements
// "Step: MatchHeaderNameValueSeparator".
func (d *Decoder) stepMatchHeaderNameValueSeparator(input []byte) (Status, []byte) {
	if len(input) == 0 {
		return NeedMoreInput, input
	}
	if input[0] != ':' {
		return d.fail(errInvalidHeaderStart, input)
	}
	d.step = stepSkipOptionalWhitespace
	return DecodingInProgress, input[1:]
}

// stepSkipOptionalWhitespace implements "Step: SkipOptionalWhitespace".
// Arbitrarily long OWS is tolerated: there is no fallback for this step.
func (d *Decoder) stepSkipOptionalWhitespace(input []byte) (Status, []byte) {
	if len(input) == 0 {
		return NeedMoreInput, input
	}
	i := scanFirstNonMatching(input, isOWS)
	if i == len(input) {
		return NeedMoreInput, input[i:]
	}
	d.step = stepDecodeHeaderValue
	return DecodingInProgress, input[i:]
}

// stepDecodeHeaderValue implements "Step: DecodeHeaderValue".
func (d *Decoder) stepDecodeHeaderValue(input []byte) (Status, []byte) {
	if len(input) == 0 {
		return NeedMoreInput, input
	}
	i := scanFirstNonMatching(input, isFieldContent)
	if i == 0 {
		return d.fail(errEmptyHeaderValue, input)
	}
	if i == len(input) {
		d.fallback = stepPartialHeaderValueStart
		d.hasFallback = true
		return NeedMoreInput, input
	}
	d.emitCompleteText(HeaderValue, trimTrailingOWS(input[:i]))
	d.step = stepMatchHeaderValueEnd
	return DecodingInProgress, input[i:]
}

// stepMatchHeaderValueEnd implements "Step: MatchHeaderValueEnd".
func (d *Decoder) stepMatchHeaderValueEnd(input []byte) (Status, []byte) {
	if len(input) == 0 {
		return NeedMoreInput, input
	}
	full, properPrefix := matchLiteral(input, crlf)
	if full {
		d.step = stepDecodeHeaderLines
		return DecodingInProgress, input[len(crlf):]
	}
	if properPrefix {
		return NeedMoreInput, input
	}
	return d.fail(errMissingHeaderEOF, input)
}

// --- Oversize-token protocol (spec §4.2.1, §4.3) ---
//
// A partial-start step is only ever reached with the full slice that the
// blocked step above could not resolve; that slice is, by construction,
// entirely made of the relevant character class. It emits it as the First
// chunk and hands off to the matching Continue step.

func (d *Decoder) stepPartialPathSegmentStart(input []byte) (Status, []byte) {
	d.emitPartialText(PartialPathSegment, First, input)
	d.step = stepPartialPathSegmentContinue
	return DecodingInProgress, input[len(input):]
}

func (d *Decoder) stepPartialPathSegmentContinue(input []byte) (Status, []byte) {
	if len(input) == 0 {
		return NeedMoreInput, input
	}
	i := scanFirstNonMatching(input, isPchar)
	if i == len(input) {
		d.emitPartialText(PartialPathSegment, Middle, input)
		return DecodingInProgress, input[i:]
	}
	d.emitPartialText(PartialPathSegment, Last, input[:i])
	d.pendingEmptySegment = false
	d.step = stepAfterSegment
	return DecodingInProgress, input[i:]
}

func (d *Decoder) stepPartialHeaderNameStart(input []byte) (Status, []byte) {
	d.emitPartialText(PartialHeaderName, First, input)
	d.step = stepPartialHeaderNameContinue
	return DecodingInProgress, input[len(input):]
}

func (d *Decoder) stepPartialHeaderNameContinue(input []byte) (Status, []byte) {
	if len(input) == 0 {
		return NeedMoreInput, input
	}
	i := scanFirstNonMatching(input, isTchar)
	if i == len(input) {
		d.emitPartialText(PartialHeaderName, Middle, input)
		return DecodingInProgress, input[i:]
	}
	d.emitPartialText(PartialHeaderName, Last, input[:i])
	d.step = stepMatchHeaderNameValueSeparator
	return DecodingInProgress, input[i:]
}

func (d *Decoder) stepPartialHeaderValueStart(input []byte) (Status, []byte) {
	d.emitPartialText(PartialHeaderValue, First, input)
	d.step = stepPartialHeaderValueContinue
	return DecodingInProgress, input[len(input):]
}

func (d *Decoder) stepPartialHeaderValueContinue(input []byte) (Status, []byte) {
	if len(input) == 0 {
		return NeedMoreInput, input
	}
	i := scanFirstNonMatching(input, isFieldContent)
	if i == len(input) {
		d.emitPartialText(PartialHeaderValue, Middle, input)
		return DecodingInProgress, input[i:]
	}
	d.emitPartialText(PartialHeaderValue, Last, trimTrailingOWS(input[:i]))
	d.step = stepMatchHeaderValueEnd
	return DecodingInProgress, input[i:]
}
