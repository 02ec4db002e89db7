// Copyright 2024 The http1dec Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package http1dec

// EventKind identifies a structural event with no associated text.
type EventKind uint8

const (
	PathStart EventKind = iota
	// PathSeparator is fired each time AfterSegment consumes a '/' between
	// two path segments. The original decoder this is derived from defines
	// but never fires the analogous event; this implementation fires it so
	// that a listener can reconstruct the exact path, not just the segment
	// texts (see DESIGN.md Open Question decisions).
	PathSeparator
	PathAndUrlEnd
	PathEndQueryStart
	QueryAndUrlEnd
	HttpVersion1_1
	End
)

var eventKindNames = [...]string{
	PathStart:         "PathStart",
	PathSeparator:     "PathSeparator",
	PathAndUrlEnd:     "PathAndUrlEnd",
	PathEndQueryStart: "PathEndQueryStart",
	QueryAndUrlEnd:    "QueryAndUrlEnd",
	HttpVersion1_1:    "HttpVersion1_1",
	End:               "End",
}

// String implements fmt.Stringer.
func (e EventKind) String() string {
	if int(e) >= len(eventKindNames) {
		return "invalid"
	}
	return eventKindNames[e]
}

// TokenKind identifies which token a complete-text callback refers to.
type TokenKind uint8

const (
	HttpMethod TokenKind = iota
	PathSegment
	HeaderName
	HeaderValue
)

var tokenKindNames = [...]string{
	HttpMethod:  "HttpMethod",
	PathSegment: "PathSegment",
	HeaderName:  "HeaderName",
	HeaderValue: "HeaderValue",
}

// String implements fmt.Stringer.
func (t TokenKind) String() string {
	if int(t) >= len(tokenKindNames) {
		return "invalid"
	}
	return tokenKindNames[t]
}

// PartialTokenKind identifies which token a partial-text callback refers
// to. It is a distinct type from TokenKind because QueryString has no
// complete-text form: it is always delivered as partial text (spec §4.2,
// DecodeQueryStringStart).
type PartialTokenKind uint8

const (
	PartialPathSegment PartialTokenKind = iota
	QueryString
	PartialHeaderName
	PartialHeaderValue
)

var partialTokenKindNames = [...]string{
	PartialPathSegment: "PathSegment",
	QueryString:        "QueryString",
	PartialHeaderName:  "HeaderName",
	PartialHeaderValue: "HeaderValue",
}

// String implements fmt.Stringer.
func (t PartialTokenKind) String() string {
	if int(t) >= len(partialTokenKindNames) {
		return "invalid"
	}
	return partialTokenKindNames[t]
}

// Position marks where in an oversize-token sequence a partial-text
// callback falls.
type Position uint8

const (
	First Position = iota
	Middle
	Last
)

var positionNames = [...]string{
	First:  "First",
	Middle: "Middle",
	Last:   "Last",
}

// String implements fmt.Stringer.
func (p Position) String() string {
	if int(p) >= len(positionNames) {
		return "invalid"
	}
	return positionNames[p]
}
