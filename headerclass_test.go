// Copyright 2024 The http1dec Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package http1dec

import "testing"

func TestHeaderNameLookup(t *testing.T) {
	// Same statistics sanity check as the teacher's mthNameLookup test:
	// the bucket table must not be badly crowded for the small set of
	// names it carries.
	var max, total int
	for _, l := range headerNameLookup {
		if len(l) > max {
			max = len(l)
		}
		total += len(l)
	}
	if total != len(knownHeaderNames) {
		t.Errorf("init: headerNameLookup has %d entries, want %d", total, len(knownHeaderNames))
	}
	if max > 2 {
		t.Errorf("init: headerNameLookup bucket too crowded: max %d", max)
	}
}

func TestClassifyHeaderName(t *testing.T) {
	tests := [...]struct {
		name string
		want HeaderClass
	}{
		{"Host", HeaderHost},
		{"host", HeaderHost},
		{"HOST", HeaderHost},
		{"Content-Length", HeaderContentLength},
		{"content-length", HeaderContentLength},
		{"Connection", HeaderConnection},
		{"Upgrade", HeaderUpgrade},
		{"Transfer-Encoding", HeaderTransferEncoding},
		{"X-Custom-Header", HeaderOther},
		{"", HeaderOther},
	}
	for _, c := range tests {
		if got := ClassifyHeaderName([]byte(c.name)); got != c.want {
			t.Errorf("ClassifyHeaderName(%q) = %s, want %s", c.name, got, c.want)
		}
	}
}
