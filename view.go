// Copyright 2024 The http1dec Authors. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package http1dec

// MaxView is a suggested upper bound for the receive buffer a caller passes
// to Feed. Feed itself imposes no length limit — bufferIsFull is supplied by
// the caller — but a buffer this size or larger holds any token this
// decoder treats as "not oversize" without ever invoking the partial-text
// fallback protocol for ordinary requests. It is one bit short of a 16 bit
// length, matching the teacher library's OffsT bound on a non-owning field
// reference.
const MaxView = 1<<15 - 1
