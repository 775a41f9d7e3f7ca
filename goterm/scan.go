// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package goterm

import (
	"bufio"
	"bytes"
	"io"
)

// MaxLineLength is the longest line accepted by scanners returned by
// NewScanner. Attribute columns of some annotation sources are very long.
const MaxLineLength = 16 << 20

// NewScanner returns a line scanner for r that splits with ScanLines
// and accepts lines up to MaxLineLength bytes.
func NewScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, MaxLineLength)
	sc.Split(ScanLines)
	return sc
}

// ScanLines is a bufio.SplitFunc that returns lines terminated by "\n",
// "\r\n" or a lone "\r". The terminator is not included in the token.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data), atEOF:
			return i + 1, data[:i], nil
		}
		// A trailing '\r' may be the first half of "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
