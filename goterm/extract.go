// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package goterm

import (
	"fmt"
	"io"
	"os"
)

// Extract returns a Table of the GO terms of the transcripts in the
// GFF3 stream r, keyed by transcript parent. Lines that do not describe
// an annotated transcript are ignored.
func Extract(r io.Reader) (*Table, error) {
	t := NewTable()
	sc := NewScanner(r)
	for sc.Scan() {
		tr, ok := ParseTranscript(sc.Text())
		if !ok {
			continue
		}
		t.Add(tr.Parent, tr.Terms...)
	}
	return t, sc.Err()
}

// ExtractFile reads the GFF3 file in and writes the gene to GO term
// table of its transcripts to the file out.
func ExtractFile(in, out string) error {
	t, err := extractFrom(in)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %q: %v", out, err)
	}
	defer f.Close()
	_, err = t.WriteTo(f)
	if err != nil {
		return fmt.Errorf("failed to write %q: %v", out, err)
	}
	return f.Close()
}

func extractFrom(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %v", path, err)
	}
	defer f.Close()
	t, err := Extract(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %v", path, err)
	}
	return t, nil
}
