// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// transcripts writes the GO annotated transcript features of a GFF3
// stream on stdin to stdout as GFF. Each feature carries its Parent gene
// and its Ontology_term list.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"

	"github.com/kortschak/gene2go/goterm"
)

var source = flag.String("source", "", "specify source field for output features (default to input source)")

func main() {
	flag.Parse()

	w := gff.NewWriter(os.Stdout, 60, true)
	sc := goterm.NewScanner(os.Stdin)
	for line := 1; sc.Scan(); line++ {
		t, ok := goterm.ParseTranscript(sc.Text())
		if !ok {
			continue
		}
		f, err := feature(t)
		if err != nil {
			log.Printf("skipping line %d: %v", line, err)
			continue
		}
		if *source != "" {
			f.Source = *source
		}
		_, err = w.Write(f)
		if err != nil {
			log.Fatalf("failed to write feature: %v", err)
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("error during gff read: %v", err)
	}
}

// feature returns a GFF feature for the transcript t. GFF3 coordinates
// are one-based and closed, so the start is shifted to give the zero-based
// half-open interval used by gff.Feature.
func feature(t goterm.Transcript) (*gff.Feature, error) {
	start, err := strconv.Atoi(t.Start())
	if err != nil {
		return nil, fmt.Errorf("failed to parse start coordinate: %v", err)
	}
	end, err := strconv.Atoi(t.End())
	if err != nil {
		return nil, fmt.Errorf("failed to parse end coordinate: %v", err)
	}
	if start < 1 || end < start {
		return nil, fmt.Errorf("invalid interval: %d-%d", start, end)
	}
	var score *float64
	if t.Score() != "." {
		s, err := strconv.ParseFloat(t.Score(), 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse score: %v", err)
		}
		score = &s
	}
	return &gff.Feature{
		SeqName:    t.SeqID(),
		Source:     t.Source(),
		Feature:    "transcript",
		FeatStart:  start - 1,
		FeatEnd:    end,
		FeatScore:  score,
		FeatStrand: strand(t.Strand()),
		FeatFrame:  frame(t.Phase()),
		FeatAttributes: gff.Attributes{
			{Tag: "Parent", Value: t.Parent},
			{Tag: "Ontology_term", Value: goterm.NewTermSet(t.Terms...).String()},
		},
	}, nil
}

func strand(s string) seq.Strand {
	switch s {
	case "+":
		return seq.Plus
	case "-":
		return seq.Minus
	default:
		return seq.None
	}
}

func frame(p string) gff.Frame {
	switch p {
	case "0", "1", "2":
		return gff.Frame(p[0] - '0')
	default:
		return gff.NoFrame
	}
}
