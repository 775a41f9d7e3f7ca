// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// goterms reports the number of genes annotated with each GO term from
// a gene2go table on stdin.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/biogo/store/llrb"

	"github.com/kortschak/gene2go/goterm"
)

var (
	minGenes = flag.Int("min", 1, "specify minimum number of genes for a term to be reported")
	byCount  = flag.Bool("by-count", false, "order terms by descending gene count")
)

func main() {
	flag.Parse()
	if *minGenes < 0 {
		flag.Usage()
		os.Exit(1)
	}

	t, err := goterm.ReadTable(os.Stdin)
	if err != nil {
		log.Fatalf("failed to read gene table: %v", err)
	}
	for _, c := range termCounts(t, *minGenes, *byCount) {
		_, err = fmt.Printf("%s\t%d\n", c.term, c.genes)
		if err != nil {
			log.Fatalf("failed to write term count: %v", err)
		}
	}
}

type termCount struct {
	term  string
	genes int
}

// byTerm orders term counts by ascending term.
type byTerm termCount

func (c byTerm) Compare(o llrb.Comparable) int {
	return strings.Compare(c.term, o.(byTerm).term)
}

// byGenes orders term counts by descending gene count and then by
// ascending term.
type byGenes termCount

func (c byGenes) Compare(o llrb.Comparable) int {
	d := o.(byGenes)
	if c.genes != d.genes {
		return d.genes - c.genes
	}
	return strings.Compare(c.term, d.term)
}

// termCounts returns the number of genes annotated with each term in t,
// omitting terms with fewer than min genes. The result is sorted by term
// unless count is true, in which case it is sorted by descending gene
// count and then by term.
func termCounts(t *goterm.Table, min int, count bool) []termCount {
	n := make(map[string]int)
	for _, g := range t.Genes() {
		for _, term := range t.Terms(g).Terms() {
			n[term]++
		}
	}
	var ordered llrb.Tree
	for term, genes := range n {
		if genes < min {
			continue
		}
		c := termCount{term: term, genes: genes}
		if count {
			ordered.Insert(byGenes(c))
		} else {
			ordered.Insert(byTerm(c))
		}
	}
	c := make([]termCount, 0, ordered.Len())
	ordered.Do(func(e llrb.Comparable) (done bool) {
		switch e := e.(type) {
		case byTerm:
			c = append(c, termCount(e))
		case byGenes:
			c = append(c, termCount(e))
		}
		return false
	})
	return c
}
