// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package goterm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Header is the first line of a gene to GO term table.
const Header = "gene_id\tgo_terms\n"

// ErrBadHeader is returned by ReadTable when the table does not
// start with Header.
var ErrBadHeader = errors.New("goterm: bad table header")

// Table is a mapping from gene identifiers to GO term sets. Genes are
// kept in the order they were first added.
type Table struct {
	genes []string
	terms map[string]*TermSet
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{terms: make(map[string]*TermSet)}
}

// Add merges terms into the term set of gene. If terms is empty
// the table is not altered.
func (t *Table) Add(gene string, terms ...string) {
	if len(terms) == 0 {
		return
	}
	s, ok := t.terms[gene]
	if !ok {
		s = &TermSet{}
		t.terms[gene] = s
		t.genes = append(t.genes, gene)
	}
	s.Add(terms...)
}

// Len returns the number of genes in the table.
func (t *Table) Len() int { return len(t.genes) }

// Genes returns the genes of the table in order of first addition.
func (t *Table) Genes() []string {
	return append([]string(nil), t.genes...)
}

// Terms returns the term set of gene, or nil if gene is not in the table.
func (t *Table) Terms(gene string) *TermSet {
	return t.terms[gene]
}

// WriteTo writes the table to w as tab-separated text, starting with
// Header and followed by one line per gene holding the gene identifier
// and its ascending GO terms joined by commas.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	n, err := io.WriteString(bw, Header)
	total := int64(n)
	if err != nil {
		return total, err
	}
	for _, g := range t.genes {
		n, err = fmt.Fprintf(bw, "%s\t%s\n", g, t.terms[g])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}

// ReadTable reads a table in the format written by WriteTo.
func ReadTable(r io.Reader) (*Table, error) {
	t := NewTable()
	sc := NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, ErrBadHeader
	}
	if sc.Text()+"\n" != Header {
		return nil, ErrBadHeader
	}
	for line := 2; sc.Scan(); line++ {
		if sc.Text() == "" {
			continue
		}
		fields := strings.Split(sc.Text(), "\t")
		if len(fields) != 2 {
			return nil, fmt.Errorf("goterm: line %d: expected 2 fields, got %d", line, len(fields))
		}
		if fields[1] == "" {
			return nil, fmt.Errorf("goterm: line %d: no terms for %q", line, fields[0])
		}
		t.Add(fields[0], strings.Split(fields[1], ",")...)
	}
	return t, sc.Err()
}
