// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package goterm

import (
	"strings"

	"github.com/biogo/store/llrb"
)

// term is a GO term held in a TermSet.
type term string

func (t term) Compare(c llrb.Comparable) int {
	return strings.Compare(string(t), string(c.(term)))
}

// TermSet is a set of GO terms kept in lexical order.
// The zero value is an empty set ready to use.
type TermSet struct {
	t llrb.Tree
}

// NewTermSet returns a TermSet holding the given terms.
func NewTermSet(terms ...string) *TermSet {
	var s TermSet
	s.Add(terms...)
	return &s
}

// Add inserts terms into the set. Terms already present are ignored.
func (s *TermSet) Add(terms ...string) {
	for _, t := range terms {
		s.t.Insert(term(t))
	}
}

// Has returns whether t is in the set.
func (s *TermSet) Has(t string) bool {
	return s.t.Get(term(t)) != nil
}

// Len returns the number of terms in the set.
func (s *TermSet) Len() int { return s.t.Len() }

// Terms returns the terms of the set in ascending order.
func (s *TermSet) Terms() []string {
	terms := make([]string, 0, s.t.Len())
	s.t.Do(func(c llrb.Comparable) (done bool) {
		terms = append(terms, string(c.(term)))
		return false
	})
	return terms
}

// String returns the terms of the set in ascending order joined by commas.
func (s *TermSet) String() string {
	return strings.Join(s.Terms(), ",")
}
