// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package goterm provides extraction of gene to Gene Ontology term
// mappings from GFF3 transcript annotations.
package goterm

import "strings"

// GFF3 column indices. See http://www.sequenceontology.org/gff3.shtml.
const (
	seqidField = iota
	sourceField
	typeField
	startField
	endField
	scoreField
	strandField
	phaseField
	attributesField

	numFields
)

const (
	transcriptType = "transcript"
	parentKey      = "Parent="
	ontologyKey    = "Ontology_term="
	goPrefix       = "GO:"
)

// Transcript is a GFF3 transcript record annotated with GO terms.
type Transcript struct {
	Fields [numFields]string

	// Parent is the gene identifier from the
	// Parent attribute.
	Parent string

	// Terms holds the GO terms of the record in
	// the order they appear.
	Terms []string
}

// SeqID, Source, Start, End, Score, Strand, Phase and Attributes return
// the raw text of the corresponding GFF3 column of t.
func (t Transcript) SeqID() string      { return t.Fields[seqidField] }
func (t Transcript) Source() string     { return t.Fields[sourceField] }
func (t Transcript) Start() string      { return t.Fields[startField] }
func (t Transcript) End() string        { return t.Fields[endField] }
func (t Transcript) Score() string      { return t.Fields[scoreField] }
func (t Transcript) Strand() string     { return t.Fields[strandField] }
func (t Transcript) Phase() string      { return t.Fields[phaseField] }
func (t Transcript) Attributes() string { return t.Fields[attributesField] }

// ParseTranscript returns the Transcript described by a GFF3 line. The
// returned bool is false if the line is a comment, has fewer than nine
// fields, is not a transcript, has no Parent attribute or has no GO
// terms.
//
// The attribute field is not parsed as a key-value list. The parent is
// taken from the first semicolon-delimited token starting with "Parent=",
// while the GO terms are taken from the text following the last
// "Ontology_term=" in the field, split on semicolons.
func ParseTranscript(line string) (t Transcript, ok bool) {
	if strings.HasPrefix(line, "#") {
		return t, false
	}
	fields := strings.Split(strings.TrimSpace(line), "\t")
	if len(fields) < numFields {
		return t, false
	}
	if fields[typeField] != transcriptType {
		return t, false
	}
	attr := fields[attributesField]

	t.Parent = parent(attr)
	if t.Parent == "" || !strings.Contains(attr, ontologyKey) {
		return t, false
	}
	t.Terms = terms(attr)
	if len(t.Terms) == 0 {
		return t, false
	}
	copy(t.Fields[:], fields)
	return t, true
}

// parent returns the gene identifier of the first Parent token in attr.
func parent(attr string) string {
	for _, tok := range strings.Split(attr, ";") {
		if strings.HasPrefix(tok, parentKey) {
			return strings.TrimSpace(strings.ReplaceAll(tok, parentKey, ""))
		}
	}
	return ""
}

// terms returns the GO terms following the last Ontology_term key in attr.
// Tokens are tested for the GO prefix before they are trimmed.
func terms(attr string) []string {
	tail := attr[strings.LastIndex(attr, ontologyKey)+len(ontologyKey):]
	var t []string
	for _, tok := range strings.Split(tail, ";") {
		if strings.HasPrefix(tok, goPrefix) {
			t = append(t, strings.TrimSpace(tok))
		}
	}
	return t
}
