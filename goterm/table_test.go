// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package goterm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableAdd(t *testing.T) {
	tab := NewTable()
	tab.Add("geneB", "GO:0001")
	tab.Add("geneA")
	tab.Add("geneA", "GO:0003")
	tab.Add("geneB", "GO:0002", "GO:0001")

	assert.Equal(t, 2, tab.Len())
	assert.Equal(t, []string{"geneB", "geneA"}, tab.Genes())
	assert.Equal(t, []string{"GO:0001", "GO:0002"}, tab.Terms("geneB").Terms())
	assert.Equal(t, []string{"GO:0003"}, tab.Terms("geneA").Terms())
	assert.Nil(t, tab.Terms("geneC"))
}

func TestTableWriteTo(t *testing.T) {
	tab := NewTable()
	tab.Add("geneZ", "GO:0008150", "GO:0003674")
	tab.Add("geneA", "GO:0005575")

	var buf bytes.Buffer
	n, err := tab.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "gene_id\tgo_terms\ngeneZ\tGO:0003674,GO:0008150\ngeneA\tGO:0005575\n", buf.String())
}

func TestTableWriteToEmpty(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewTable().WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, Header, buf.String())
}

func TestReadTable(t *testing.T) {
	tab := NewTable()
	tab.Add("geneZ", "GO:0008150", "GO:0003674")
	tab.Add("geneA", "GO:0005575")
	var buf bytes.Buffer
	_, err := tab.WriteTo(&buf)
	require.NoError(t, err)

	got, err := ReadTable(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"geneZ", "geneA"}, got.Genes())
	assert.Equal(t, "GO:0003674,GO:0008150", got.Terms("geneZ").String())
	assert.Equal(t, "GO:0005575", got.Terms("geneA").String())
}

func TestReadTableErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr string
	}{
		{name: "empty", in: "", wantErr: ErrBadHeader.Error()},
		{name: "wrong header", in: "gene\tterms\n", wantErr: ErrBadHeader.Error()},
		{name: "too many fields", in: Header + "geneA\tGO:0001\textra\n", wantErr: "line 2: expected 2 fields, got 3"},
		{name: "too few fields", in: Header + "geneA\tGO:0001\ngeneB\n", wantErr: "line 3: expected 2 fields, got 1"},
		{name: "no terms", in: Header + "geneA\t\n", wantErr: `line 2: no terms for "geneA"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTable(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReadTableMergesRepeatedGenes(t *testing.T) {
	got, err := ReadTable(strings.NewReader(Header + "geneA\tGO:0002\n\ngeneA\tGO:0001,GO:0002\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
	assert.Equal(t, "GO:0001,GO:0002", got.Terms("geneA").String())
}
