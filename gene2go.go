// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// gene2go extracts gene to Gene Ontology term mappings from the transcript
// features of a GFF3 annotation file.
//
// Usage:
//
//	gene2go input.gff3 output.tsv
//
// The output is a tab-separated table with a gene_id and go_terms column.
// Each gene is reported once in order of first appearance in the input,
// with its GO terms sorted and joined by commas.
//
// gene2go takes no flags; every argument is a file name.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kortschak/gene2go/goterm"
)

func main() {
	os.Exit(run(os.Args, os.Stdout))
}

// run executes gene2go with the command line args, writing usage
// information to stdout, and returns the exit status.
func run(args []string, stdout io.Writer) int {
	if len(args) != 3 {
		name := "gene2go"
		if len(args) != 0 {
			name = args[0]
		}
		fmt.Fprintf(stdout, "Usage: %s input.gff3 output.tsv\n", name)
		return 1
	}

	err := goterm.ExtractFile(args[1], args[2])
	if err != nil {
		log.Printf("failed to extract GO terms: %v", err)
		return 1
	}
	return 0
}
