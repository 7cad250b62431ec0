// Copyright 2024 The Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command ldexpand reads a JSON-LD document and writes its expanded
// triples as N-Triples.
package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/go-ld/earlyld/ld"
)

var version = "0.1.0"

func main() {
	defer glog.Flush()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	flagBase    string
	flagVocab   string
	flagContext string
	flagOutPath string
)

var rootCmd = &cobra.Command{
	Use:     "ldexpand [file]",
	Short:   "Expand a JSON-LD document into N-Triples",
	Version: version,
	Long: `ldexpand reads a single JSON-LD document (from a file argument, or
from stdin when none is given) and streams its expansion as N-Triples.

Term resolution falls back to a small built-in set of common prefixes
(rdf, xsd, dc, foaf and friends) and a default vocabulary. Use --context
to load a JSON object of additional prefix/term bindings, and --base or
--vocab to override the #base and #vocab entries directly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExpand,
}

func init() {
	rootCmd.Flags().StringVar(&flagBase, "base", "", "base IRI for resolving wrapped relative references")
	rootCmd.Flags().StringVar(&flagVocab, "vocab", "", "default vocabulary IRI for unresolved bare terms")
	rootCmd.Flags().StringVar(&flagContext, "context", "", "path to a JSON file of extra prefix/term bindings")
	rootCmd.Flags().StringVarP(&flagOutPath, "output", "o", "", "write N-Triples here instead of stdout")
}

func runExpand(cmd *cobra.Command, args []string) error {
	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()
		in = f
		glog.V(1).Infof("reading JSON-LD document from %s", args[0])
	} else {
		glog.V(1).Info("reading JSON-LD document from stdin")
	}

	ctx, err := buildContext()
	if err != nil {
		return err
	}

	doc, err := ld.ParseDocument(in)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	out := os.Stdout
	if flagOutPath != "" {
		f, err := os.Create(flagOutPath)
		if err != nil {
			return fmt.Errorf("opening %s: %w", flagOutPath, err)
		}
		defer f.Close()
		out = f
	}

	ts := ld.NewWalker(ctx).Expand(doc)
	serializer := &ld.NTriplesSerializer{}
	if err := serializer.SerializeTo(out, ts); err != nil {
		glog.Errorf("expansion failed: %v", err)
		return err
	}
	return nil
}

func buildContext() (ld.Context, error) {
	ctx := ld.DefaultContext()

	if flagContext != "" {
		f, err := os.Open(flagContext)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", flagContext, err)
		}
		defer f.Close()

		extra, err := ld.ParseDocument(f)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", flagContext, err)
		}
		local, err := ld.ContextFromValue(extra)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", flagContext, err)
		}
		ctx = ld.Merge(ctx, local)
	}

	if flagBase != "" {
		ctx = ld.Merge(ctx, ld.Context{ld.BaseKey: flagBase})
	}
	if flagVocab != "" {
		ctx = ld.Merge(ctx, ld.Context{ld.VocabKey: flagVocab})
	}

	return ctx, nil
}
