// Copyright the go-natded Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package cmd implements the natded command-line driver: reads a judgement
// line followed by a Hilbert proof from stdin or a file, verifies it, and
// prints the resulting natural-deduction derivation (or a rejection
// message).
package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/natded/go-natded/pkg/formula"
	"github.com/natded/go-natded/pkg/hilbert"
	"github.com/natded/go-natded/pkg/parser"
	"github.com/natded/go-natded/pkg/printer"
)

// rootCmd is natded's only command: there are no subcommands, matching the
// single-purpose nature of the tool.
var rootCmd = &cobra.Command{
	Use:   "natded [file]",
	Short: "Verify a Hilbert-style proof and print its natural-deduction form.",
	Long: `natded reads a judgement line ("hyp, hyp |- goal") followed by a
Hilbert-style proof, one formula per line, from stdin or from the given
file. It verifies the proof against the ten fixed axiom schemata and modus
ponens, and prints the equivalent natural-deduction derivation.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		in, err := inputReader(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer in.Close()

		run(cmd, in, os.Stdout)
	},
}

// Execute is called by main.main; it is the sole entry point into this
// package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("color", "auto", `highlight the rule annotation: "auto", "always" or "never"`)
}

func inputReader(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("natded: %w", err)
	}

	return f, nil
}

// run reads the judgement and proof from in, verifies it, and writes the
// result to out. A malformed judgement or a lex/parse error is a tool
// failure: it goes to stderr with exit 1. A goal mismatch or an unjustified
// step is a successfully-detected invalid proof, not a tool failure: it is
// reported as an informational line on stdout with exit 0.
func run(cmd *cobra.Command, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	if !scanner.Scan() {
		fmt.Fprintln(os.Stderr, parser.ErrMalformedJudgement)
		os.Exit(1)
	}

	judgementLine := scanner.Text()

	var proofLines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		proofLines = append(proofLines, line)
	}

	j, err := parser.ParseJudgement(judgementLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	proof := make([]formula.Formula, 0, len(proofLines))
	for _, line := range proofLines {
		f, err := parser.ParseFormula(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		proof = append(proof, f)
	}

	root, err := hilbert.Verify(hilbert.Judgement{Hyps: j.Hyps, Goal: j.Goal}, proof)
	if err != nil {
		var lineErr *hilbert.LineError
		switch {
		case errors.Is(err, hilbert.ErrGoalMismatch):
			fmt.Fprintln(out, "The proof does not prove the required expression")
		case errors.As(err, &lineErr):
			fmt.Fprintln(out, lineErr.Error())
		default:
			fmt.Fprintln(out, err)
		}

		return
	}

	var buf bytes.Buffer
	if err := printer.PrintDerivation(&buf, root, j.Hyps); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if colorEnabled(cmd, out) {
		fmt.Fprint(out, colorizeAnnotations(buf.String()))
	} else {
		fmt.Fprint(out, buf.String())
	}
}

func colorEnabled(cmd *cobra.Command, out io.Writer) bool {
	switch GetString(cmd, "color") {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

var annotationRE = regexp.MustCompile(`\[(Ax|E->|I->|I&|El&|Er&|Il\||Ir\||E\||E_\|_)\]$`)

// colorizeAnnotations wraps the trailing "[annotation]" on each line in an
// ANSI color code; the printer itself never depends on terminal state.
func colorizeAnnotations(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = annotationRE.ReplaceAllString(line, "\033[36m[$1]\033[0m")
	}

	return strings.Join(lines, "\n")
}
