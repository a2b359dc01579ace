// Package report summarises stored analyses.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/harmonfunc/model"
	"github.com/jsphweid/harmonfunc/util"
	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	NumAnalyses int
	NumChords   int
	NumVoices   uint64
	MeanVoices  float64
	// counts of concise labels
	Labels map[string]int
	// counts of the bass function letter (S, T, D or U)
	Functions map[string]int
	// Shannon entropy of Functions in nats
	FunctionEntropy float64
}

// bassFunction is the first function letter of a concise label such as "D^T(5)".
func bassFunction(label string) string {
	if label == "" {
		return "U"
	}
	return label[:1]
}

func Summarize(analyses []model.Analysis) Summary {
	s := Summary{
		NumAnalyses: len(analyses),
		Labels:      make(map[string]int),
		Functions:   make(map[string]int),
	}

	var voices []int
	for _, a := range analyses {
		for _, c := range a.Chords {
			s.Labels[c.Label]++
			s.Functions[bassFunction(c.Label)]++
			voices = append(voices, len(c.Notes))
		}
	}
	s.NumChords = len(voices)
	if s.NumChords == 0 {
		return s
	}

	s.NumVoices = util.Sum(voices)
	counts := make([]float64, len(voices))
	for i, v := range voices {
		counts[i] = float64(v)
	}
	s.MeanVoices = stat.Mean(counts, nil)

	p := make([]float64, 0, len(s.Functions))
	for _, f := range util.SortedKeys(s.Functions) {
		p = append(p, float64(s.Functions[f])/float64(s.NumChords))
	}
	s.FunctionEntropy = stat.Entropy(p)
	return s
}

func (s Summary) Write(w io.Writer) {
	fmt.Fprintf(w, "analyses: %v\n", s.NumAnalyses)
	fmt.Fprintf(w, "chords: %v\n", s.NumChords)
	fmt.Fprintf(w, "mean voices per chord: %.2f\n", s.MeanVoices)
	fmt.Fprintf(w, "function entropy: %.3f\n", s.FunctionEntropy)

	parts := make([]string, 0, len(s.Functions))
	for _, f := range util.SortedKeys(s.Functions) {
		parts = append(parts, fmt.Sprintf("%v=%v", f, s.Functions[f]))
	}
	fmt.Fprintf(w, "functions: %v\n", strings.Join(parts, " "))

	fmt.Fprintln(w, "labels:")
	for _, label := range util.SortedKeys(s.Labels) {
		fmt.Fprintf(w, "  %-12v %v\n", label, s.Labels[label])
	}
}
