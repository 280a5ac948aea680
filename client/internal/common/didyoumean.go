// Copyright 2024 The google-apis-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package common

import (
	"fmt"
	"strings"
)

// maxSuggestDistance is how far a typo may be from a known name to still be
// suggested.
const maxSuggestDistance = 3

// DidYouMean returns a suggestion string for an unknown name, picking the
// candidate with the smallest edit distance. Returns "" if nothing is close
// enough.
func DidYouMean(got string, candidates []string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, c := range candidates {
		if d := editDistance(got, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf("did you mean %q?", best)
}

// UnknownName formats an error message for an unknown field, method or
// parameter name, with a suggestion when one exists.
func UnknownName(kind, got string, candidates []string) string {
	msg := fmt.Sprintf("unknown %s %q", kind, got)
	if hint := DidYouMean(got, candidates); hint != "" {
		msg += " - " + hint
	} else if len(candidates) > 0 {
		msg += " - known: " + strings.Join(candidates, ", ")
	}
	return msg
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min3(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
