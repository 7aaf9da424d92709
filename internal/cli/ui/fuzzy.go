package ui

import (
	"sort"
	"strings"
)

const (
	// DefaultMaxDistance is the largest edit distance a suggestion may have
	DefaultMaxDistance = 3
	// DefaultMaxSuggestions caps the number of suggestions returned
	DefaultMaxSuggestions = 3
)

// FuzzyMatchOptions configures fuzzy matching behavior
type FuzzyMatchOptions struct {
	MaxDistance    int
	MaxSuggestions int
	CaseSensitive  bool
}

type suggestion struct {
	value    string
	distance int
}

// FindSimilar returns the candidates closest to target by edit distance,
// nearest first. Ties keep the candidates' order.
//
//	FindSimilar("my-buton", []string{"my-button", "my-badge", "my-card"}, nil)
//	// ["my-button"]
func FindSimilar(target string, candidates []string, opts *FuzzyMatchOptions) []string {
	o := FuzzyMatchOptions{MaxDistance: DefaultMaxDistance, MaxSuggestions: DefaultMaxSuggestions}
	if opts != nil {
		o.CaseSensitive = opts.CaseSensitive
		if opts.MaxDistance > 0 {
			o.MaxDistance = opts.MaxDistance
		}
		if opts.MaxSuggestions > 0 {
			o.MaxSuggestions = opts.MaxSuggestions
		}
	}

	fold := func(s string) string {
		if o.CaseSensitive {
			return s
		}
		return strings.ToLower(s)
	}

	var matches []suggestion
	for _, candidate := range candidates {
		if fold(candidate) == fold(target) {
			continue
		}
		if dist := LevenshteinDistance(fold(target), fold(candidate)); dist <= o.MaxDistance {
			matches = append(matches, suggestion{value: candidate, distance: dist})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	result := make([]string, 0, o.MaxSuggestions)
	for i := 0; i < len(matches) && i < o.MaxSuggestions; i++ {
		result = append(result, matches[i].value)
	}
	return result
}

// SuggestTags returns known tag names that look like a mistyped tag. The
// allowed distance grows with the tag length so short tags do not match
// everything.
func SuggestTags(tag string, known []string) []string {
	maxDistance := len(tag) / 4
	if maxDistance < 1 {
		maxDistance = 1
	}
	if maxDistance > DefaultMaxDistance {
		maxDistance = DefaultMaxDistance
	}
	return FindSimilar(tag, known, &FuzzyMatchOptions{MaxDistance: maxDistance})
}

// LevenshteinDistance counts the single-rune insertions, deletions and
// substitutions needed to turn a into b.
//
//	LevenshteinDistance("kitten", "sitting") // 3
func LevenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
