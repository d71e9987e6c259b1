package selector

import "shorts-factory/types"

// defaultKeywordCount is how many keywords the automatic policy takes
const defaultKeywordCount = 3

// Select chooses keywords and a title from an analysis. Indices are
// 0-based. Selection never fails outright: out-of-range keyword indices
// are dropped, duplicates collapse to their first occurrence, and a bad
// title index falls back to the highest-CTR title. Pass nil indices and
// a negative titleIndex for the fully automatic policy.
func Select(analysis *types.KeywordAnalysis, keywordIndices []int, titleIndex int) types.Selection {
	return types.Selection{
		Keywords: selectKeywords(analysis.Keywords, keywordIndices),
		Title:    selectTitle(analysis.Titles, titleIndex),
	}
}

func selectKeywords(candidates []types.KeywordCandidate, indices []int) []string {
	if len(indices) == 0 {
		indices = make([]int, 0, defaultKeywordCount)
		for i := 0; i < defaultKeywordCount && i < len(candidates); i++ {
			indices = append(indices, i)
		}
	}

	seen := make(map[int]bool, len(indices))
	keywords := make([]string, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(candidates) || seen[i] {
			continue
		}
		seen[i] = true
		keywords = append(keywords, candidates[i].Text)
	}
	return keywords
}

func selectTitle(titles []types.TitleCandidate, index int) string {
	if len(titles) == 0 {
		return ""
	}
	if index >= 0 && index < len(titles) {
		return titles[index].Text
	}
	// default rule: max CTR score, ties broken by first occurrence
	best := 0
	for i, t := range titles {
		if t.CTRScore > titles[best].CTRScore {
			best = i
		}
	}
	return titles[best].Text
}
