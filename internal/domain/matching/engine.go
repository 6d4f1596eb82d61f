package matching

import "sort"

// Candidate carries the skill list a ranking is computed against.
type Candidate struct {
	Skills []string
}

// Posting is one job offer as seen by the engine: the required-skills
// list it is scored against, plus the original payload fields the engine
// never inspects and never writes to.
type Posting struct {
	RequiredSkills []string
	Payload        map[string]any
}

type RankedPosting struct {
	Posting
	MatchScore int
}

// Score counts how many entries of the candidate's skill list are members
// of the posting's required-skills set. Duplicate candidate entries each
// count; duplicates inside RequiredSkills do not (membership test, not
// multiset intersection).
func Score(candidate Candidate, posting Posting) int {
	if len(candidate.Skills) == 0 || len(posting.RequiredSkills) == 0 {
		return 0
	}

	required := make(map[string]struct{}, len(posting.RequiredSkills))
	for _, s := range posting.RequiredSkills {
		required[s] = struct{}{}
	}

	score := 0
	for _, s := range candidate.Skills {
		if _, ok := required[s]; ok {
			score++
		}
	}
	return score
}

// Rank scores every posting, drops the ones with no overlap and returns
// the rest ordered by descending score. Postings with equal scores keep
// their input order. Inputs are left untouched; the result holds new
// records only.
func Rank(candidate Candidate, postings []Posting) []RankedPosting {
	out := make([]RankedPosting, 0, len(postings))
	for _, p := range postings {
		score := Score(candidate, p)
		if score <= 0 {
			continue
		}
		out = append(out, RankedPosting{Posting: p, MatchScore: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	return out
}
