package argv

import (
	"github.com/marcomit/argv/util"
)

// suggestionCandidates returns every spelling a mistyped token could have
// meant on this command: --name and -short for each flag, then for each
// option, in declaration order. The ordering matters - closestMatch breaks
// distance ties by earliest candidate.
func (c *Command) suggestionCandidates() []string {
	candidates := make([]string, 0, (c.flags.Len()+c.options.Len())*2)
	for pair := c.flags.Oldest(); pair != nil; pair = pair.Next() {
		candidates = append(candidates, "--"+pair.Value.Name)
		if pair.Value.Short != "" {
			candidates = append(candidates, "-"+pair.Value.Short)
		}
	}
	for pair := c.options.Oldest(); pair != nil; pair = pair.Next() {
		candidates = append(candidates, "--"+pair.Value.Name)
		if pair.Value.Short != "" {
			candidates = append(candidates, "-"+pair.Value.Short)
		}
	}

	return candidates
}

// closestMatch returns the candidate with the smallest edit distance to
// token, or the empty string when there are no candidates. Only used to word
// error messages; never fails.
func closestMatch(token string, candidates []string) string {
	best := ""
	bestDistance := -1
	for _, candidate := range candidates {
		distance := util.LevenshteinDistance(token, candidate)
		if bestDistance < 0 || distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}

	return best
}
