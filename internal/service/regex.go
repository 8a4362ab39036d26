package service

import (
	"regexp"
	"strings"
)

// maxRegexMatches caps reported matches so pathological inputs stay cheap to render.
const maxRegexMatches = 100

// RegexMatch is a single match with its position and capture groups.
type RegexMatch struct {
	Text   string   `json:"text"`
	Start  int      `json:"start"`
	End    int      `json:"end"`
	Groups []string `json:"groups,omitempty"`
}

// RegexResult is the outcome of testing a pattern against an input.
type RegexResult struct {
	Pattern   string       `json:"pattern"`
	Matched   bool         `json:"matched"`
	Matches   []RegexMatch `json:"matches"`
	Truncated bool         `json:"truncated,omitempty"`
}

// RegexService tests RE2 patterns against user input.
type RegexService interface {
	Test(pattern, input string, ignoreCase bool) (*RegexResult, error)
}

type regexService struct{}

// NewRegexService constructs a new RegexService.
func NewRegexService() RegexService {
	return &regexService{}
}

func (s *regexService) Test(pattern, input string, ignoreCase bool) (*RegexResult, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, newValidationError("Pattern is required")
	}
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, newFormatError("Invalid regular expression: %v", err)
	}

	res := &RegexResult{Pattern: pattern, Matches: []RegexMatch{}}
	for _, idx := range re.FindAllStringSubmatchIndex(input, maxRegexMatches+1) {
		if len(res.Matches) == maxRegexMatches {
			res.Truncated = true
			break
		}
		m := RegexMatch{
			Text:  input[idx[0]:idx[1]],
			Start: idx[0],
			End:   idx[1],
		}
		// Pairs beyond the first are capture groups; unmatched groups have -1.
		for g := 2; g+1 < len(idx); g += 2 {
			if idx[g] < 0 {
				m.Groups = append(m.Groups, "")
				continue
			}
			m.Groups = append(m.Groups, input[idx[g]:idx[g+1]])
		}
		res.Matches = append(res.Matches, m)
	}
	res.Matched = len(res.Matches) > 0
	return res, nil
}
