package facts

import (
	"context"
	"regexp"
)

// CurrentIncumbent is reported as the term end when the infobox uses
// the "Incumbent / Assumed office" layout, which carries no end date.
const CurrentIncumbent = "Current incumbent"

const dateExpr = `[A-Za-z]+\s+\d{1,2},\s+\d{4}`

var (
	reBirthISO = regexp.MustCompile(`(?is)Born\D*?(?P<birth>\d{4}-\d{2}-\d{2})`)

	// Two presidential infobox layouts exist: a closed term lists
	// "In office <start> <end>", a sitting president's box reads
	// "Incumbent" followed by "Assumed office <start>".
	reOfficeStart = regexp.MustCompile(`(?is)President of the United States\s*In office\s*(?P<start>` + dateExpr + `)`)
	reOfficeEnd   = regexp.MustCompile(`(?is)President of the United States\s*In office\s*` + dateExpr + `\s*(?P<end>` + dateExpr + `)`)
	reIncumbent   = regexp.MustCompile(`(?is)Incumbent\s*Assumed office\s*(?P<start>` + dateExpr + `)`)

	// A split-term president states his rank twice in one phrase,
	// e.g. "22nd & 24th President of the United States".
	reRankPhrase = regexp.MustCompile(`(?is)(?P<rank>\d{1,2}(?:st|nd|rd|th)(?:\s*&\s*\d{1,2}(?:st|nd|rd|th))*)\s+President of the United States`)
	reRankDigits = regexp.MustCompile(`\d{1,2}`)

	reRadius = regexp.MustCompile(`(?is)Polar radius.*?(?: ?\d+ )?(?P<radius>[\d,.]+).*?km`)
)

var (
	fieldBirthDate = field{
		name:       "birth date",
		candidates: []candidate{{re: reBirthISO, group: "birth"}},
	}
	fieldTermStart = field{
		name: "term start",
		candidates: []candidate{
			{re: reOfficeStart, group: "start"},
			{re: reIncumbent, group: "start"},
		},
	}
	fieldTermEnd = field{
		name: "term end",
		candidates: []candidate{
			{re: reOfficeEnd, group: "end"},
			{re: reIncumbent, literal: CurrentIncumbent},
		},
	}
	fieldRank = field{
		name:       "presidential number",
		candidates: []candidate{{re: reRankPhrase, group: "rank"}},
	}
	fieldPolarRadius = field{
		name:       "polar radius",
		candidates: []candidate{{re: reRadius, group: "radius"}},
	}
)

// BirthDate returns the subject's birth date in YYYY-MM-DD form.
func (e *Extractor) BirthDate(ctx context.Context, subject string) (string, error) {
	return e.lookup(ctx, subject, fieldBirthDate)
}

// TermStart returns the date the subject took office ("Month D, YYYY").
func (e *Extractor) TermStart(ctx context.Context, subject string) (string, error) {
	return e.lookup(ctx, subject, fieldTermStart)
}

// TermEnd returns the date the subject left office, or CurrentIncumbent
// when the infobox shows a sitting term.
func (e *Extractor) TermEnd(ctx context.Context, subject string) (string, error) {
	return e.lookup(ctx, subject, fieldTermEnd)
}

// Ordinals returns the subject's presidential numbers in document
// order, deduplicated and capped at two. One rank phrase can state two
// numbers (non-contiguous terms); anything beyond that is incidental
// body text and dropped.
func (e *Extractor) Ordinals(ctx context.Context, subject string) ([]string, error) {
	phrases, err := e.lookupAll(ctx, subject, fieldRank)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var numbers []string
	for _, phrase := range phrases {
		for _, n := range reRankDigits.FindAllString(phrase, -1) {
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			numbers = append(numbers, n)
			if len(numbers) == 2 {
				return numbers, nil
			}
		}
	}
	return numbers, nil
}

// PolarRadius returns the subject's polar radius figure in km.
func (e *Extractor) PolarRadius(ctx context.Context, subject string) (string, error) {
	return e.lookup(ctx, subject, fieldPolarRadius)
}
