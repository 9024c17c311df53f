package facts

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/pkg/log"
)

// ErrFieldNotFound means the infobox was found but none of the field's
// candidate patterns matched its text.
var ErrFieldNotFound = errors.New("field not found in infobox")

// candidate is one regex attempt for a field. Candidates run in order;
// the first match wins. When literal is set the candidate yields that
// fixed value instead of a capture group, which covers infobox layouts
// that imply a value rather than state it ("Incumbent" means the term
// has no end date yet).
type candidate struct {
	re      *regexp.Regexp
	group   string
	literal string
}

// field is a named fact with its ordered candidate patterns. New
// infobox layouts are supported by appending a candidate, not by
// writing another extractor.
type field struct {
	name       string
	candidates []candidate
}

// Extractor runs the shared fetch -> normalize -> match pipeline for
// every field. Only the candidate patterns differ per field.
type Extractor struct {
	source core.PageSource
}

func New(source core.PageSource) *Extractor {
	return &Extractor{source: source}
}

func (e *Extractor) lookup(ctx context.Context, subject string, f field) (string, error) {
	raw, err := e.source.InfoboxText(ctx, subject)
	if err != nil {
		return "", fmt.Errorf("%s of %q: %w", f.name, subject, err)
	}
	text := Normalize(raw)

	for _, c := range f.candidates {
		m := c.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if c.literal != "" {
			return c.literal, nil
		}
		idx := c.re.SubexpIndex(c.group)
		if idx < 0 || m[idx] == "" {
			continue
		}
		log.FromCtx(ctx).Debug().Str("field", f.name).Str("subject", subject).Msg("field extracted")
		return m[idx], nil
	}
	return "", fmt.Errorf("%s of %q: %w", f.name, subject, ErrFieldNotFound)
}

// lookupAll is the multi-valued variant of lookup: every match of the
// field's first applicable candidate is returned in document order.
func (e *Extractor) lookupAll(ctx context.Context, subject string, f field) ([]string, error) {
	raw, err := e.source.InfoboxText(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("%s of %q: %w", f.name, subject, err)
	}
	text := Normalize(raw)

	for _, c := range f.candidates {
		matches := c.re.FindAllStringSubmatch(text, -1)
		if matches == nil {
			continue
		}
		idx := c.re.SubexpIndex(c.group)
		if idx < 0 {
			continue
		}
		values := make([]string, 0, len(matches))
		for _, m := range matches {
			if m[idx] != "" {
				values = append(values, m[idx])
			}
		}
		if len(values) > 0 {
			return values, nil
		}
	}
	return nil, fmt.Errorf("%s of %q: %w", f.name, subject, ErrFieldNotFound)
}
