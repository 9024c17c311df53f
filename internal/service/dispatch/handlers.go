package dispatch

import (
	"context"
	"strings"

	"github.com/sandevgo/factbot/internal/service/facts"
)

// Handler maps the tokens a wildcard captured to answer strings. The
// contract is a list even for single-value answers; the dispatcher
// normalizes an empty list to the NoAnswers result.
type Handler func(ctx context.Context, captured []string) ([]string, error)

func subject(captured []string) string {
	return strings.Join(captured, " ")
}

// yearOf takes "Month D, YYYY" apart on the comma. Values without a
// comma (like the CurrentIncumbent literal) pass through whole.
func yearOf(date string) string {
	parts := strings.SplitN(date, ",", 2)
	if len(parts) < 2 {
		return date
	}
	return strings.TrimSpace(parts[1])
}

func birthDate(ex *facts.Extractor) Handler {
	return func(ctx context.Context, captured []string) ([]string, error) {
		v, err := ex.BirthDate(ctx, subject(captured))
		if err != nil {
			return nil, err
		}
		return []string{v}, nil
	}
}

func termStart(ex *facts.Extractor) Handler {
	return func(ctx context.Context, captured []string) ([]string, error) {
		v, err := ex.TermStart(ctx, subject(captured))
		if err != nil {
			return nil, err
		}
		return []string{v}, nil
	}
}

func termStartYear(ex *facts.Extractor) Handler {
	return func(ctx context.Context, captured []string) ([]string, error) {
		v, err := ex.TermStart(ctx, subject(captured))
		if err != nil {
			return nil, err
		}
		return []string{yearOf(v)}, nil
	}
}

func termEnd(ex *facts.Extractor) Handler {
	return func(ctx context.Context, captured []string) ([]string, error) {
		v, err := ex.TermEnd(ctx, subject(captured))
		if err != nil {
			return nil, err
		}
		return []string{v}, nil
	}
}

func termEndYear(ex *facts.Extractor) Handler {
	return func(ctx context.Context, captured []string) ([]string, error) {
		v, err := ex.TermEnd(ctx, subject(captured))
		if err != nil {
			return nil, err
		}
		return []string{yearOf(v)}, nil
	}
}

func presidentialNumber(ex *facts.Extractor) Handler {
	return func(ctx context.Context, captured []string) ([]string, error) {
		numbers, err := ex.Ordinals(ctx, subject(captured))
		if err != nil {
			return nil, err
		}
		if len(numbers) > 1 {
			return []string{numbers[0] + " & " + numbers[1]}, nil
		}
		return numbers, nil
	}
}

func polarRadius(ex *facts.Extractor) Handler {
	return func(ctx context.Context, captured []string) ([]string, error) {
		v, err := ex.PolarRadius(ctx, subject(captured))
		if err != nil {
			return nil, err
		}
		return []string{v}, nil
	}
}
