package dispatch

import "strings"

// Wildcard is the pattern token that stands for any contiguous run of
// input tokens, including an empty run.
const Wildcard = "%"

// Match compares input against pattern token by token. Non-wildcard
// tokens must be equal (case-insensitive) at the same position. A
// wildcard tries every possible span length, shortest first, because
// pattern tokens may follow it ("what year did % take office"). On
// success the returned slice holds exactly the tokens the wildcards
// consumed; it is empty (but non-nil) for an empty span, so callers can
// tell an empty capture from the no-match case via ok.
func Match(pattern, input []string) (captured []string, ok bool) {
	switch {
	case len(pattern) == 0:
		if len(input) == 0 {
			return []string{}, true
		}
		return nil, false

	case pattern[0] == Wildcard:
		for span := 0; span <= len(input); span++ {
			rest, matched := Match(pattern[1:], input[span:])
			if !matched {
				continue
			}
			captured = make([]string, 0, span+len(rest))
			captured = append(captured, input[:span]...)
			captured = append(captured, rest...)
			return captured, true
		}
		return nil, false

	case len(input) > 0 && strings.EqualFold(pattern[0], input[0]):
		return Match(pattern[1:], input[1:])

	default:
		return nil, false
	}
}
