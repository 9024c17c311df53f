package dispatch

import (
	"strings"

	"github.com/sandevgo/factbot/internal/service/facts"
)

// Entry pairs a query template with its handler. Table order is
// significant: the dispatcher uses the first entry that matches.
type Entry struct {
	Pattern  []string
	Handler  Handler
	Terminal bool
}

func pattern(template string) []string {
	return strings.Fields(template)
}

// DefaultTable is the full pattern/action list. Phrasings of the same
// question share a handler; the bare "bye" entry ends the session.
func DefaultTable(ex *facts.Extractor) []Entry {
	return []Entry{
		{Pattern: pattern("when did % take office"), Handler: termStart(ex)},
		{Pattern: pattern("when did % become president"), Handler: termStart(ex)},
		{Pattern: pattern("what year did % take office"), Handler: termStartYear(ex)},
		{Pattern: pattern("what year did % become president"), Handler: termStartYear(ex)},
		{Pattern: pattern("when did % begin his presidency"), Handler: termStart(ex)},
		{Pattern: pattern("what year did % begin his presidency"), Handler: termStartYear(ex)},
		{Pattern: pattern("when did % leave office"), Handler: termEnd(ex)},
		{Pattern: pattern("when did % end his presidency"), Handler: termEnd(ex)},
		{Pattern: pattern("what year did % leave office"), Handler: termEndYear(ex)},
		{Pattern: pattern("what year did % end his presidency"), Handler: termEndYear(ex)},
		{Pattern: pattern("what number president is %"), Handler: presidentialNumber(ex)},
		{Pattern: pattern("what number president was %"), Handler: presidentialNumber(ex)},
		{Pattern: pattern("which number president is %"), Handler: presidentialNumber(ex)},
		{Pattern: pattern("which number president was %"), Handler: presidentialNumber(ex)},
		{Pattern: pattern("when was % born"), Handler: birthDate(ex)},
		{Pattern: pattern("what is the birth date of %"), Handler: birthDate(ex)},
		{Pattern: pattern("what is the polar radius of %"), Handler: polarRadius(ex)},

		{Pattern: pattern("bye"), Terminal: true},
	}
}
