package core

import "strings"

var punct = strings.NewReplacer("?", "", "!", "", ".", "", ",", "")

// Tokenize folds a raw query into the token form the dispatcher works
// on: lowercase, common punctuation stripped, split on whitespace.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(punct.Replace(query)))
}
