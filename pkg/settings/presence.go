package settings

import "strings"

// presence classifies a raw setting value so that required-setting
// failures can tell an operator exactly what is wrong: never added,
// added but left empty, or added but containing only whitespace.
type presence int

const (
	missing presence = iota
	empty
	blank
	present
)

func classify(value string, found bool) presence {
	switch {
	case !found:
		return missing
	case value == "":
		return empty
	case strings.TrimSpace(value) == "":
		return blank
	default:
		return present
	}
}
