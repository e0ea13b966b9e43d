package newick

import "strings"

// Payload keys recognized by the codec. Parsed node payloads are
// map[string]any values; distances are stored as float64 and comments as
// strings, with NHX attributes alongside under their own keys.
const (
	DistanceKey = "distance"
	CommentKey  = "comment"
)

// Dialect selects between flavors of the format.
type Dialect struct {
	// NHXPrefix marks comments that carry structured attributes, usually
	// "&&NHX". Empty disables NHX handling: such comments stay plain text.
	NHXPrefix string

	// QuoteNames forces single quotes around every label on output.
	// Labels containing reserved characters are quoted regardless.
	QuoteNames bool

	// EscapeComments entity-escapes the characters that are reserved
	// inside comments and NHX values, so any string survives a round
	// trip.
	EscapeComments bool
}

// DefaultDialect parses and writes NHX attributes and escapes comment text.
var DefaultDialect = Dialect{NHXPrefix: "&&NHX", EscapeComments: true}

var (
	escaper = strings.NewReplacer(
		"&", "&amp;",
		"[", "&lsqb;",
		"]", "&rsqb;",
		"=", "&equals;",
		":", "&colon;",
	)
	unescaper = strings.NewReplacer(
		"&lsqb;", "[",
		"&rsqb;", "]",
		"&equals;", "=",
		"&colon;", ":",
		"&amp;", "&",
	)
)
