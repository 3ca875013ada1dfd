package session

import "strings"

// Kind tags form a closed set used for color-coding in the planning view.
// They are presentation metadata only and never affect layout.
const (
	KindTraining      = "training"
	KindEvent         = "event"
	KindPlateau       = "plateau"
	KindLeagueMatch   = "league-match"
	KindCupMatch      = "cup-match"
	KindFriendlyMatch = "friendly-match"
	KindCompetition   = "competition"
)

// kindRule maps location-independent keywords to one kind tag.
type kindRule struct {
	kind     string
	keywords []string
}

// kindRules is evaluated top to bottom and the first match wins. The order
// is a deliberate disambiguation policy, most specific match type first:
// plateau > league > cup > friendly > generic match > event. Reordering it
// changes the color-coding of existing sessions.
var kindRules = []kindRule{
	{KindPlateau, []string{"plateau"}},
	{KindLeagueMatch, []string{"championnat"}},
	{KindCupMatch, []string{"coupe"}},
	{KindFriendlyMatch, []string{"amical"}},
	{KindCompetition, []string{"match", "tournoi", "compétition", "competition"}},
	{KindEvent, []string{"événement", "evenement", "stage", "réunion", "reunion"}},
}

// Classify assigns the presentation kind for a session by scanning its note,
// pole and team name for keywords. Sessions matching no rule are trainings.
// PRE: none
// POST: returns exactly one of the Kind constants
func Classify(s Session) string {
	haystack := s.Note + " " + s.Pole
	if s.Team != nil {
		haystack += " " + s.Team.Name
	}
	haystack = strings.ToLower(haystack)

	for _, rule := range kindRules {
		for _, kw := range rule.keywords {
			if strings.Contains(haystack, kw) {
				return rule.kind
			}
		}
	}
	return KindTraining
}
