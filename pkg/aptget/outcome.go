package aptget

import "strings"

// Outcome is the classified result of installing one package
type Outcome int

const (
	UpToDate Outcome = iota
	Installed
	NotFound
	Indeterminate
	// Malformed is only tallied when strict format checking is enabled
	Malformed
)

// Label returns the human-readable label used in logs and summaries
func (o Outcome) Label() string {
	switch o {
	case UpToDate:
		return "Already up to date"
	case Installed:
		return "Newly installed"
	case NotFound:
		return "Not found"
	case Indeterminate:
		return "Could not determine"
	case Malformed:
		return "Incorrect format"
	default:
		return "Unknown"
	}
}

func (o Outcome) String() string { return o.Label() }

// Successful reports whether the outcome belongs to the success set
func (o Outcome) Successful() bool {
	return o == UpToDate || o == Installed
}

// Rule maps a substring of the install output to an outcome.
// An empty Needle matches any output.
type Rule struct {
	Outcome Outcome
	Needle  string
}

// DefaultRules is checked top to bottom; the first match wins. The empty
// needle for Installed must stay last or it shadows every rule after it.
// With this table Indeterminate cannot be produced.
var DefaultRules = []Rule{
	{Outcome: UpToDate, Needle: "is already the newest"},
	{Outcome: NotFound, Needle: "Unable to locate package"},
	{Outcome: Installed, Needle: ""},
}

// Match returns the outcome of the first rule whose needle occurs in output.
// ok is false when no rule matched.
func Match(rules []Rule, output string) (outcome Outcome, ok bool) {
	for _, r := range rules {
		if strings.Contains(output, r.Needle) {
			return r.Outcome, true
		}
	}
	return Indeterminate, false
}
