package printer

import "strings"

// Device is an available output device: a human-visible name (as the
// OS or config reports it) plus its transport.
type Device struct {
	Name    string
	Printer Printer
}

// Matcher is one entry in the selection policy: a label for logs and a
// predicate over the device name.
type Matcher struct {
	Label string
	Match func(name string) bool
}

// keywordMatcher matches device names containing kw, case-insensitively.
func keywordMatcher(kw string) Matcher {
	return Matcher{
		Label: kw,
		Match: func(name string) bool {
			return strings.Contains(strings.ToLower(name), strings.ToLower(kw))
		},
	}
}

// Selector picks the output device for a dispatch. The policy is an
// ordered table of matchers, so the ranking is data rather than a
// chain of string comparisons.
type Selector struct {
	matchers []Matcher
}

// NewSelector builds the standard receipt-printer ranking — thermal,
// receipt, pos — followed by any configured model tokens (e.g. "tm-t82").
func NewSelector(modelTokens ...string) *Selector {
	matchers := []Matcher{
		keywordMatcher("thermal"),
		keywordMatcher("receipt"),
		keywordMatcher("pos"),
	}
	for _, tok := range modelTokens {
		if tok != "" {
			matchers = append(matchers, keywordMatcher(tok))
		}
	}
	return &Selector{matchers: matchers}
}

// Select returns the highest-ranked matching device. With no match it
// falls back to the first available device; with no devices at all it
// returns ok=false and the caller stays file-only.
func (s *Selector) Select(devices []Device) (Device, bool) {
	if len(devices) == 0 {
		return Device{}, false
	}
	for _, m := range s.matchers {
		for _, d := range devices {
			if m.Match(d.Name) {
				return d, true
			}
		}
	}
	return devices[0], true
}
