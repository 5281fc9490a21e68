// ABOUTME: CurriculumItem is one study topic in the backlog
// ABOUTME: Defines status values, budget labels and the modes that map onto them
package models

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a curriculum topic
type Status string

const (
	StatusNew      Status = "New"
	StatusRevision Status = "Revision"
	StatusDone     Status = "Done"
)

// Eligible reports whether a topic with this status can be selected
func (s Status) Eligible() bool {
	return s == StatusNew || s == StatusRevision
}

// CanTransition reports whether a user action may move a topic from s to next.
// Done is terminal: only a repeated Done is accepted.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusNew, StatusRevision:
		return next == StatusRevision || next == StatusDone
	case StatusDone:
		return next == StatusDone
	}
	return false
}

// Budget is a coarse time-commitment label shared by topics and modes
type Budget string

const (
	Budget5Min   Budget = "5 minutes"
	Budget15Min  Budget = "15 minutes"
	Budget1To2Hr Budget = "1-2 hours"
)

// Mode is what the user is doing right now, which decides the budget
type Mode string

const (
	ModeBreastfeeding Mode = "breastfeeding"
	ModeNapTime       Mode = "naptime"
	ModeLaptop        Mode = "laptop"
)

// Modes lists every mode in display order
var Modes = []Mode{ModeBreastfeeding, ModeNapTime, ModeLaptop}

var modeBudgets = map[Mode]Budget{
	ModeBreastfeeding: Budget5Min,
	ModeNapTime:       Budget15Min,
	ModeLaptop:        Budget1To2Hr,
}

var modeLabels = map[Mode]string{
	ModeBreastfeeding: "🤱 Breastfeeding (5m)",
	ModeNapTime:       "☕ Nap Time (15m)",
	ModeLaptop:        "💻 Laptop (1h)",
}

// Budget returns the budget label for the mode
func (m Mode) Budget() Budget {
	return modeBudgets[m]
}

// Label returns the display label for the mode
func (m Mode) Label() string {
	if l, ok := modeLabels[m]; ok {
		return l
	}
	return string(m)
}

// ParseMode accepts a mode name ("laptop") or a budget label ("1-2 hours")
func ParseMode(s string) (Mode, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, m := range Modes {
		if v == string(m) || v == strings.ToLower(string(m.Budget())) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q (want breastfeeding, naptime or laptop)", s)
}

// CurriculumItem is one row of the Curriculum table
type CurriculumItem struct {
	Topic        string `json:"topic" yaml:"topic"`
	Category     string `json:"category" yaml:"category"`
	Difficulty   Budget `json:"difficulty" yaml:"difficulty"`
	Status       Status `json:"status" yaml:"status"`
	ContentCache string `json:"content_cache,omitempty" yaml:"content_cache,omitempty"`
}

// Eligible reports whether the item belongs in the selectable queue
func (c CurriculumItem) Eligible() bool {
	return c.Status.Eligible()
}

// HasContent reports whether pre-generated content is stored for the topic
func (c CurriculumItem) HasContent() bool {
	return strings.TrimSpace(c.ContentCache) != ""
}
