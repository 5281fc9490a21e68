// ABOUTME: Selector picks the next study topic for a time budget
// ABOUTME: Prefers eligible topics matching the budget, falls back to any eligible topic
package core

import (
	"math/rand/v2"

	"github.com/harper/momprep/internal/models"
)

// Rand is the random source used for topic selection.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Selector chooses a topic uniformly at random from the best candidate set
type Selector struct {
	rnd Rand
}

// NewSelector creates a selector; a nil rnd uses the auto-seeded global source
func NewSelector(rnd Rand) *Selector {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Selector{rnd: rnd}
}

// Queue returns the eligible (New or Revision) items in table order
func Queue(items []models.CurriculumItem) []models.CurriculumItem {
	queue := make([]models.CurriculumItem, 0, len(items))
	for _, item := range items {
		if item.Eligible() {
			queue = append(queue, item)
		}
	}
	return queue
}

// Filter returns the items whose difficulty equals budget
func Filter(items []models.CurriculumItem, budget models.Budget) []models.CurriculumItem {
	var filtered []models.CurriculumItem
	for _, item := range items {
		if item.Difficulty == budget {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Select returns a random eligible topic whose difficulty matches budget.
// When no eligible topic matches, any eligible topic is returned instead.
// ok is false only when nothing is eligible.
func (s *Selector) Select(items []models.CurriculumItem, budget models.Budget) (models.CurriculumItem, bool) {
	queue := Queue(items)
	if len(queue) == 0 {
		return models.CurriculumItem{}, false
	}

	if filtered := Filter(queue, budget); len(filtered) > 0 {
		return filtered[s.rnd.IntN(len(filtered))], true
	}
	return queue[s.rnd.IntN(len(queue))], true
}
