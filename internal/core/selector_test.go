package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/momprep/internal/models"
)

func topics(items []models.CurriculumItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Topic)
	}
	return out
}

func TestQueue_KeepsOnlyEligible(t *testing.T) {
	got := Queue(sampleCurriculum())
	assert.Equal(t, []string{"RAG", "Vector Databases", "Sagas"}, topics(got))
}

func TestFilter_MatchesBudget(t *testing.T) {
	got := Filter(Queue(sampleCurriculum()), models.Budget1To2Hr)
	assert.Equal(t, []string{"Sagas"}, topics(got))
	assert.Empty(t, Filter(nil, models.Budget5Min))
}

func TestSelect_ReturnsOnlyMatchingBudget(t *testing.T) {
	items := append(sampleCurriculum(),
		models.CurriculumItem{Topic: "Tool Calling", Difficulty: models.Budget5Min, Status: models.StatusRevision},
	)
	allowed := map[string]bool{"RAG": true, "Tool Calling": true}

	for seed := uint64(0); seed < 200; seed++ {
		sel := NewSelector(seededRand(seed))
		got, ok := sel.Select(items, models.Budget5Min)
		require.True(t, ok)
		assert.True(t, allowed[got.Topic], "seed %d picked %q", seed, got.Topic)
	}
}

func TestSelect_FallsBackToAnyEligible(t *testing.T) {
	items := []models.CurriculumItem{
		{Topic: "A", Difficulty: models.Budget5Min, Status: models.StatusNew},
		{Topic: "B", Difficulty: "Deep Dive", Status: models.StatusRevision},
		{Topic: "C", Difficulty: models.Budget15Min, Status: models.StatusDone},
		{Topic: "D", Difficulty: models.Budget15Min, Status: "Archived"},
	}

	seen := map[string]bool{}
	for seed := uint64(0); seed < 200; seed++ {
		got, ok := NewSelector(seededRand(seed)).Select(items, models.Budget15Min)
		require.True(t, ok)
		seen[got.Topic] = true
	}

	assert.Equal(t, map[string]bool{"A": true, "B": true}, seen,
		"fallback should draw from every eligible topic and never from done or unknown statuses")
}

func TestSelect_EmptyOrAllDone(t *testing.T) {
	sel := NewSelector(seededRand(1))

	_, ok := sel.Select(nil, models.Budget5Min)
	assert.False(t, ok)

	done := []models.CurriculumItem{
		{Topic: "A", Difficulty: models.Budget5Min, Status: models.StatusDone},
		{Topic: "B", Difficulty: models.Budget15Min, Status: models.StatusDone},
	}
	_, ok = sel.Select(done, models.Budget5Min)
	assert.False(t, ok)
}

type fixedRand struct {
	n    int
	seen []int
}

func (f *fixedRand) IntN(n int) int {
	f.seen = append(f.seen, n)
	return f.n
}

func TestSelect_UsesInjectedRandOverCandidateSet(t *testing.T) {
	rnd := &fixedRand{n: 1}
	items := []models.CurriculumItem{
		{Topic: "A", Difficulty: models.Budget5Min, Status: models.StatusNew},
		{Topic: "B", Difficulty: models.Budget15Min, Status: models.StatusNew},
		{Topic: "C", Difficulty: models.Budget5Min, Status: models.StatusNew},
	}

	got, ok := NewSelector(rnd).Select(items, models.Budget5Min)
	require.True(t, ok)
	assert.Equal(t, "C", got.Topic)
	assert.Equal(t, []int{2}, rnd.seen, "random index should range over the filtered set")
}

func TestNewSelector_NilRandUsesGlobalSource(t *testing.T) {
	got, ok := NewSelector(nil).Select(sampleCurriculum(), models.Budget15Min)
	require.True(t, ok)
	assert.Equal(t, "Vector Databases", got.Topic)
}
