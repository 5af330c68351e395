package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTasks() []Task {
	return []Task{
		{ID: 1, Name: "a", Priority: PriorityHigh, Status: StatusTodo},
		{ID: 2, Name: "b", Priority: PriorityLow, Status: StatusDone},
		{ID: 3, Name: "c", Priority: PriorityHigh, Status: StatusDone},
		{ID: 4, Name: "d", Priority: PriorityMedium, Status: StatusInProgress},
	}
}

func TestVisible_AllReturnsEverything(t *testing.T) {
	tasks := sampleTasks()
	assert.Equal(t, tasks, Visible(tasks, Criteria{}))
}

func TestVisible_ByStatusKeepsOrder(t *testing.T) {
	got := Visible(sampleTasks(), Criteria{Status: StatusDone})
	require.Len(t, got, 2)
	assert.Equal(t, ID(2), got[0].ID)
	assert.Equal(t, ID(3), got[1].ID)
}

func TestVisible_CriteriaAreANDed(t *testing.T) {
	got := Visible(sampleTasks(), Criteria{Status: StatusDone, Priority: PriorityHigh})
	require.Len(t, got, 1)
	assert.Equal(t, ID(3), got[0].ID)

	assert.Empty(t, Visible(sampleTasks(), Criteria{Status: StatusTodo, Priority: PriorityLow}))
}

func TestVisible_Empty(t *testing.T) {
	assert.Empty(t, Visible(nil, Criteria{Status: StatusDone}))
}

func TestNextStatusFilter_Cycles(t *testing.T) {
	var s Status
	var seen []string
	for range 4 {
		s = NextStatusFilter(s)
		seen = append(seen, StatusLabel(s))
	}
	assert.Equal(t, []string{"To Do", "In Progress", "Done", "All"}, seen)
}

func TestNextPriorityFilter_Cycles(t *testing.T) {
	var p Priority
	var seen []string
	for range 4 {
		p = NextPriorityFilter(p)
		seen = append(seen, PriorityLabel(p))
	}
	assert.Equal(t, []string{"Low", "Medium", "High", "All"}, seen)
}

func TestParseFilters(t *testing.T) {
	s, err := ParseStatusFilter("All")
	require.NoError(t, err)
	assert.Equal(t, Status(""), s)

	s, err = ParseStatusFilter("done")
	require.NoError(t, err)
	assert.Equal(t, StatusDone, s)

	p, err := ParsePriorityFilter("")
	require.NoError(t, err)
	assert.Equal(t, Priority(""), p)

	_, err = ParsePriorityFilter("nope")
	assert.ErrorIs(t, err, ErrInvalidPriority)
}
