package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input string
		want  Priority
	}{
		{"Low", PriorityLow},
		{"medium", PriorityMedium},
		{"  HIGH ", PriorityHigh},
		{"med", PriorityMedium},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParsePriority("urgent")
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"To Do", StatusTodo},
		{"todo", StatusTodo},
		{"in_progress", StatusInProgress},
		{"In Progress", StatusInProgress},
		{"done", StatusDone},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseStatus("blocked")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestNewDraft_Defaults(t *testing.T) {
	d := NewDraft()
	assert.Empty(t, d.Name)
	assert.Equal(t, PriorityMedium, d.Priority)
	assert.Equal(t, StatusTodo, d.Status)
	assert.True(t, d.Deadline.IsZero())
}

func TestDraft_Validate(t *testing.T) {
	d := NewDraft()
	assert.ErrorIs(t, d.Validate(), ErrEmptyName)

	d.Name = "   "
	assert.ErrorIs(t, d.Validate(), ErrEmptyName)

	d.Name = "Write spec"
	assert.NoError(t, d.Validate())

	d.Priority = "Urgent"
	assert.ErrorIs(t, d.Validate(), ErrInvalidPriority)

	d.Priority = PriorityLow
	d.Status = "Blocked"
	assert.ErrorIs(t, d.Validate(), ErrInvalidStatus)
}

func TestTask_DraftRoundTrip(t *testing.T) {
	d := Draft{Name: "a", Priority: PriorityHigh, Status: StatusDone, Deadline: Date{2026, 10, 18}}
	tk := New(7, d)
	assert.Equal(t, ID(7), tk.ID)
	assert.Equal(t, d, tk.Draft())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-18")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2026, Month: 10, Day: 18}, d)
	assert.Equal(t, "2026-10-18", d.String())

	d, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
	assert.Empty(t, d.String())

	_, err = ParseDate("18/10/2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDate_AddDays(t *testing.T) {
	d := Date{Year: 2026, Month: 12, Day: 30}
	assert.Equal(t, Date{Year: 2027, Month: 1, Day: 2}, d.AddDays(3))
	assert.Equal(t, Date{Year: 2026, Month: 12, Day: 29}, d.AddDays(-1))
}
