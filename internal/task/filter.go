package task

// AllLabel is shown for a criterion that matches every task.
const AllLabel = "All"

// Criteria selects tasks by status and priority. A zero field matches every
// task, so the zero Criteria selects everything.
type Criteria struct {
	Status   Status
	Priority Priority
}

func (c Criteria) Match(t Task) bool {
	if c.Status != "" && t.Status != c.Status {
		return false
	}
	if c.Priority != "" && t.Priority != c.Priority {
		return false
	}
	return true
}

// Visible returns the tasks matching c, keeping their order.
func Visible(tasks []Task, c Criteria) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if c.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// ParseStatusFilter accepts "All" (or empty) as the match-all value.
func ParseStatusFilter(v string) (Status, error) {
	if v == "" || normalize(v) == "all" {
		return "", nil
	}
	return ParseStatus(v)
}

// ParsePriorityFilter accepts "All" (or empty) as the match-all value.
func ParsePriorityFilter(v string) (Priority, error) {
	if v == "" || normalize(v) == "all" {
		return "", nil
	}
	return ParsePriority(v)
}

// NextStatusFilter cycles All, To Do, In Progress, Done, All.
func NextStatusFilter(s Status) Status {
	all := Statuses()
	for i, v := range all {
		if v == s {
			if i == len(all)-1 {
				return ""
			}
			return all[i+1]
		}
	}
	return all[0]
}

// NextPriorityFilter cycles All, Low, Medium, High, All.
func NextPriorityFilter(p Priority) Priority {
	all := Priorities()
	for i, v := range all {
		if v == p {
			if i == len(all)-1 {
				return ""
			}
			return all[i+1]
		}
	}
	return all[0]
}

func StatusLabel(s Status) string {
	if s == "" {
		return AllLabel
	}
	return string(s)
}

func PriorityLabel(p Priority) string {
	if p == "" {
		return AllLabel
	}
	return string(p)
}
