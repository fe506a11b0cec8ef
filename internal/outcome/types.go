package outcome

import "crm-alert-srv/internal/model"

// Check is one explainability entry: a rule that was evaluated, whether it
// passed, the observed value and the threshold it was held against. The
// checks panel is rendered in the task UI; only Outcome drives persisted
// state.
type Check struct {
	Label     string `json:"label"`
	Passed    bool   `json:"passed"`
	Observed  string `json:"observed"`
	Threshold string `json:"threshold,omitempty"`
}

// Result is the classifier output for one completed marketing task.
type Result struct {
	Outcome model.Outcome `json:"outcome"`
	Checks  []Check       `json:"checks"`
}
