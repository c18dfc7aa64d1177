package logs

type LogRequest struct {
	NumLogs   *int   `json:"num_logs,omitempty"`
	Recent    *bool  `json:"recent,omitempty"`
	File      string `json:"file,omitempty"`
	UseProdDB bool   `json:"use_prod_db"`
	User      string `json:"user,omitempty"`
	Password  string `json:"password,omitempty"`
}

// Limit applies the default of one row when num_logs is absent. An explicit
// zero is honored.
func (r *LogRequest) Limit() int {
	if r.NumLogs == nil {
		return 1
	}
	return *r.NumLogs
}

// Descending defaults to most-recent-first.
func (r *LogRequest) Descending() bool {
	if r.Recent == nil {
		return true
	}
	return *r.Recent
}
