package query

type QueryRequest struct {
	Query     string `json:"query"`
	UseProdDB bool   `json:"use_prod_db"`
	User      string `json:"user,omitempty"`
	Password  string `json:"password,omitempty"`
}
