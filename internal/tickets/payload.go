package tickets

type TicketRequest struct {
	Ticket    *int   `json:"ticket,omitempty"`
	UseProdDB bool   `json:"use_prod_db"`
	User      string `json:"user,omitempty"`
	Password  string `json:"password,omitempty"`
}
