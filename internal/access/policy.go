package access

import "sql-gateway/pkg/apperr"

// Policy is the immutable set of denied usernames. Matching is exact, no
// case folding.
type Policy struct {
	denied map[string]struct{}
}

func NewPolicy(denylist []string) *Policy {
	denied := make(map[string]struct{}, len(denylist))
	for _, name := range denylist {
		denied[name] = struct{}{}
	}
	return &Policy{denied: denied}
}

// Authorize checks the supplied identity. Missing username or password is a
// validation failure; a denylisted username is an authorization failure.
func (p *Policy) Authorize(user, password string) error {
	if user == "" || password == "" {
		return apperr.Validation("user and password are required")
	}
	if _, ok := p.denied[user]; ok {
		return apperr.Authorization("user is not allowed")
	}
	return nil
}
