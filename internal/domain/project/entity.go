package project

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusOnHold    Status = "ON_HOLD"
	StatusCompleted Status = "COMPLETED"
)

// Project groups users into a team. Team holds user ids in insertion order.
type Project struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Client string   `json:"client"`
	Status Status   `json:"status"`
	Team   []string `json:"team"`
}

// HasMember reports whether userID is on the team.
func (p *Project) HasMember(userID string) bool {
	for _, id := range p.Team {
		if id == userID {
			return true
		}
	}
	return false
}

// WithMember returns p with userID appended to the team unless already present.
func (p Project) WithMember(userID string) Project {
	if p.HasMember(userID) {
		return p
	}
	team := make([]string, 0, len(p.Team)+1)
	team = append(team, p.Team...)
	p.Team = append(team, userID)
	return p
}

// WithoutMember returns p with userID removed from the team.
func (p Project) WithoutMember(userID string) Project {
	team := make([]string, 0, len(p.Team))
	for _, id := range p.Team {
		if id != userID {
			team = append(team, id)
		}
	}
	p.Team = team
	return p
}

// DedupeTeam drops repeated user ids, keeping the first occurrence.
func DedupeTeam(team []string) []string {
	seen := make(map[string]struct{}, len(team))
	out := make([]string, 0, len(team))
	for _, id := range team {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
