package entity

// MonthlyStat is one bucket of the current-year creation histogram.
// Month is 1-based (January = 1).
type MonthlyStat struct {
	Month    int `json:"month"`
	Projects int `json:"projects"`
}

// ProfileStats holds the counters shown on the profile dashboard.
// ProjectsCreated is computed live from the owner's project list; the
// other two come from the stored user counters.
type ProfileStats struct {
	ProjectsCreated int `json:"projectsCreated"`
	ProjectsJoined  int `json:"projectsJoined"`
	Contributions   int `json:"contributions"`
}

// Profile is the aggregated read-only view of a user's activity.
type Profile struct {
	User            *User          `json:"user"`
	Stats           ProfileStats   `json:"stats"`
	CreatedProjects []*Project     `json:"createdProjects"`
	MonthlyStats    []MonthlyStat  `json:"monthlyStats"`
	CategoryStats   map[string]int `json:"categoryStats"`
}
