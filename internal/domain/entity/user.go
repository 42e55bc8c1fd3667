package entity

import (
	"time"
)

// Default profile values applied at registration when the caller leaves
// the fields empty.
const (
	DefaultBio       = "Environmental enthusiast making a difference."
	DefaultAvatarURL = "https://ui-avatars.com/api/?background=2e7d32&color=ffffff&size=150"
)

// User represents a registered member of the platform.
type User struct {
	ID           string `bson:"_id,omitempty" json:"id"`
	Username     string `bson:"username" json:"username"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"password_hash" json:"-"`
	FirstName    string `bson:"first_name,omitempty" json:"firstName,omitempty"`
	LastName     string `bson:"last_name,omitempty" json:"lastName,omitempty"`
	Bio          string `bson:"bio,omitempty" json:"bio,omitempty"`
	AvatarURL    string `bson:"avatar_url,omitempty" json:"avatar,omitempty"`
	Location     string `bson:"location,omitempty" json:"location,omitempty"`
	State        string `bson:"state,omitempty" json:"state,omitempty"`
	City         string `bson:"city,omitempty" json:"city,omitempty"`
	Age          int    `bson:"age,omitempty" json:"age,omitempty"`
	Designation  string `bson:"designation,omitempty" json:"designation,omitempty"`

	// Server-maintained activity counters.
	ProjectsCreated int `bson:"projects_created" json:"projectsCreated"`
	ProjectsJoined  int `bson:"projects_joined" json:"projectsJoined"`
	Contributions   int `bson:"contributions" json:"contributions"`

	JoinedAt  time.Time `bson:"joined_at" json:"joinedAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"-"`
}

// DisplayLocation returns the free-text location, falling back to
// "City, State" when only the split fields are set.
func (u *User) DisplayLocation() string {
	if u.Location != "" {
		return u.Location
	}
	switch {
	case u.City != "" && u.State != "":
		return u.City + ", " + u.State
	case u.City != "":
		return u.City
	default:
		return u.State
	}
}
