package entity

import (
	"time"
)

// ProjectTheme is the fixed category label of a project.
type ProjectTheme string

const (
	ThemeRenewableEnergy     ProjectTheme = "Renewable Energy"
	ThemeWasteManagement     ProjectTheme = "Waste Management"
	ThemeTreePlantation      ProjectTheme = "Tree Plantation"
	ThemeAwarenessCampaign   ProjectTheme = "Awareness Campaign"
	ThemeSustainableFarming  ProjectTheme = "Sustainable Farming"
	ThemeWaterConservation   ProjectTheme = "Water Conservation"
	ThemeCleanTransportation ProjectTheme = "Clean Transportation"
	ThemeOthers              ProjectTheme = "Others"
)

// Themes lists every valid project theme.
var Themes = []ProjectTheme{
	ThemeRenewableEnergy,
	ThemeWasteManagement,
	ThemeTreePlantation,
	ThemeAwarenessCampaign,
	ThemeSustainableFarming,
	ThemeWaterConservation,
	ThemeCleanTransportation,
	ThemeOthers,
}

// ValidTheme reports whether s is one of the fixed themes.
func ValidTheme(s string) bool {
	for _, t := range Themes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// ProjectStatus is a free-standing label on a project. There are no
// enforced transitions between statuses.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusPaused    ProjectStatus = "paused"
)

// Limits on the project brief. The word limit is enforced at creation,
// the character cap at storage.
const (
	BriefMaxWords = 100
	BriefMaxChars = 600
)

// DefaultVolunteerGoal is the advisory participant target assigned to
// new projects.
const DefaultVolunteerGoal = 20

// Project is a community initiative created by a user. Owner holds the
// creating user's username, a denormalized back-reference rather than a
// foreign key.
type Project struct {
	ID            string        `bson:"_id,omitempty" json:"id"`
	Theme         ProjectTheme  `bson:"theme" json:"theme"`
	Name          string        `bson:"name" json:"name"`
	Duration      string        `bson:"duration" json:"duration"`
	Location      string        `bson:"location" json:"location"`
	Brief         string        `bson:"brief" json:"brief"`
	Details       string        `bson:"details" json:"details"`
	Info          string        `bson:"info,omitempty" json:"info,omitempty"`
	Images        []string      `bson:"images" json:"images"`
	Owner         string        `bson:"owner" json:"owner"`
	Volunteers    int           `bson:"volunteers" json:"volunteers"`
	VolunteerGoal int           `bson:"volunteer_goal" json:"volunteerGoal"`
	Status        ProjectStatus `bson:"status" json:"status"`
	CreatedAt     time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updatedAt"`
}
