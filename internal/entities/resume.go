package entities

import (
	"strings"
	"time"
)

// Resume is created once from an uploaded document and never mutated.
type Resume struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	// comma-joined list of extracted vocabulary skills
	Skills string `json:"-"`
	Text   string `gorm:"type:text" json:"text"`

	CreatedAt time.Time `json:"created_at"`
}

func NewResume(userID uint, text string, skills []string) *Resume {
	return &Resume{
		UserID: userID,
		Text:   text,
		Skills: strings.Join(skills, ","),
	}
}

func (r *Resume) SkillsAsArray() []string {
	if r.Skills == "" {
		return []string{}
	}
	return strings.Split(r.Skills, ",")
}
