package entities

import (
	"strings"
	"time"
)

type Job struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	// comma-joined list of vocabulary skills derived from the description
	RequiredSkills string `json:"-"`

	CompanyID uint `gorm:"index" json:"company_id"`
	Company   User `json:"company"`

	Applicants []User `gorm:"many2many:job_applicants" json:"applicants,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewJob(companyID uint, title, description string, requiredSkills []string) *Job {
	return &Job{
		CompanyID:      companyID,
		Title:          title,
		Description:    description,
		RequiredSkills: strings.Join(requiredSkills, ","),
	}
}

func (j *Job) RequiredSkillsAsArray() []string {
	if j.RequiredSkills == "" {
		return []string{}
	}
	return strings.Split(j.RequiredSkills, ",")
}
