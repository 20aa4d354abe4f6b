package dbmodels

import (
	"time"

	"talent-park-backend/models"
)

type Job struct {
	BaseModel
	Title                    string          `gorm:"type:varchar(255)" json:"title"`
	JobType                  models.JobType  `gorm:"type:varchar(50)" json:"job_type"`
	Location                 string          `gorm:"type:varchar(255)" json:"location"`
	CompanyName              string          `gorm:"type:varchar(255)" json:"company_name"`
	Introduction             string          `json:"introduction"`
	Responsibilities         string          `json:"responsibilities"`
	Qualifications           string          `json:"qualifications"`
	Offers                   string          `json:"offers"`
	Salary                   int             `json:"salary"`
	HiringMultipleCandidates bool            `json:"hiring_multiple_candidates"`
	PersonalWebsite          PersonalWebsite `gorm:"embedded;embeddedPrefix:website_" json:"personal_website"`
	Niche                    string          `gorm:"type:varchar(255);index" json:"niche"`
	// Notified is monotonic: the newsletter worker flips it false -> true
	// exactly once and never queries the job again.
	Notified   bool      `gorm:"index" json:"notified"`
	PostedOn   time.Time `json:"posted_on"`
	PostedByID string    `gorm:"type:varchar(36);index" json:"posted_by_id"`
	PostedBy   *User     `gorm:"foreignKey:PostedByID" json:"-"`
}

type PersonalWebsite struct {
	Title string `gorm:"type:varchar(255)" json:"title"`
	URL   string `gorm:"type:varchar(1024)" json:"url"`
}
