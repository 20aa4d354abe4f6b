package jobapimodels

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"talent-park-backend/models"
	apimodels "talent-park-backend/models/api"
	dbmodels "talent-park-backend/models/db"
)

type JobData struct {
	Title                    string         `json:"title"`
	JobType                  models.JobType `json:"job_type"`
	Location                 string         `json:"location"`
	CompanyName              string         `json:"company_name"`
	Introduction             string         `json:"introduction"`
	Responsibilities         string         `json:"responsibilities"`
	Qualifications           string         `json:"qualifications"`
	Offers                   string         `json:"offers"`
	Salary                   int            `json:"salary"`
	HiringMultipleCandidates bool           `json:"hiring_multiple_candidates"`
	PersonalWebsiteTitle     string         `json:"personal_website_title"`
	PersonalWebsiteURL       string         `json:"personal_website_url"`
	Niche                    string         `json:"niche"`
}

func (r JobData) Validate() error {
	if len(strings.TrimSpace(r.Title)) < 3 {
		return errors.New("job title must be at least 3 characters long")
	}
	if !r.JobType.IsValid() {
		return errors.New("job type must be Full-time or Part-time")
	}
	if r.Location == "" || r.CompanyName == "" || r.Introduction == "" ||
		r.Responsibilities == "" || r.Qualifications == "" || r.Niche == "" {
		return errors.New("please provide full job details")
	}
	if r.Salary <= 0 {
		return errors.New("salary must be a positive amount")
	}
	if (r.PersonalWebsiteTitle == "") != (r.PersonalWebsiteURL == "") {
		return errors.New("provide both website url and title, or leave both blank")
	}
	if r.PersonalWebsiteURL != "" {
		u, err := url.Parse(r.PersonalWebsiteURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.New("invalid website url")
		}
	}
	return nil
}

type JobFilter struct {
	City          string         `json:"city"`
	Niche         string         `json:"niche"`
	SearchKeyword string         `json:"search_keyword"`
	Sort          apimodels.Sort `json:"sort"`
}

type JobView struct {
	ID                       string         `json:"id"`
	Title                    string         `json:"title"`
	JobType                  models.JobType `json:"job_type"`
	Location                 string         `json:"location"`
	CompanyName              string         `json:"company_name"`
	Introduction             string         `json:"introduction"`
	Responsibilities         string         `json:"responsibilities"`
	Qualifications           string         `json:"qualifications"`
	Offers                   string         `json:"offers,omitempty"`
	Salary                   int            `json:"salary"`
	HiringMultipleCandidates bool           `json:"hiring_multiple_candidates"`
	PersonalWebsiteTitle     string         `json:"personal_website_title,omitempty"`
	PersonalWebsiteURL       string         `json:"personal_website_url,omitempty"`
	Niche                    string         `json:"niche"`
	PostedOn                 time.Time      `json:"posted_on"`
	PostedByID               string         `json:"posted_by_id"`
}

func ToJobView(rec dbmodels.Job) JobView {
	return JobView{
		ID:                       rec.ID,
		Title:                    rec.Title,
		JobType:                  rec.JobType,
		Location:                 rec.Location,
		CompanyName:              rec.CompanyName,
		Introduction:             rec.Introduction,
		Responsibilities:         rec.Responsibilities,
		Qualifications:           rec.Qualifications,
		Offers:                   rec.Offers,
		Salary:                   rec.Salary,
		HiringMultipleCandidates: rec.HiringMultipleCandidates,
		PersonalWebsiteTitle:     rec.PersonalWebsite.Title,
		PersonalWebsiteURL:       rec.PersonalWebsite.URL,
		Niche:                    rec.Niche,
		PostedOn:                 rec.PostedOn,
		PostedByID:               rec.PostedByID,
	}
}
