package applicationapimodels

import (
	"errors"
	"net/mail"
	"strings"

	dbmodels "talent-park-backend/models/db"
)

// SubmitData is the contact snapshot supplied with an application. The resume
// file itself travels as a multipart attachment, not in this payload.
type SubmitData struct {
	Name        string `json:"name" form:"name"`
	Email       string `json:"email" form:"email"`
	Phone       string `json:"phone" form:"phone"`
	Address     string `json:"address" form:"address"`
	CoverLetter string `json:"cover_letter" form:"cover_letter"`
}

func (r SubmitData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if r.Email == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("please provide a valid email")
	}
	if strings.TrimSpace(r.Phone) == "" {
		return errors.New("phone number is required")
	}
	if strings.TrimSpace(r.Address) == "" {
		return errors.New("address is required")
	}
	if strings.TrimSpace(r.CoverLetter) == "" {
		return errors.New("cover letter is required")
	}
	return nil
}

type ApplicationView struct {
	ID               string `json:"id"`
	JobID            string `json:"job_id"`
	JobTitle         string `json:"job_title"`
	JobSeekerID      string `json:"job_seeker_id"`
	JobSeekerName    string `json:"job_seeker_name"`
	JobSeekerEmail   string `json:"job_seeker_email"`
	JobSeekerPhone   string `json:"job_seeker_phone"`
	JobSeekerAddress string `json:"job_seeker_address"`
	CoverLetter      string `json:"cover_letter"`
	ResumeURL        string `json:"resume_url,omitempty"`
	EmployerID       string `json:"employer_id"`
	MatchScore       int    `json:"match_score"`
}

func ToApplicationView(rec dbmodels.Application) ApplicationView {
	return ApplicationView{
		ID:               rec.ID,
		JobID:            rec.JobID,
		JobTitle:         rec.JobTitle,
		JobSeekerID:      rec.JobSeekerID,
		JobSeekerName:    rec.JobSeekerName,
		JobSeekerEmail:   rec.JobSeekerEmail,
		JobSeekerPhone:   rec.JobSeekerPhone,
		JobSeekerAddress: rec.JobSeekerAddress,
		CoverLetter:      rec.CoverLetter,
		ResumeURL:        rec.Resume.URL,
		EmployerID:       rec.EmployerID,
		MatchScore:       rec.MatchScore,
	}
}
