package jobapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"talent-park-backend/models"
)

func validJobData() JobData {
	return JobData{
		Title:            "Go Developer",
		JobType:          models.JobTypeFullTime,
		Location:         "Berlin",
		CompanyName:      "Acme",
		Introduction:     "We build things",
		Responsibilities: "Build things",
		Qualifications:   "Go",
		Salary:           90000,
		Niche:            "Backend",
	}
}

func TestJobDataValidate(t *testing.T) {
	t.Run(`valid data check`, func(t *testing.T) {
		require.Nil(t, validJobData().Validate())
	})

	t.Run(`short title rejected check`, func(t *testing.T) {
		data := validJobData()
		data.Title = "Go"
		require.NotNil(t, data.Validate())
	})

	t.Run(`unknown job type rejected check`, func(t *testing.T) {
		data := validJobData()
		data.JobType = "Freelance"
		require.NotNil(t, data.Validate())
	})

	t.Run(`salary must be positive check`, func(t *testing.T) {
		data := validJobData()
		data.Salary = 0
		require.NotNil(t, data.Validate())
	})

	t.Run(`website needs both fields check`, func(t *testing.T) {
		data := validJobData()
		data.PersonalWebsiteTitle = "Careers"
		require.NotNil(t, data.Validate())

		data.PersonalWebsiteURL = "https://acme.example/careers"
		require.Nil(t, data.Validate())
	})

	t.Run(`website url must parse check`, func(t *testing.T) {
		data := validJobData()
		data.PersonalWebsiteTitle = "Careers"
		data.PersonalWebsiteURL = "not a url"
		require.NotNil(t, data.Validate())
	})
}
