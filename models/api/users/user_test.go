package userapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"talent-park-backend/models"
)

func validSeekerRegister() RegisterRequest {
	return RegisterRequest{
		ProfileData: ProfileData{
			Name:        "Sam Carter",
			Email:       "sam@x.io",
			Phone:       "+491700000000",
			Address:     "Berlin",
			FirstNiche:  "Backend",
			SecondNiche: "DevOps",
			ThirdNiche:  "SRE",
		},
		Password: "secret-password",
		Role:     models.JobSeekerRole,
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	t.Run(`valid requests check`, func(t *testing.T) {
		require.Nil(t, validSeekerRegister().Validate())

		employer := validSeekerRegister()
		employer.Role = models.EmployerRole
		employer.FirstNiche, employer.SecondNiche, employer.ThirdNiche = "", "", ""
		require.Nil(t, employer.Validate())
	})

	t.Run(`unknown role rejected check`, func(t *testing.T) {
		req := validSeekerRegister()
		req.Role = "ADMIN_ROLE"
		require.NotNil(t, req.Validate())
	})

	t.Run(`password bounds check`, func(t *testing.T) {
		req := validSeekerRegister()
		req.Password = "short"
		require.NotNil(t, req.Validate())
		req.Password = "12345678"
		require.Nil(t, req.Validate())
	})

	t.Run(`seeker needs all three niches check`, func(t *testing.T) {
		req := validSeekerRegister()
		req.ThirdNiche = ""
		require.NotNil(t, req.Validate())
	})

	t.Run(`employer must not carry niches check`, func(t *testing.T) {
		req := validSeekerRegister()
		req.Role = models.EmployerRole
		require.NotNil(t, req.Validate())
	})

	t.Run(`bad email rejected check`, func(t *testing.T) {
		req := validSeekerRegister()
		req.Email = "not-an-email"
		require.NotNil(t, req.Validate())
	})
}

func TestProfileDataNiches(t *testing.T) {
	t.Run(`blanks and duplicates dropped check`, func(t *testing.T) {
		data := ProfileData{FirstNiche: " Backend ", SecondNiche: "", ThirdNiche: "Backend"}
		require.Equal(t, []string{"Backend"}, data.Niches())
	})

	t.Run(`order preserved check`, func(t *testing.T) {
		data := ProfileData{FirstNiche: "Backend", SecondNiche: "DevOps", ThirdNiche: "SRE"}
		require.Equal(t, []string{"Backend", "DevOps", "SRE"}, data.Niches())
	})
}

func TestUpdatePasswordRequestValidate(t *testing.T) {
	t.Run(`mismatch rejected check`, func(t *testing.T) {
		req := UpdatePasswordRequest{OldPassword: "old-password", NewPassword: "new-password", ConfirmPassword: "other"}
		require.NotNil(t, req.Validate())
		req.ConfirmPassword = "new-password"
		require.Nil(t, req.Validate())
	})

	t.Run(`old password required check`, func(t *testing.T) {
		req := UpdatePasswordRequest{NewPassword: "new-password", ConfirmPassword: "new-password"}
		require.NotNil(t, req.Validate())
	})
}
