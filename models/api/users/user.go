package userapimodels

import (
	"errors"
	"net/mail"
	"strings"

	"talent-park-backend/models"
	dbmodels "talent-park-backend/models/db"
)

type RegisterRequest struct {
	ProfileData
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

type ProfileData struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	CoverLetter string `json:"cover_letter"`
	FirstNiche  string `json:"first_niche"`
	SecondNiche string `json:"second_niche"`
	ThirdNiche  string `json:"third_niche"`
}

// Niches collapses the three preference slots into an ordered set: blanks and
// duplicates dropped, at most MaxNichePreferences entries.
func (r ProfileData) Niches() []string {
	out := make([]string, 0, models.MaxNichePreferences)
	for _, niche := range []string{r.FirstNiche, r.SecondNiche, r.ThirdNiche} {
		niche = strings.TrimSpace(niche)
		if niche == "" {
			continue
		}
		exist := false
		for _, v := range out {
			if v == niche {
				exist = true
				break
			}
		}
		if !exist {
			out = append(out, niche)
		}
	}
	return out
}

func (r ProfileData) validateCommon() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if len(r.Name) < 3 || len(r.Name) > 30 {
		return errors.New("name must contain 3 to 30 characters")
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
	return nil
}

func (r ProfileData) ValidateForRole(role models.UserRole) error {
	if err := r.validateCommon(); err != nil {
		return err
	}
	switch role {
	case models.JobSeekerRole:
		if r.FirstNiche == "" || r.SecondNiche == "" || r.ThirdNiche == "" {
			return errors.New("please provide your preferred job niches")
		}
	case models.EmployerRole:
		if r.FirstNiche != "" || r.SecondNiche != "" || r.ThirdNiche != "" {
			return errors.New("niche preferences are for job seekers only")
		}
	default:
		return errors.New("unknown role")
	}
	return nil
}

func (r RegisterRequest) Validate() error {
	if !r.Role.IsValid() {
		return errors.New("role must be either Job Seeker or Employer")
	}
	if len(r.Password) < 8 || len(r.Password) > 32 {
		return errors.New("password must contain 8 to 32 characters")
	}
	return r.ProfileData.ValidateForRole(r.Role)
}

type LoginRequest struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return errors.New("email and password are required")
	}
	if !r.Role.IsValid() {
		return errors.New("role is required")
	}
	return nil
}

type UpdatePasswordRequest struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r UpdatePasswordRequest) Validate() error {
	if r.OldPassword == "" {
		return errors.New("old password is required")
	}
	if len(r.NewPassword) < 8 || len(r.NewPassword) > 32 {
		return errors.New("new password must contain 8 to 32 characters")
	}
	if r.NewPassword != r.ConfirmPassword {
		return errors.New("new password and confirm password do not match")
	}
	return nil
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

type UserView struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	Role        models.UserRole `json:"role"`
	Niches      []string        `json:"niches,omitempty"`
	CoverLetter string          `json:"cover_letter,omitempty"`
	ResumeURL   string          `json:"resume_url,omitempty"`
}

func ToUserView(rec dbmodels.User) UserView {
	return UserView{
		ID:          rec.ID,
		Name:        rec.Name,
		Email:       rec.Email,
		Phone:       rec.Phone,
		Address:     rec.Address,
		Role:        rec.Role,
		Niches:      rec.Niches,
		CoverLetter: rec.CoverLetter,
		ResumeURL:   rec.Resume.URL,
	}
}
