package models

type UserRole string

const (
	JobSeekerRole UserRole = "JOB_SEEKER_ROLE"
	EmployerRole  UserRole = "EMPLOYER_ROLE"
)

var roleHumanName = map[UserRole]string{
	JobSeekerRole: "Job Seeker",
	EmployerRole:  "Employer",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	switch r {
	case JobSeekerRole, EmployerRole:
		return true
	}
	return false
}

type JobType string

const (
	JobTypeFullTime JobType = "Full-time"
	JobTypePartTime JobType = "Part-time"
)

func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime:
		return true
	}
	return false
}

// MaxNichePreferences is the number of niche slots a job seeker may fill.
const MaxNichePreferences = 3
