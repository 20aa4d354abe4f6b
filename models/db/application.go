package dbmodels

// Application is jointly owned by the seeker and the employer it references.
// Seeker contact info and the job title are denormalized at submission time so
// the record stays meaningful if the job or user changes later.
//
// The composite unique index on (job_id, job_seeker_id) is what makes the
// existence check in the submit path race-free: a concurrent second writer
// fails on the index instead of producing a duplicate.
type Application struct {
	BaseModel
	JobID    string `gorm:"type:varchar(36);uniqueIndex:idx_job_seeker" json:"job_id"`
	JobTitle string `gorm:"type:varchar(255)" json:"job_title"`

	JobSeekerID      string `gorm:"type:varchar(36);uniqueIndex:idx_job_seeker;index" json:"job_seeker_id"`
	JobSeekerName    string `gorm:"type:varchar(30)" json:"job_seeker_name"`
	JobSeekerEmail   string `gorm:"type:varchar(255)" json:"job_seeker_email"`
	JobSeekerPhone   string `gorm:"type:varchar(30)" json:"job_seeker_phone"`
	JobSeekerAddress string `gorm:"type:varchar(255)" json:"job_seeker_address"`
	CoverLetter      string `json:"cover_letter"`
	Resume           Resume `gorm:"embedded;embeddedPrefix:resume_" json:"resume"`
	EmployerID       string `gorm:"type:varchar(36);index" json:"employer_id"`

	// Tombstone flags, one per owning side. Each is monotonic per actor; the
	// record is physically removed the moment both are true.
	DeletedBySeeker   bool `json:"deleted_by_seeker"`
	DeletedByEmployer bool `json:"deleted_by_employer"`

	// MatchScore is advisory only, 0..100. Nothing in this service computes it.
	MatchScore int `gorm:"check:match_score >= 0 AND match_score <= 100" json:"match_score"`
}

func (a Application) Gone() bool {
	return a.DeletedBySeeker && a.DeletedByEmployer
}
