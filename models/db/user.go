package dbmodels

import (
	"talent-park-backend/models"

	"github.com/lib/pq"
)

type User struct {
	BaseModel
	Name        string          `gorm:"type:varchar(30)" json:"name"`
	Email       string          `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Phone       string          `gorm:"type:varchar(30)" json:"phone"`
	Address     string          `gorm:"type:varchar(255)" json:"address"`
	Password    string          `gorm:"type:varchar(100)" json:"-"`
	Role        models.UserRole `gorm:"type:varchar(50)" json:"role"`
	Niches      pq.StringArray  `gorm:"type:text[]" json:"niches"`
	CoverLetter string          `json:"cover_letter"`
	Resume      Resume          `gorm:"embedded;embeddedPrefix:resume_" json:"resume"`
}

// Resume is a reference to an uploaded object, not the file itself.
type Resume struct {
	StorageID string `gorm:"type:varchar(255)" json:"storage_id"`
	URL       string `gorm:"type:varchar(1024)" json:"url"`
}

func (r Resume) IsSet() bool {
	return r.StorageID != "" || r.URL != ""
}
