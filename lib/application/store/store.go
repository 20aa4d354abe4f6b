package applicationstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"talent-park-backend/models"
	apimodels "talent-park-backend/models/api"
	dbmodels "talent-park-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (rec *dbmodels.Application, err error)
	ListForEmployer(employerID string, sort apimodels.Sort) (list []dbmodels.Application, err error)
	ListForSeeker(seekerID string, sort apimodels.Sort) (list []dbmodels.Application, err error)
	SetDeletedFlag(id string, byRole models.UserRole) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Create relies on the (job_id, job_seeker_id) unique index to reject a
// concurrent duplicate submission. The caller never needs a separate
// existence check for correctness; the index closes the race.
func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return "", models.ErrDuplicateApplication
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Application, err error) {
	err = i.db.Model(dbmodels.Application{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) ListForEmployer(employerID string, sort apimodels.Sort) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.Model(dbmodels.Application{}).
		Where("employer_id = ?", employerID).
		Where("deleted_by_employer = ?", false).
		Order(orderExpr(sort.CreatedAtDesc)).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListForSeeker(seekerID string, sort apimodels.Sort) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.Model(dbmodels.Application{}).
		Where("job_seeker_id = ?", seekerID).
		Where("deleted_by_seeker = ?", false).
		Order(orderExpr(sort.CreatedAtDesc)).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// SetDeletedFlag flips exactly one actor-side tombstone. The update is
// monotonic, setting an already-true flag is a no-op.
func (i impl) SetDeletedFlag(id string, byRole models.UserRole) error {
	var column string
	switch byRole {
	case models.JobSeekerRole:
		column = "deleted_by_seeker"
	case models.EmployerRole:
		column = "deleted_by_employer"
	default:
		return errors.Errorf("unknown role %q", byRole)
	}
	return i.db.Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Update(column, true).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Application{}).
		Error
}

func orderExpr(desc bool) string {
	if desc {
		return "created_at desc"
	}
	return "created_at asc"
}
