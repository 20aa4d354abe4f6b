package jobstore

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	apimodels "talent-park-backend/models/api"
	jobapimodels "talent-park-backend/models/api/job"
	dbmodels "talent-park-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	GetByID(id string) (rec *dbmodels.Job, err error)
	Delete(id string) error
	List(filter jobapimodels.JobFilter) (list []dbmodels.Job, err error)
	ListByEmployer(employerID string, sort apimodels.Sort) (list []dbmodels.Job, err error)
	ListUnnotified() (list []dbmodels.Job, err error)
	MarkNotified(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Job, err error) {
	err = i.db.Model(dbmodels.Job{}).
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

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Job{}).
		Error
}

func (i impl) List(filter jobapimodels.JobFilter) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	tx := i.db.Model(dbmodels.Job{})
	if filter.City != "" {
		tx.Where("location = ?", filter.City)
	}
	if filter.Niche != "" {
		tx.Where("niche = ?", filter.Niche)
	}
	if filter.SearchKeyword != "" {
		pattern := fmt.Sprintf("%%%s%%", filter.SearchKeyword)
		tx.Where("title ILIKE ? OR company_name ILIKE ? OR introduction ILIKE ?", pattern, pattern, pattern)
	}
	tx.Order(orderExpr(filter.Sort.CreatedAtDesc))
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByEmployer(employerID string, sort apimodels.Sort) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	err = i.db.Model(dbmodels.Job{}).
		Where("posted_by_id = ?", employerID).
		Order(orderExpr(sort.CreatedAtDesc)).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListUnnotified returns the newsletter backlog in a fixed discovery order so
// ticks process jobs deterministically.
func (i impl) ListUnnotified() (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	err = i.db.Model(dbmodels.Job{}).
		Where("notified = ?", false).
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkNotified(id string) error {
	return i.db.Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Update("notified", true).
		Error
}

func orderExpr(desc bool) string {
	if desc {
		return "created_at desc"
	}
	return "created_at asc"
}
