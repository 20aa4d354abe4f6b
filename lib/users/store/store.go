package usersstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"talent-park-backend/models"
	dbmodels "talent-park-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (id string, err error)
	Update(userID string, updMap map[string]interface{}) error
	GetByID(userID string) (rec *dbmodels.User, err error)
	FindByEmail(email string) (rec *dbmodels.User, err error)
	ExistByEmail(email string) (bool, error)
	ListJobSeekers() (list []dbmodels.User, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", userID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("user not found")
	}
	return nil
}

func (i impl) GetByID(userID string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("id = ?", userID).
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

func (i impl) FindByEmail(email string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("email = ?", email).
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

func (i impl) ExistByEmail(email string) (bool, error) {
	var count int64
	err := i.db.Model(dbmodels.User{}).
		Where("email = ?", email).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) ListJobSeekers() (list []dbmodels.User, err error) {
	list = []dbmodels.User{}
	err = i.db.Model(dbmodels.User{}).
		Where("role = ?", models.JobSeekerRole).
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
