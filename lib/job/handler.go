package jobhandler

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	jobstore "talent-park-backend/lib/job/store"
	"talent-park-backend/models"
	apimodels "talent-park-backend/models/api"
	jobapimodels "talent-park-backend/models/api/job"
	dbmodels "talent-park-backend/models/db"
)

type Provider interface {
	Create(employerID string, data jobapimodels.JobData) (id string, err error)
	GetByID(id string) (jobapimodels.JobView, error)
	List(filter jobapimodels.JobFilter) (list []jobapimodels.JobView, err error)
	ListMy(employerID string, sort apimodels.Sort) (list []jobapimodels.JobView, err error)
	Delete(id, employerID string) error
}

var Instance Provider

func NewHandler(conn *gorm.DB) {
	Instance = impl{
		store: jobstore.NewInstance(conn),
	}
}

type impl struct {
	store jobstore.Provider
}

func (i impl) Create(employerID string, data jobapimodels.JobData) (id string, err error) {
	rec := dbmodels.Job{
		Title:                    data.Title,
		JobType:                  data.JobType,
		Location:                 data.Location,
		CompanyName:              data.CompanyName,
		Introduction:             data.Introduction,
		Responsibilities:         data.Responsibilities,
		Qualifications:           data.Qualifications,
		Offers:                   data.Offers,
		Salary:                   data.Salary,
		HiringMultipleCandidates: data.HiringMultipleCandidates,
		PersonalWebsite: dbmodels.PersonalWebsite{
			Title: data.PersonalWebsiteTitle,
			URL:   data.PersonalWebsiteURL,
		},
		Niche:      data.Niche,
		Notified:   false,
		PostedOn:   time.Now(),
		PostedByID: employerID,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to create job")
	}
	return id, nil
}

func (i impl) GetByID(id string) (jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return jobapimodels.JobView{}, errors.Wrap(err, "failed to get job")
	}
	if rec == nil {
		return jobapimodels.JobView{}, models.ErrNotFound
	}
	return jobapimodels.ToJobView(*rec), nil
}

func (i impl) List(filter jobapimodels.JobFilter) (list []jobapimodels.JobView, err error) {
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}
	list = make([]jobapimodels.JobView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, jobapimodels.ToJobView(rec))
	}
	return list, nil
}

func (i impl) ListMy(employerID string, sort apimodels.Sort) (list []jobapimodels.JobView, err error) {
	recs, err := i.store.ListByEmployer(employerID, sort)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employer jobs")
	}
	list = make([]jobapimodels.JobView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, jobapimodels.ToJobView(rec))
	}
	return list, nil
}

func (i impl) Delete(id, employerID string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "failed to get job")
	}
	if rec == nil {
		return models.ErrNotFound
	}
	if rec.PostedByID != employerID {
		return models.ErrUnauthorized
	}
	if err = i.store.Delete(id); err != nil {
		return errors.Wrap(err, "failed to delete job")
	}
	return nil
}
