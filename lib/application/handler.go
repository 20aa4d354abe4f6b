package applicationhandler

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	applicationstore "talent-park-backend/lib/application/store"
	filestorage "talent-park-backend/lib/file-storage"
	jobstore "talent-park-backend/lib/job/store"
	usersstore "talent-park-backend/lib/users/store"
	"talent-park-backend/models"
	apimodels "talent-park-backend/models/api"
	applicationapimodels "talent-park-backend/models/api/application"
	dbmodels "talent-park-backend/models/db"
)

type Provider interface {
	Submit(ctx context.Context, jobID, seekerID string, data applicationapimodels.SubmitData, resume *filestorage.ResumeUpload) (applicationapimodels.ApplicationView, error)
	ListForEmployer(employerID string, sort apimodels.Sort) (list []applicationapimodels.ApplicationView, err error)
	ListForSeeker(seekerID string, sort apimodels.Sort) (list []applicationapimodels.ApplicationView, err error)
	SoftDelete(applicationID, actorID string, actorRole models.UserRole) error
}

var Instance Provider

func NewHandler(conn *gorm.DB, fileStorage filestorage.Provider) {
	Instance = impl{
		store:       applicationstore.NewInstance(conn),
		jobStore:    jobstore.NewInstance(conn),
		usersStore:  usersstore.NewInstance(conn),
		fileStorage: fileStorage,
	}
}

// NewInstance builds a handler over explicit store providers.
func NewInstance(store applicationstore.Provider, jobStore jobstore.Provider,
	usersStore usersstore.Provider, fileStorage filestorage.Provider) Provider {
	return impl{
		store:       store,
		jobStore:    jobStore,
		usersStore:  usersStore,
		fileStorage: fileStorage,
	}
}

type impl struct {
	store       applicationstore.Provider
	jobStore    jobstore.Provider
	usersStore  usersstore.Provider
	fileStorage filestorage.Provider
}

// Submit creates the application with the job title and owning employer
// snapshotted at this instant. The store's unique (job, seeker) index is the
// real duplicate guard; the upfront existence check only keeps the common
// path from uploading a resume it would then throw away.
func (i impl) Submit(ctx context.Context, jobID, seekerID string, data applicationapimodels.SubmitData, resume *filestorage.ResumeUpload) (applicationapimodels.ApplicationView, error) {
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, errors.Wrap(err, "failed to get job")
	}
	if job == nil {
		return applicationapimodels.ApplicationView{}, errors.Wrap(models.ErrNotFound, "job not found")
	}
	seeker, err := i.usersStore.GetByID(seekerID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, errors.Wrap(err, "failed to get job seeker")
	}
	if seeker == nil {
		return applicationapimodels.ApplicationView{}, errors.Wrap(models.ErrNotFound, "job seeker not found")
	}
	existing, err := i.store.ListForSeeker(seekerID, apimodels.Sort{})
	if err != nil {
		return applicationapimodels.ApplicationView{}, errors.Wrap(err, "failed to check existing applications")
	}
	for _, rec := range existing {
		if rec.JobID == jobID {
			return applicationapimodels.ApplicationView{}, models.ErrDuplicateApplication
		}
	}

	var resumeRef dbmodels.Resume
	switch {
	case resume != nil:
		resumeRef, err = i.fileStorage.UploadResume(ctx, seekerID, resume.FileName, resume.Reader, resume.Size)
		if err != nil {
			return applicationapimodels.ApplicationView{}, err
		}
	case seeker.Resume.IsSet():
		// reference copied over, the profile resume is not re-uploaded
		resumeRef = seeker.Resume
	default:
		return applicationapimodels.ApplicationView{}, models.ErrMissingResume
	}

	rec := dbmodels.Application{
		JobID:            jobID,
		JobTitle:         job.Title,
		JobSeekerID:      seekerID,
		JobSeekerName:    data.Name,
		JobSeekerEmail:   data.Email,
		JobSeekerPhone:   data.Phone,
		JobSeekerAddress: data.Address,
		CoverLetter:      data.CoverLetter,
		Resume:           resumeRef,
		EmployerID:       job.PostedByID,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateApplication) {
			return applicationapimodels.ApplicationView{}, err
		}
		return applicationapimodels.ApplicationView{}, errors.Wrap(err, "failed to create application")
	}
	rec.ID = id
	return applicationapimodels.ToApplicationView(rec), nil
}

func (i impl) ListForEmployer(employerID string, sort apimodels.Sort) (list []applicationapimodels.ApplicationView, err error) {
	recs, err := i.store.ListForEmployer(employerID, sort)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}
	return toViews(recs), nil
}

func (i impl) ListForSeeker(seekerID string, sort apimodels.Sort) (list []applicationapimodels.ApplicationView, err error) {
	recs, err := i.store.ListForSeeker(seekerID, sort)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}
	return toViews(recs), nil
}

// SoftDelete walks the tombstone state machine: Active ->
// PartiallyDeleted{role} -> Gone. An actor can only ever flip its own flag,
// repeating the call is a no-op, and the record is physically removed the
// moment both flags are true.
func (i impl) SoftDelete(applicationID, actorID string, actorRole models.UserRole) error {
	rec, err := i.store.GetByID(applicationID)
	if err != nil {
		return errors.Wrap(err, "failed to get application")
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "application not found")
	}

	var alreadySet bool
	switch actorRole {
	case models.JobSeekerRole:
		if rec.JobSeekerID != actorID {
			return models.ErrUnauthorized
		}
		alreadySet = rec.DeletedBySeeker
	case models.EmployerRole:
		if rec.EmployerID != actorID {
			return models.ErrUnauthorized
		}
		alreadySet = rec.DeletedByEmployer
	default:
		return models.ErrUnauthorized
	}

	if !alreadySet {
		if err = i.store.SetDeletedFlag(applicationID, actorRole); err != nil {
			return errors.Wrap(err, "failed to mark application deleted")
		}
	}

	// reload so a counterpart delete that landed in between is observed
	rec, err = i.store.GetByID(applicationID)
	if err != nil {
		return errors.Wrap(err, "failed to reload application")
	}
	if rec != nil && rec.Gone() {
		if err = i.store.Delete(applicationID); err != nil {
			return errors.Wrap(err, "failed to remove application")
		}
		log.WithField("application_id", applicationID).
			Info("application removed after both parties deleted it")
	}
	return nil
}

func toViews(recs []dbmodels.Application) []applicationapimodels.ApplicationView {
	list := make([]applicationapimodels.ApplicationView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, applicationapimodels.ToApplicationView(rec))
	}
	return list
}
