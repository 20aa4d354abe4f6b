package applicationhandler

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	filestorage "talent-park-backend/lib/file-storage"
	"talent-park-backend/models"
	apimodels "talent-park-backend/models/api"
	applicationapimodels "talent-park-backend/models/api/application"
	jobapimodels "talent-park-backend/models/api/job"
	dbmodels "talent-park-backend/models/db"
)

type fakeApplicationStore struct {
	recs      map[string]*dbmodels.Application
	createErr error
	nextID    string
}

func (f *fakeApplicationStore) Create(rec dbmodels.Application) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	for _, existing := range f.recs {
		if existing.JobID == rec.JobID && existing.JobSeekerID == rec.JobSeekerID {
			return "", models.ErrDuplicateApplication
		}
	}
	rec.ID = f.nextID
	if rec.ID == "" {
		rec.ID = "app-1"
	}
	if f.recs == nil {
		f.recs = map[string]*dbmodels.Application{}
	}
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeApplicationStore) GetByID(id string) (*dbmodels.Application, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	clone := *rec
	return &clone, nil
}

func (f *fakeApplicationStore) ListForEmployer(employerID string, sort apimodels.Sort) ([]dbmodels.Application, error) {
	list := []dbmodels.Application{}
	for _, rec := range f.recs {
		if rec.EmployerID == employerID && !rec.DeletedByEmployer {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakeApplicationStore) ListForSeeker(seekerID string, sort apimodels.Sort) ([]dbmodels.Application, error) {
	list := []dbmodels.Application{}
	for _, rec := range f.recs {
		if rec.JobSeekerID == seekerID && !rec.DeletedBySeeker {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakeApplicationStore) SetDeletedFlag(id string, byRole models.UserRole) error {
	rec, ok := f.recs[id]
	if !ok {
		return nil
	}
	switch byRole {
	case models.JobSeekerRole:
		rec.DeletedBySeeker = true
	case models.EmployerRole:
		rec.DeletedByEmployer = true
	}
	return nil
}

func (f *fakeApplicationStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

type stubJobStore struct {
	rec *dbmodels.Job
}

func (s *stubJobStore) Create(rec dbmodels.Job) (string, error) { return rec.ID, nil }
func (s *stubJobStore) GetByID(id string) (*dbmodels.Job, error) {
	if s.rec != nil && s.rec.ID == id {
		return s.rec, nil
	}
	return nil, nil
}
func (s *stubJobStore) Delete(id string) error { return nil }
func (s *stubJobStore) List(filter jobapimodels.JobFilter) ([]dbmodels.Job, error) {
	return nil, nil
}
func (s *stubJobStore) ListByEmployer(employerID string, sort apimodels.Sort) ([]dbmodels.Job, error) {
	return nil, nil
}
func (s *stubJobStore) ListUnnotified() ([]dbmodels.Job, error) { return nil, nil }
func (s *stubJobStore) MarkNotified(id string) error            { return nil }

type stubUsersStore struct {
	rec *dbmodels.User
}

func (s *stubUsersStore) Create(rec dbmodels.User) (string, error)                  { return rec.ID, nil }
func (s *stubUsersStore) Update(userID string, updMap map[string]interface{}) error { return nil }
func (s *stubUsersStore) GetByID(userID string) (*dbmodels.User, error) {
	if s.rec != nil && s.rec.ID == userID {
		return s.rec, nil
	}
	return nil, nil
}
func (s *stubUsersStore) FindByEmail(email string) (*dbmodels.User, error) { return nil, nil }
func (s *stubUsersStore) ExistByEmail(email string) (bool, error)          { return false, nil }
func (s *stubUsersStore) ListJobSeekers() ([]dbmodels.User, error)         { return nil, nil }

type fakeFileStorage struct {
	uploads int
	deleted []string
}

func (f *fakeFileStorage) UploadResume(ctx context.Context, userID, fileName string, fileReader io.Reader, fileSize int64) (dbmodels.Resume, error) {
	f.uploads++
	return dbmodels.Resume{StorageID: "resumes/" + userID + "/new", URL: "http://s3/resumes/" + userID + "/new"}, nil
}

func (f *fakeFileStorage) DeleteResume(ctx context.Context, storageID string) error {
	f.deleted = append(f.deleted, storageID)
	return nil
}

func testJob() *dbmodels.Job {
	rec := &dbmodels.Job{Title: "Go Developer", PostedByID: "emp-1", Niche: "Backend"}
	rec.ID = "job-1"
	return rec
}

func testSeeker(withResume bool) *dbmodels.User {
	rec := &dbmodels.User{Name: "Sam", Email: "sam@x.io", Role: models.JobSeekerRole}
	rec.ID = "seeker-1"
	if withResume {
		rec.Resume = dbmodels.Resume{StorageID: "resumes/seeker-1/profile", URL: "http://s3/resumes/seeker-1/profile"}
	}
	return rec
}

func submitData() applicationapimodels.SubmitData {
	return applicationapimodels.SubmitData{
		Name:        "Sam",
		Email:       "sam@x.io",
		Phone:       "+491700000000",
		Address:     "Berlin",
		CoverLetter: "I want this job",
	}
}

func TestSubmit(t *testing.T) {
	t.Run(`snapshot fields filled check`, func(t *testing.T) {
		store := &fakeApplicationStore{}
		h := NewInstance(store, &stubJobStore{rec: testJob()}, &stubUsersStore{rec: testSeeker(true)}, &fakeFileStorage{})

		view, err := h.Submit(context.Background(), "job-1", "seeker-1", submitData(), nil)
		require.Nil(t, err)
		require.Equal(t, "job-1", view.JobID)
		require.Equal(t, "Go Developer", view.JobTitle)
		require.Equal(t, "emp-1", view.EmployerID)
		require.Equal(t, "Sam", view.JobSeekerName)
		require.Equal(t, "http://s3/resumes/seeker-1/profile", view.ResumeURL)
	})

	t.Run(`attached resume uploaded check`, func(t *testing.T) {
		store := &fakeApplicationStore{}
		storage := &fakeFileStorage{}
		h := NewInstance(store, &stubJobStore{rec: testJob()}, &stubUsersStore{rec: testSeeker(true)}, storage)

		upload := &filestorage.ResumeUpload{FileName: "cv.pdf", Reader: strings.NewReader("pdf"), Size: 3}
		view, err := h.Submit(context.Background(), "job-1", "seeker-1", submitData(), upload)
		require.Nil(t, err)
		require.Equal(t, 1, storage.uploads)
		require.Equal(t, "http://s3/resumes/seeker-1/new", view.ResumeURL)
	})

	t.Run(`no resume at all rejected check`, func(t *testing.T) {
		h := NewInstance(&fakeApplicationStore{}, &stubJobStore{rec: testJob()}, &stubUsersStore{rec: testSeeker(false)}, &fakeFileStorage{})

		_, err := h.Submit(context.Background(), "job-1", "seeker-1", submitData(), nil)
		require.ErrorIs(t, err, models.ErrMissingResume)
	})

	t.Run(`second application rejected check`, func(t *testing.T) {
		store := &fakeApplicationStore{}
		h := NewInstance(store, &stubJobStore{rec: testJob()}, &stubUsersStore{rec: testSeeker(true)}, &fakeFileStorage{})

		_, err := h.Submit(context.Background(), "job-1", "seeker-1", submitData(), nil)
		require.Nil(t, err)
		_, err = h.Submit(context.Background(), "job-1", "seeker-1", submitData(), nil)
		require.ErrorIs(t, err, models.ErrDuplicateApplication)
	})

	t.Run(`unknown job rejected check`, func(t *testing.T) {
		h := NewInstance(&fakeApplicationStore{}, &stubJobStore{}, &stubUsersStore{rec: testSeeker(true)}, &fakeFileStorage{})

		_, err := h.Submit(context.Background(), "job-9", "seeker-1", submitData(), nil)
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestSoftDelete(t *testing.T) {
	seed := func() (*fakeApplicationStore, Provider) {
		store := &fakeApplicationStore{}
		h := NewInstance(store, &stubJobStore{rec: testJob()}, &stubUsersStore{rec: testSeeker(true)}, &fakeFileStorage{})
		_, err := h.Submit(context.Background(), "job-1", "seeker-1", submitData(), nil)
		if err != nil {
			panic(err)
		}
		return store, h
	}

	t.Run(`seeker delete hides from seeker only check`, func(t *testing.T) {
		store, h := seed()
		require.Nil(t, h.SoftDelete("app-1", "seeker-1", models.JobSeekerRole))

		seekerList, err := h.ListForSeeker("seeker-1", apimodels.Sort{})
		require.Nil(t, err)
		require.Empty(t, seekerList)

		employerList, err := h.ListForEmployer("emp-1", apimodels.Sort{})
		require.Nil(t, err)
		require.Len(t, employerList, 1)
		require.NotNil(t, store.recs["app-1"])
	})

	t.Run(`both deletes remove the record check`, func(t *testing.T) {
		store, h := seed()
		require.Nil(t, h.SoftDelete("app-1", "seeker-1", models.JobSeekerRole))
		require.Nil(t, h.SoftDelete("app-1", "emp-1", models.EmployerRole))
		require.Nil(t, store.recs["app-1"])
	})

	t.Run(`order does not matter check`, func(t *testing.T) {
		store, h := seed()
		require.Nil(t, h.SoftDelete("app-1", "emp-1", models.EmployerRole))
		require.Nil(t, h.SoftDelete("app-1", "seeker-1", models.JobSeekerRole))
		require.Nil(t, store.recs["app-1"])
	})

	t.Run(`repeat delete is a no-op check`, func(t *testing.T) {
		store, h := seed()
		require.Nil(t, h.SoftDelete("app-1", "seeker-1", models.JobSeekerRole))
		require.Nil(t, h.SoftDelete("app-1", "seeker-1", models.JobSeekerRole))
		require.NotNil(t, store.recs["app-1"])
		require.True(t, store.recs["app-1"].DeletedBySeeker)
		require.False(t, store.recs["app-1"].DeletedByEmployer)
	})

	t.Run(`stranger cannot delete check`, func(t *testing.T) {
		_, h := seed()
		err := h.SoftDelete("app-1", "someone-else", models.JobSeekerRole)
		require.ErrorIs(t, err, models.ErrUnauthorized)
		err = h.SoftDelete("app-1", "someone-else", models.EmployerRole)
		require.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run(`missing record check`, func(t *testing.T) {
		_, h := seed()
		err := h.SoftDelete("nope", "seeker-1", models.JobSeekerRole)
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}
