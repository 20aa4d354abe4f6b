package newsletterworker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"talent-park-backend/models"
	apimodels "talent-park-backend/models/api"
	jobapimodels "talent-park-backend/models/api/job"
	dbmodels "talent-park-backend/models/db"
)

type fakeJobStore struct {
	jobs    []dbmodels.Job
	listErr error
	markErr error

	mu       sync.Mutex
	notified []string
}

func (f *fakeJobStore) Create(rec dbmodels.Job) (string, error) { return rec.ID, nil }
func (f *fakeJobStore) GetByID(id string) (*dbmodels.Job, error) {
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			return &f.jobs[i], nil
		}
	}
	return nil, nil
}
func (f *fakeJobStore) Delete(id string) error { return nil }
func (f *fakeJobStore) List(filter jobapimodels.JobFilter) ([]dbmodels.Job, error) {
	return f.jobs, nil
}
func (f *fakeJobStore) ListByEmployer(employerID string, sort apimodels.Sort) ([]dbmodels.Job, error) {
	return f.jobs, nil
}
func (f *fakeJobStore) ListUnnotified() ([]dbmodels.Job, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	backlog := make([]dbmodels.Job, 0, len(f.jobs))
	for _, rec := range f.jobs {
		if !rec.Notified {
			backlog = append(backlog, rec)
		}
	}
	return backlog, nil
}
func (f *fakeJobStore) MarkNotified(id string) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			f.jobs[i].Notified = true
		}
	}
	f.notified = append(f.notified, id)
	return nil
}

type fakeUsersStore struct {
	seekers []dbmodels.User
	listErr error
}

func (f *fakeUsersStore) Create(rec dbmodels.User) (string, error)                  { return rec.ID, nil }
func (f *fakeUsersStore) Update(userID string, updMap map[string]interface{}) error { return nil }
func (f *fakeUsersStore) GetByID(userID string) (*dbmodels.User, error)             { return nil, nil }
func (f *fakeUsersStore) FindByEmail(email string) (*dbmodels.User, error)          { return nil, nil }
func (f *fakeUsersStore) ExistByEmail(email string) (bool, error)                   { return false, nil }
func (f *fakeUsersStore) ListJobSeekers() ([]dbmodels.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.seekers, nil
}

type fakeEmail struct {
	failFor map[string]bool
	hang    bool

	mu   sync.Mutex
	sent []string
}

func (f *fakeEmail) IsConfigured() bool { return true }
func (f *fakeEmail) SendEMail(to, message, subject string) error {
	if f.hang {
		time.Sleep(time.Second)
		return nil
	}
	if f.failFor[to] {
		return errors.New("connection refused")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	return nil
}

func newsletterJob(id, niche string) dbmodels.Job {
	rec := dbmodels.Job{Title: "Go Developer", CompanyName: "Acme", Location: "Berlin", Salary: 90000, Niche: niche}
	rec.ID = id
	return rec
}

func newsletterSeeker(id, email string, niches ...string) dbmodels.User {
	rec := dbmodels.User{Name: "Sam", Email: email, Role: models.JobSeekerRole, Niches: pq.StringArray(niches)}
	rec.ID = id
	return rec
}

func TestNewsletterTick(t *testing.T) {
	t.Run(`matched recipients get the alert check`, func(t *testing.T) {
		jobs := &fakeJobStore{jobs: []dbmodels.Job{newsletterJob("j1", "Backend")}}
		users := &fakeUsersStore{seekers: []dbmodels.User{
			newsletterSeeker("u1", "a@x.io", "Backend"),
			newsletterSeeker("u2", "b@x.io", "Design"),
		}}
		email := &fakeEmail{}
		j := NewJob(jobs, users, email, time.Second)

		j.handle(context.Background())

		require.Equal(t, []string{"j1"}, jobs.notified)
		require.Equal(t, []string{"a@x.io"}, email.sent)
		reports := j.LastTickReports()
		require.Len(t, reports, 1)
		require.Equal(t, DispatchReport{JobID: "j1", Recipients: 1, Sent: 1, Failed: 0}, reports[0])
	})

	t.Run(`no recipients still marks notified check`, func(t *testing.T) {
		jobs := &fakeJobStore{jobs: []dbmodels.Job{newsletterJob("j1", "Embedded")}}
		users := &fakeUsersStore{seekers: []dbmodels.User{newsletterSeeker("u1", "a@x.io", "Backend")}}
		email := &fakeEmail{}
		j := NewJob(jobs, users, email, time.Second)

		j.handle(context.Background())

		require.Equal(t, []string{"j1"}, jobs.notified)
		require.Empty(t, email.sent)
		reports := j.LastTickReports()
		require.Len(t, reports, 1)
		require.Equal(t, DispatchReport{JobID: "j1", Recipients: 0, Sent: 0, Failed: 0}, reports[0])
	})

	t.Run(`send failures counted but job still marked check`, func(t *testing.T) {
		jobs := &fakeJobStore{jobs: []dbmodels.Job{newsletterJob("j1", "Backend")}}
		users := &fakeUsersStore{seekers: []dbmodels.User{
			newsletterSeeker("u1", "a@x.io", "Backend"),
			newsletterSeeker("u2", "b@x.io", "Backend"),
			newsletterSeeker("u3", "c@x.io", "Backend"),
		}}
		email := &fakeEmail{failFor: map[string]bool{"b@x.io": true}}
		j := NewJob(jobs, users, email, time.Second)

		j.handle(context.Background())

		require.Equal(t, []string{"j1"}, jobs.notified)
		reports := j.LastTickReports()
		require.Len(t, reports, 1)
		require.Equal(t, DispatchReport{JobID: "j1", Recipients: 3, Sent: 2, Failed: 1}, reports[0])
	})

	t.Run(`hung send bounded by timeout check`, func(t *testing.T) {
		jobs := &fakeJobStore{jobs: []dbmodels.Job{newsletterJob("j1", "Backend")}}
		users := &fakeUsersStore{seekers: []dbmodels.User{newsletterSeeker("u1", "a@x.io", "Backend")}}
		email := &fakeEmail{hang: true}
		j := NewJob(jobs, users, email, 10*time.Millisecond)

		started := time.Now()
		j.handle(context.Background())
		require.Less(t, time.Since(started), 500*time.Millisecond)

		require.Equal(t, []string{"j1"}, jobs.notified)
		reports := j.LastTickReports()
		require.Len(t, reports, 1)
		require.Equal(t, 1, reports[0].Failed)
	})

	t.Run(`backlog query failure aborts tick check`, func(t *testing.T) {
		jobs := &fakeJobStore{listErr: errors.New("connection lost")}
		j := NewJob(jobs, &fakeUsersStore{}, &fakeEmail{}, time.Second)

		j.handle(context.Background())

		require.Empty(t, jobs.notified)
	})

	t.Run(`mark failure stops the batch check`, func(t *testing.T) {
		jobs := &fakeJobStore{
			jobs:    []dbmodels.Job{newsletterJob("j1", "Backend"), newsletterJob("j2", "Backend")},
			markErr: errors.New("connection lost"),
		}
		users := &fakeUsersStore{seekers: []dbmodels.User{newsletterSeeker("u1", "a@x.io", "Backend")}}
		email := &fakeEmail{}
		j := NewJob(jobs, users, email, time.Second)

		j.handle(context.Background())

		// only the first job was dispatched before the abort
		require.Equal(t, []string{"a@x.io"}, email.sent)
		require.Empty(t, jobs.notified)
	})

	t.Run(`second tick skips notified jobs check`, func(t *testing.T) {
		jobs := &fakeJobStore{jobs: []dbmodels.Job{newsletterJob("j1", "Backend")}}
		users := &fakeUsersStore{seekers: []dbmodels.User{newsletterSeeker("u1", "a@x.io", "Backend")}}
		email := &fakeEmail{}
		j := NewJob(jobs, users, email, time.Second)

		j.handle(context.Background())
		j.handle(context.Background())

		require.Equal(t, []string{"j1"}, jobs.notified)
		require.Equal(t, []string{"a@x.io"}, email.sent)
		require.Empty(t, j.LastTickReports())
	})
}
