package newsletterworker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	jobstore "talent-park-backend/lib/job/store"
	"talent-park-backend/lib/newsletter"
	"talent-park-backend/lib/smtp"
	usersstore "talent-park-backend/lib/users/store"
	baseworker "talent-park-backend/lib/utils/base-worker"
	"talent-park-backend/lib/utils/helpers"
	dbmodels "talent-park-backend/models/db"
)

const workerName = "NewsletterJob"

// DispatchReport is the per-job outcome of one tick. Failed recipients are
// never retried: the job is marked notified regardless, so the report is the
// only trace of who was missed.
type DispatchReport struct {
	JobID      string
	Recipients int
	Sent       int
	Failed     int
}

func StartWorker(ctx context.Context, conn *gorm.DB, emailProvider smtp.Provider,
	firstRunDelay, runInterval, sendTimeout time.Duration) *Job {
	job := NewJob(jobstore.NewInstance(conn), usersstore.NewInstance(conn), emailProvider, sendTimeout)
	worker := baseworker.NewInstance(workerName, firstRunDelay, runInterval)
	job.worker = worker
	worker.Start(ctx, job.handle)
	return job
}

func NewJob(jobs jobstore.Provider, users usersstore.Provider, emailProvider smtp.Provider, sendTimeout time.Duration) *Job {
	return &Job{
		jobStore:      jobs,
		usersStore:    users,
		emailProvider: emailProvider,
		sendTimeout:   sendTimeout,
	}
}

type Job struct {
	jobStore      jobstore.Provider
	usersStore    usersstore.Provider
	emailProvider smtp.Provider
	sendTimeout   time.Duration
	worker        *baseworker.BaseImpl

	mu          sync.Mutex
	lastReports []DispatchReport
}

func (j *Job) Stop() {
	if j.worker != nil {
		j.worker.Stop()
	}
}

// LastTickReports returns the dispatch reports of the most recent tick.
func (j *Job) LastTickReports() []DispatchReport {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]DispatchReport, len(j.lastReports))
	copy(out, j.lastReports)
	return out
}

func (j *Job) getLogger() *log.Entry {
	return log.WithField("worker_name", workerName)
}

// handle is one tick. Jobs are processed sequentially in discovery order;
// a store failure aborts the tick and leaves unreached jobs for the next one.
func (j *Job) handle(ctx context.Context) {
	logger := j.getLogger()
	jobs, err := j.jobStore.ListUnnotified()
	if err != nil {
		logger.WithError(err).Error("failed to query unnotified jobs, tick aborted")
		return
	}
	reports := make([]DispatchReport, 0, len(jobs))
	defer func() {
		j.mu.Lock()
		j.lastReports = reports
		j.mu.Unlock()
	}()
	for _, jobRec := range jobs {
		if helpers.IsContextDone(ctx) {
			return
		}
		seekers, err := j.usersStore.ListJobSeekers()
		if err != nil {
			logger.WithError(err).Error("failed to query job seekers, tick aborted")
			return
		}
		recipients := newsletter.Match(jobRec.Niche, seekers)
		report := j.dispatch(jobRec, recipients)
		reports = append(reports, report)
		logger.WithField("job_id", jobRec.ID).
			WithField("recipients", report.Recipients).
			WithField("sent", report.Sent).
			WithField("failed", report.Failed).
			Info("newsletter batch finished")
		// the flag is set even when every send failed: best effort, no retry
		if err = j.jobStore.MarkNotified(jobRec.ID); err != nil {
			logger.WithError(err).
				WithField("job_id", jobRec.ID).
				Error("failed to mark job notified, tick aborted")
			return
		}
	}
}

// dispatch fans out one send per recipient and waits for the whole batch.
// Individual failures are logged and counted, nothing else.
func (j *Job) dispatch(jobRec dbmodels.Job, recipients []dbmodels.User) DispatchReport {
	report := DispatchReport{
		JobID:      jobRec.ID,
		Recipients: len(recipients),
	}
	if len(recipients) == 0 {
		return report
	}
	subject := fmt.Sprintf("Hot Job Alert: %s in %s", jobRec.Title, jobRec.Niche)
	var wg sync.WaitGroup
	var sent, failed atomic.Int64
	for _, recipient := range recipients {
		wg.Add(1)
		go func(recipient dbmodels.User) {
			defer wg.Done()
			err := j.sendWithTimeout(recipient.Email, newsletterMessage(jobRec, recipient.Name), subject)
			if err != nil {
				failed.Add(1)
				j.getLogger().WithError(err).
					WithField("job_id", jobRec.ID).
					WithField("recipient", recipient.Email).
					Error("newsletter send failed")
				return
			}
			sent.Add(1)
		}(recipient)
	}
	wg.Wait()
	report.Sent = int(sent.Load())
	report.Failed = int(failed.Load())
	return report
}

// sendWithTimeout bounds each dispatch so a hung SMTP session cannot stall
// the tick. A timeout counts as an ordinary per-recipient failure.
func (j *Job) sendWithTimeout(to, message, subject string) error {
	done := make(chan error, 1)
	go func() {
		done <- j.emailProvider.SendEMail(to, message, subject)
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(j.sendTimeout):
		return errors.Errorf("send to %s timed out after %s", to, j.sendTimeout)
	}
}

func newsletterMessage(jobRec dbmodels.Job, name string) string {
	return fmt.Sprintf("Hi %s,\n\nA new job matching your niche is available:\n"+
		"- Position: %s\n- Company: %s\n- Location: %s\n- Salary: %d\n\n"+
		"Apply now!\n\nBest,\nTalent Park Team",
		name, jobRec.Title, jobRec.CompanyName, jobRec.Location, jobRec.Salary)
}
