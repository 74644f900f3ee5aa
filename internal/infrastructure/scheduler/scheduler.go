package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"admindash/pkg/logger"
)

// Job is a unit of periodic work. It returns how many items it handled.
type Job func(ctx context.Context) (int, error)

type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
}

func NewScheduler(timeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		timeout: timeout,
	}
}

// Add registers job under a standard five-field cron spec or a descriptor
// such as "@hourly".
func (s *Scheduler) Add(name, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.run(name, job)
	})
	if err != nil {
		return err
	}
	logger.Info("Scheduled job %q (%s)", name, spec)
	return nil
}

func (s *Scheduler) run(name string, job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	handled, err := job(ctx)
	if err != nil {
		logger.Error("Scheduled job %q failed: %v", name, err)
		return
	}
	logger.Info("Scheduled job %q done, %d item(s) handled", name, handled)
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for a running job to return.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
