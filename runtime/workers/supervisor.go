package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cloudmeet-client/contract"
	"cloudmeet-client/errors"
)

const waitTimeBeforeRestart = 200 * time.Millisecond

// Supervisor owns the pollers of one page. Each worker runs in its own
// goroutine; a panicking worker is recovered and restarted, so one bad
// tick never kills the other sections of the page. Stopping the
// supervisor cancels only its own children, never the parent context.
type Supervisor struct {
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	log     *slog.Logger
	workers []contract.Worker
}

func NewSupervisor(log *slog.Logger) *Supervisor {
	return &Supervisor{log: log}
}

func (s *Supervisor) Add(worker ...contract.Worker) *Supervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Start launches every added worker under a local cancellation trigger
// tied to the parent ctx, and returns immediately. If the parent
// cancels, the children cancel; if Stop is called, only the children do.
func (s *Supervisor) Start(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for _, worker := range s.workers {
		s.launch(supervisedCtx, worker)
	}
}

// launch runs one worker under supervision. If its Run method panics,
// the supervisor recovers and restarts it after a short delay. A worker
// that returns without error is finished and never restarted.
func (s *Supervisor) launch(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	workerName := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()

		for {
			if ctx.Err() != nil {
				s.log.Debug("Stopping worker", "name", workerName)
				return
			}

			err := func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = errors.ErrWorkerPanic
					}
				}()
				return worker.Run(ctx)
			}()

			if err == nil {
				s.log.Debug("Worker finished", "name", workerName)
				return
			}
			if ctx.Err() != nil {
				s.log.Debug("Worker stopped (context canceled)", "name", workerName)
				return
			}

			s.log.Warn("Worker crashed, restarting", "name", workerName, "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(waitTimeBeforeRestart):
			}
		}
	}()
}

// Stop cancels all children and waits for their goroutines to exit.
func (s *Supervisor) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}
