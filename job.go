package img2ascii

import (
	"context"

	"github.com/google/uuid"
)

// Job is a conversion running in the background.
type Job struct {
	// ID uniquely identifies the job.
	ID     string
	Params Params

	done   chan struct{}
	cancel context.CancelFunc
	grid   *Grid
	err    error
}

// Start runs Convert on a new goroutine and returns immediately. When the
// conversion finishes, onDone (if not nil) is called from that goroutine
// with the finished job. Cancelling ctx or calling Job.Cancel stops the
// conversion between tiles.
func (c *Converter) Start(ctx context.Context, p Params, onDone func(*Job)) *Job {
	ctx, cancel := context.WithCancel(ctx)
	j := &Job{
		ID:     uuid.NewString(),
		Params: p,
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer cancel()
		j.grid, j.err = c.Convert(ctx, p)
		close(j.done)
		if onDone != nil {
			onDone(j)
		}
	}()

	return j
}

// Done is closed when the job has finished.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Wait blocks until the job finishes and returns its result.
func (j *Job) Wait() (*Grid, error) {
	<-j.done
	return j.grid, j.err
}

// Cancel asks the conversion to stop. It is safe to call more than once
// and after the job has finished.
func (j *Job) Cancel() {
	j.cancel()
}
