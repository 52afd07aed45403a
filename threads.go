package seedui

import "context"
import "sync"

import "golang.org/x/sync/errgroup"

// Anything that runs until its context is done.
type Runner interface {
	Run(ctx context.Context) error
}

// The goroutines of a screen. Runners added before [Threads.Start]
// are launched by it; runners added afterwards start immediately.
// The first runner error cancels the others and is returned by
// [Threads.Stop].
type Threads struct {
	logf func(format string, args ...any)

	mutex sync.Mutex
	runners []Runner
	group *errgroup.Group
	ctx context.Context
	cancel context.CancelFunc
}

// Creates an empty thread group. logf may be nil.
func NewThreads(logf func(format string, args ...any)) *Threads {
	if logf == nil { logf = func(string, ...any) {} }
	return &Threads{ logf: logf }
}

func (self *Threads) Add(runner Runner) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.runners = append(self.runners, runner)
	if self.group != nil { self.launch(runner) }
}

// Number of registered runners.
func (self *Threads) Len() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return len(self.runners)
}

// Launches all registered runners. Calling Start on a started group
// does nothing.
func (self *Threads) Start(ctx context.Context) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.group != nil { return }

	ctx, self.cancel = context.WithCancel(ctx)
	self.group, self.ctx = errgroup.WithContext(ctx)
	for _, runner := range self.runners {
		self.launch(runner)
	}
}

func (self *Threads) launch(runner Runner) {
	ctx := self.ctx
	self.group.Go(func() error {
		err := runner.Run(ctx)
		if err != nil { self.logf("thread stopped: %v", err) }
		return err
	})
}

// Cancels all runners, waits for them and returns the first error.
// The runner list is cleared, so the group can be reused by the
// next screen.
func (self *Threads) Stop() error {
	self.mutex.Lock()
	group, cancel := self.group, self.cancel
	self.group, self.cancel, self.ctx = nil, nil, nil
	self.runners = nil
	self.mutex.Unlock()

	if group == nil { return nil }
	cancel()
	return group.Wait()
}
