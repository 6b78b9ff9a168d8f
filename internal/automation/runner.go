package automation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sorabatch/sora-batch/internal/model"
)

// TaskRunner executes single tasks against one browser session.
type TaskRunner interface {
	NeedsLogin(ctx context.Context) (bool, error)
	WaitForLogin(ctx context.Context) error
	RunTask(ctx context.Context, task *model.Task) (string, error)
	Close() error
}

// RunnerFactory opens a task runner bound to the named browser profile.
type RunnerFactory func(profile string) (TaskRunner, error)

// ResultWriter records task outcomes back into the workbook.
type ResultWriter interface {
	UpdateResult(row int, status model.TaskStatus, result string) error
	UpdateOutputPath(row int, outputPath string) error
}

// Service runs the loaded tasks across one or more browser sessions
type Service struct {
	tasks      map[int]*model.Task
	taskOrder  []int
	tasksMutex sync.RWMutex

	browserCount int
	profile      string
	taskDelay    time.Duration

	newRunner RunnerFactory
	writer    ResultWriter
	writerMu  sync.Mutex
	logger    *zap.SugaredLogger

	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	onUpdate        func(*model.Task)           // callback for UI updates
	onLog           func(string)                // callback for the UI log pane
	onLoginRequired func(profile string)        // callback when a manual login is needed
	onFinished      func(completed, failed int) // callback when the whole run ends
}

// NewService creates a new automation service
func NewService(newRunner RunnerFactory, writer ResultWriter, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{
		tasks:        make(map[int]*model.Task),
		newRunner:    newRunner,
		writer:       writer,
		logger:       logger,
		browserCount: 1,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.Task)) {
	s.onUpdate = callback
}

// SetLogCallback sets the callback for human-readable progress lines
func (s *Service) SetLogCallback(callback func(string)) {
	s.onLog = callback
}

// SetLoginRequiredCallback sets the callback fired when a profile needs
// a manual login before tasks can run
func (s *Service) SetLoginRequiredCallback(callback func(profile string)) {
	s.onLoginRequired = callback
}

// SetFinishedCallback sets the callback fired when a run completes
func (s *Service) SetFinishedCallback(callback func(completed, failed int)) {
	s.onFinished = callback
}

// SetWriter sets the workbook the run records results into
func (s *Service) SetWriter(writer ResultWriter) {
	s.writerMu.Lock()
	defer s.writerMu.Unlock()
	s.writer = writer
}

// SetTasks replaces the task list for the next run
func (s *Service) SetTasks(tasks []*model.Task) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	s.tasks = make(map[int]*model.Task, len(tasks))
	s.taskOrder = make([]int, 0, len(tasks))
	for _, task := range tasks {
		s.tasks[task.Row] = task
		s.taskOrder = append(s.taskOrder, task.Row)
	}
}

// GetAllTasks returns the tasks in workbook row order
func (s *Service) GetAllTasks() []*model.Task {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.Task, 0, len(s.taskOrder))
	for _, row := range s.taskOrder {
		tasks = append(tasks, s.tasks[row])
	}
	return tasks
}

// GetTask returns a task by workbook row
func (s *Service) GetTask(row int) (*model.Task, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[row]
	return task, exists
}

// IsRunning reports whether a run is in progress
func (s *Service) IsRunning() bool {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return s.running
}

// Configure sets the run parameters for the next Start
func (s *Service) Configure(profile string, browserCount int, taskDelay time.Duration) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.profile = profile
	if browserCount < 1 {
		browserCount = 1
	}
	s.browserCount = browserCount
	s.taskDelay = taskDelay
}

// Start begins processing the pending tasks in the background
func (s *Service) Start() error {
	s.tasksMutex.Lock()
	if s.running {
		s.tasksMutex.Unlock()
		return fmt.Errorf("a run is already in progress")
	}
	if len(s.taskOrder) == 0 {
		s.tasksMutex.Unlock()
		return fmt.Errorf("no tasks loaded")
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.running = true
	s.cancel = cancel
	s.done = make(chan struct{})
	browserCount := s.browserCount
	s.tasksMutex.Unlock()

	go func() {
		defer close(s.done)
		defer func() {
			s.tasksMutex.Lock()
			s.running = false
			s.cancel = nil
			s.tasksMutex.Unlock()
		}()

		if browserCount <= 1 {
			s.runSerial(ctx)
		} else {
			s.runPool(ctx, browserCount)
		}
		s.notifyFinished()
	}()
	return nil
}

// Stop requests a graceful stop. The current task finishes or fails,
// remaining pending tasks are marked stopped.
func (s *Service) Stop() {
	s.tasksMutex.RLock()
	cancel := s.cancel
	s.tasksMutex.RUnlock()
	if cancel != nil {
		cancel()
	}
}

// Wait blocks until the current run ends. Used in tests.
func (s *Service) Wait() {
	s.tasksMutex.RLock()
	done := s.done
	s.tasksMutex.RUnlock()
	if done != nil {
		<-done
	}
}

// runSerial processes every task on a single browser session
func (s *Service) runSerial(ctx context.Context) {
	runner, err := s.openRunner(ctx, s.profile)
	if err != nil {
		s.failRemaining(err.Error())
		return
	}
	defer runner.Close()

	for i, task := range s.GetAllTasks() {
		if ctx.Err() != nil {
			s.markStopped(task)
			continue
		}
		if i > 0 {
			s.pause(ctx)
		}
		s.processTask(ctx, ctx, runner, task)
	}
}

// runPool distributes tasks over several sessions, one profile each.
// The group context also cancels when a worker errors, so the parent
// context alone tells a user stop apart from a worker failure.
func (s *Service) runPool(parent context.Context, browserCount int) {
	queue := make(chan *model.Task)
	group, ctx := errgroup.WithContext(parent)

	for i := 0; i < browserCount; i++ {
		profile := fmt.Sprintf("profile_%d", i+1)
		group.Go(func() error {
			runner, err := s.openRunner(ctx, profile)
			if err != nil {
				s.log(fmt.Sprintf("Browser %s failed to start: %v", profile, err))
				return err
			}
			defer runner.Close()

			first := true
			for task := range queue {
				if parent.Err() != nil {
					s.markStopped(task)
					continue
				}
				if ctx.Err() != nil {
					continue
				}
				if !first {
					s.pause(ctx)
				}
				first = false
				task.Profile = profile
				s.processTask(ctx, parent, runner, task)
			}
			return nil
		})
	}

	tasks := s.GetAllTasks()
	go func() {
		defer close(queue)
		for _, task := range tasks {
			select {
			case queue <- task:
			case <-ctx.Done():
				if parent.Err() != nil {
					s.markStopped(task)
				}
			}
		}
	}()

	if err := group.Wait(); err != nil && parent.Err() == nil {
		s.failRemaining(err.Error())
	}
}

// openRunner starts a session and walks it through the login check
func (s *Service) openRunner(ctx context.Context, profile string) (TaskRunner, error) {
	runner, err := s.newRunner(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to open browser: %w", err)
	}

	needsLogin, err := runner.NeedsLogin(ctx)
	if err != nil {
		_ = runner.Close()
		return nil, err
	}
	if needsLogin {
		s.log(fmt.Sprintf("Profile %s needs a login, waiting for you to sign in", profile))
		if s.onLoginRequired != nil {
			s.onLoginRequired(profile)
		}
		if err := runner.WaitForLogin(ctx); err != nil {
			_ = runner.Close()
			return nil, fmt.Errorf("login not completed: %w", err)
		}
	}
	return runner, nil
}

// processTask runs one task and records its outcome. Failures are
// captured per row so the loop always moves on. The stop context
// carries only the user's cancellation; run may additionally be
// cancelled when a pool peer fails.
func (s *Service) processTask(run, stop context.Context, runner TaskRunner, task *model.Task) {
	s.setStatus(task, model.TaskStatusSubmitting, "")
	task.StartedAt = time.Now()
	s.log(fmt.Sprintf("Row %d: submitting %q", task.Row, task.GetDisplayPrompt()))

	s.setStatus(task, model.TaskStatusGenerating, "")
	result, err := runner.RunTask(run, task)

	task.FinishedAt = time.Now()
	if err != nil {
		if stop.Err() != nil {
			s.setStatus(task, model.TaskStatusStopped, "stopped")
			s.log(fmt.Sprintf("Row %d: stopped", task.Row))
		} else {
			s.setStatus(task, model.TaskStatusFailed, err.Error())
			s.log(fmt.Sprintf("Row %d: failed: %v", task.Row, err))
		}
		s.recordResult(task)
		return
	}

	task.OutputPath = result
	s.setStatus(task, model.TaskStatusCompleted, result)
	s.log(fmt.Sprintf("Row %d: completed, saved to %s", task.Row, result))
	s.recordResult(task)
}

// recordResult writes the task outcome back to the workbook
func (s *Service) recordResult(task *model.Task) {
	if s.writer == nil {
		return
	}
	s.writerMu.Lock()
	defer s.writerMu.Unlock()

	if err := s.writer.UpdateResult(task.Row, task.Status, task.Result); err != nil {
		s.log(fmt.Sprintf("Row %d: failed to save result to workbook: %v", task.Row, err))
		return
	}
	if task.Status == model.TaskStatusCompleted && task.OutputPath != "" {
		if err := s.writer.UpdateOutputPath(task.Row, task.OutputPath); err != nil {
			s.log(fmt.Sprintf("Row %d: failed to save output path: %v", task.Row, err))
		}
	}
}

// failRemaining marks every unfinished task failed with the given reason
func (s *Service) failRemaining(reason string) {
	for _, task := range s.GetAllTasks() {
		if !task.Status.IsFinished() {
			s.setStatus(task, model.TaskStatusFailed, reason)
			s.recordResult(task)
		}
	}
}

// markStopped marks a task stopped if it has not finished yet
func (s *Service) markStopped(task *model.Task) {
	if !task.Status.IsFinished() {
		s.setStatus(task, model.TaskStatusStopped, "stopped")
		s.recordResult(task)
	}
}

// pause waits the configured delay between tasks
func (s *Service) pause(ctx context.Context) {
	if s.taskDelay <= 0 {
		return
	}
	select {
	case <-time.After(s.taskDelay):
	case <-ctx.Done():
	}
}

func (s *Service) setStatus(task *model.Task, status model.TaskStatus, result string) {
	s.tasksMutex.Lock()
	task.Status = status
	if result != "" {
		task.Result = result
	}
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.Task) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

func (s *Service) log(message string) {
	s.logger.Info(message)
	if s.onLog != nil {
		s.onLog(message)
	}
}

func (s *Service) notifyFinished() {
	if s.onFinished == nil {
		return
	}
	completed, failed := 0, 0
	for _, task := range s.GetAllTasks() {
		switch task.Status {
		case model.TaskStatusCompleted:
			completed++
		case model.TaskStatusFailed:
			failed++
		}
	}
	s.onFinished(completed, failed)
}
