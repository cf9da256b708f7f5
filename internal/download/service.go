package download

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lrstanley/go-ytdlp"

	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/model"
	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/platform"
)

// Base yt-dlp options shared by every platform variant
const (
	// OutputTemplate names files from the media title and id
	OutputTemplate = "%(title).120s [%(id)s].%(ext)s"

	// DownloadRetries and FragmentRetries are passed through to yt-dlp;
	// this layer itself never retries a failed operation
	DownloadRetries = "10"
	FragmentRetries = "10"

	// ConcurrentFragments speeds up segmented downloads
	ConcurrentFragments = 4

	// ProgressInterval is how often the library reports progress
	ProgressInterval = 500 * time.Millisecond
)

// Service runs downloads against the extraction library. One download is
// active at a time per window; finished tasks stay in the history map so the
// UI can list them. The service owns the library invocation for the duration
// of a download and reports back exclusively through the update callback.
type Service struct {
	registry   *Registry
	ffmpegPath string

	tasks      map[string]*model.DownloadTask
	cancels    map[string]context.CancelFunc
	activeID   string
	tasksMutex sync.RWMutex

	onUpdate func(*model.DownloadTask) // callback for UI updates
}

// NewService creates a new download service. ffmpegPath may be empty, in
// which case yt-dlp falls back to whatever it finds on PATH.
func NewService(registry *Registry, ffmpegPath string) *Service {
	return &Service{
		registry:   registry,
		ffmpegPath: ffmpegPath,
		tasks:      make(map[string]*model.DownloadTask),
		cancels:    make(map[string]context.CancelFunc),
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.onUpdate = callback
}

// Busy reports whether a download is currently in flight.
func (s *Service) Busy() bool {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return s.activeID != ""
}

// Start validates the request and launches the download. It fails before any
// external call when no platform matches the URL, when the destination
// directory cannot be created, or when another download is already running.
func (s *Service) Start(req model.DownloadRequest) (*model.DownloadTask, error) {
	plat, err := s.registry.Select(req.URL)
	if err != nil {
		return nil, newError(FailureUnsupportedURL, err)
	}

	if err := platform.CreateDirectoryIfNotExists(req.OutputDir); err != nil {
		return nil, newError(FailureFilesystem, fmt.Errorf("create output directory: %w", err))
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if s.activeID != "" {
		return nil, fmt.Errorf("a download is already in progress")
	}

	task := &model.DownloadTask{
		ID:        generateTaskID(),
		URL:       req.URL,
		Platform:  plat.Name,
		Kind:      req.Kind,
		Status:    model.TaskStatusStarting,
		Stage:     model.StageFetching,
		ETASec:    -1,
		StartedAt: time.Now(),
	}

	// The cancel func is registered before Start returns so a Stop arriving
	// ahead of the download goroutine still lands.
	ctx, cancel := context.WithCancel(context.Background())
	s.tasks[task.ID] = task
	s.cancels[task.ID] = cancel
	s.activeID = task.ID

	go s.run(ctx, cancel, task, req, plat)

	return task, nil
}

// Stop cancels the running task. The goroutine owning the download observes
// the cancellation and records the final Stopped status itself.
func (s *Service) Stop(id string) error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		return fmt.Errorf("task not found: %s", id)
	}
	if !task.Status.IsActive() {
		return fmt.Errorf("task is not active: %s", task.Status)
	}

	task.Status = model.TaskStatusStopping
	if cancel, ok := s.cancels[id]; ok {
		cancel()
	}
	go s.notifyUpdate(task)
	return nil
}

// GetTask returns a snapshot of a task by ID.
func (s *Service) GetTask(id string) (*model.DownloadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	task, exists := s.tasks[id]
	if !exists {
		return nil, false
	}
	snapshot := *task
	return &snapshot, true
}

// GetAllTasks returns snapshots of all tasks, most recent first.
func (s *Service) GetAllTasks() []*model.DownloadTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.DownloadTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		snapshot := *task
		tasks = append(tasks, &snapshot)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].StartedAt.After(tasks[j].StartedAt)
	})
	return tasks
}

// run executes one download end to end on its own goroutine.
func (s *Service) run(ctx context.Context, cancel context.CancelFunc, task *model.DownloadTask, req model.DownloadRequest, plat *Platform) {
	defer cancel()
	defer func() {
		s.tasksMutex.Lock()
		delete(s.cancels, task.ID)
		s.activeID = ""
		s.tasksMutex.Unlock()
	}()

	if !s.beginDownloading(task) {
		// Stopped before the download began; never touch the library
		s.tasksMutex.Lock()
		task.Status = model.TaskStatusStopped
		task.FinishedAt = time.Now()
		s.tasksMutex.Unlock()
		s.notifyUpdate(task)
		return
	}
	s.notifyUpdate(task)

	dl := s.buildCommand(req, plat)
	dl.ProgressFunc(ProgressInterval, func(update ytdlp.ProgressUpdate) {
		s.updateTaskProgress(task, &update)
	})

	result, err := dl.Run(ctx, req.URL)

	s.tasksMutex.Lock()
	if err != nil {
		if ctx.Err() == context.Canceled {
			task.Status = model.TaskStatusStopped
		} else {
			derr := classifyRunError(err)
			task.Status = model.TaskStatusError
			task.Stage = model.StageError
			task.LastError = derr.Err.Error()
			task.FailureKind = string(derr.Kind)
			log.Printf("Download failed for task %s (%s): %v", task.ID, derr.Kind, err)
		}
	} else {
		task.Status = model.TaskStatusCompleted
		task.Stage = model.StageDone
		task.Progress = 1.0
		task.Percent = 100

		// Set output path from result
		if result != nil {
			info, err := result.GetExtractedInfo()
			if err == nil && len(info) > 0 && info[0].Filename != nil {
				task.OutputPath = *info[0].Filename
			}
		}
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// buildCommand merges the shared base options with the platform's option
// mapping into a ready-to-run yt-dlp invocation.
func (s *Service) buildCommand(req model.DownloadRequest, plat *Platform) *ytdlp.Command {
	dl := ytdlp.New().
		ForceOverwrites().
		RestrictFilenames().
		NoPlaylist().
		Retries(DownloadRetries).
		FragmentRetries(FragmentRetries).
		ConcurrentFragments(ConcurrentFragments).
		Output(filepath.Join(req.OutputDir, OutputTemplate))

	if s.ffmpegPath != "" {
		dl = dl.FFmpegLocation(s.ffmpegPath)
	}

	return plat.Options(req).apply(dl)
}

// updateTaskProgress updates task progress from a yt-dlp progress event
func (s *Service) updateTaskProgress(task *model.DownloadTask, update *ytdlp.ProgressUpdate) {
	s.tasksMutex.Lock()

	// Update percentage
	if update.TotalBytes > 0 {
		percent := float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100
		task.Percent = int(percent)
		task.Progress = percent / 100.0
	}

	// Calculate speed
	if !update.Started.IsZero() {
		elapsed := time.Since(update.Started)
		if elapsed.Seconds() > 0 {
			bytesPerSecond := float64(update.DownloadedBytes) / elapsed.Seconds()
			task.Speed = fmt.Sprintf("%.1fMB/s", bytesPerSecond/1024/1024)
		}
	}

	// Calculate ETA
	if eta := update.ETA(); eta > 0 {
		task.ETASec = int(eta.Seconds())
	}

	// Map library status onto the progress stage shown to the user
	switch update.Status {
	case ytdlp.ProgressStatusPostProcessing, ytdlp.ProgressStatusFinished:
		task.Stage = model.StageConverting
	case ytdlp.ProgressStatusError:
		task.Stage = model.StageError
	default:
		task.Stage = model.StageFetching
	}

	// Update title if available
	if update.Info != nil && update.Info.Title != nil && *update.Info.Title != "" && task.Title == "" {
		task.Title = *update.Info.Title
	}

	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// beginDownloading moves a starting task into the Downloading state. It
// refuses when a stop request got there first, so run can bail out without
// ever invoking the extraction library.
func (s *Service) beginDownloading(task *model.DownloadTask) bool {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if task.Status == model.TaskStatusStopping {
		return false
	}
	task.Status = model.TaskStatusDownloading
	return true
}

// notifyUpdate calls the update callback if set. The callback receives a
// snapshot taken under the lock; the live task keeps being mutated by the
// download goroutine, and handing it out directly would race with the UI.
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	if s.onUpdate == nil {
		return
	}
	s.tasksMutex.RLock()
	snapshot := *task
	s.tasksMutex.RUnlock()
	s.onUpdate(&snapshot)
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return "task-" + uuid.NewString()
}
