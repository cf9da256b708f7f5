package download

import (
	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/model"
)

// Downloader defines the interface the UI programs against.
type Downloader interface {
	SetUpdateCallback(func(*model.DownloadTask))
	Start(req model.DownloadRequest) (*model.DownloadTask, error)
	Stop(id string) error
	Busy() bool
	GetTask(id string) (*model.DownloadTask, bool)
	GetAllTasks() []*model.DownloadTask
}
