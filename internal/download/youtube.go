package download

import (
	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/model"
)

// YouTubeVideoFormat caps quality at 1080p and prefers mp4-compatible streams
// so merges stay cheap and players stay happy.
const YouTubeVideoFormat = "bestvideo[height<=1080][ext=mp4]+bestaudio[ext=m4a]/best[height<=1080][ext=mp4]/best"

// NewYouTubePlatform builds the YouTube variant.
func NewYouTubePlatform() *Platform {
	return &Platform{
		Name: "YouTube",
		Domains: []string{
			"youtube.com",
			"youtu.be",
			"youtube-nocookie.com",
			"music.youtube.com",
		},
		Options: youtubeOptions,
	}
}

func youtubeOptions(req model.DownloadRequest) Options {
	if req.Kind == model.OutputAudio {
		return Options{
			Format:             AudioBestFormat,
			ExtractAudio:       true,
			AudioFormat:        AudioCodecMP3,
			AudioQuality:       AudioQualityDefault,
			EmbedMetadata:      true,
			NoCheckCertificate: true,
			CookieFile:         req.CookieFile,
		}
	}

	return Options{
		Format:             YouTubeVideoFormat,
		MergeOutputFormat:  VideoContainerMP4,
		NoCheckCertificate: true,
		CookieFile:         req.CookieFile,
	}
}
