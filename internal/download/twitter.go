package download

import (
	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/model"
)

// NewTwitterPlatform builds the X/Twitter variant. Protected tweets need the
// caller to supply a cookie file; it is passed through, not obtained here.
func NewTwitterPlatform() *Platform {
	return &Platform{
		Name: "X (Twitter)",
		Domains: []string{
			"twitter.com",
			"x.com",
			"mobile.twitter.com",
			"mobile.x.com",
		},
		Options: twitterOptions,
	}
}

func twitterOptions(req model.DownloadRequest) Options {
	if req.Kind == model.OutputAudio {
		return Options{
			Format:       AudioBestFormat,
			ExtractAudio: true,
			AudioFormat:  AudioCodecMP3,
			AudioQuality: AudioQualityDefault,
			CookieFile:   req.CookieFile,
		}
	}

	return Options{
		Format:            VideoBestFormat,
		MergeOutputFormat: VideoContainerMP4,
		CookieFile:        req.CookieFile,
	}
}
