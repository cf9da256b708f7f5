package download

import (
	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/model"
)

// InstagramExtractorArgs skips DASH manifests, which the extractor often
// cannot merge for reels without authentication.
const InstagramExtractorArgs = "instagram:skip=dash"

// NewInstagramPlatform builds the Instagram variant. Private posts and some
// reels require a logged-in cookie file supplied by the caller.
func NewInstagramPlatform() *Platform {
	return &Platform{
		Name: "Instagram",
		Domains: []string{
			"instagram.com",
			"instagr.am",
		},
		Options: instagramOptions,
	}
}

func instagramOptions(req model.DownloadRequest) Options {
	if req.Kind == model.OutputAudio {
		return Options{
			Format:        AudioBestFormat,
			ExtractAudio:  true,
			AudioFormat:   AudioCodecMP3,
			AudioQuality:  AudioQualityDefault,
			ExtractorArgs: InstagramExtractorArgs,
			CookieFile:    req.CookieFile,
		}
	}

	return Options{
		Format:            VideoBestFormat,
		MergeOutputFormat: VideoContainerMP4,
		ExtractorArgs:     InstagramExtractorArgs,
		CookieFile:        req.CookieFile,
	}
}
