package download

import (
	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/model"
)

// NewAudiomackPlatform builds the Audiomack variant. Audiomack hosts audio
// only, so a video request falls back to whatever single format the
// extractor offers instead of attempting a merge.
func NewAudiomackPlatform() *Platform {
	return &Platform{
		Name: "Audiomack",
		Domains: []string{
			"audiomack.com",
		},
		Options: audiomackOptions,
	}
}

func audiomackOptions(req model.DownloadRequest) Options {
	if req.Kind == model.OutputAudio {
		return Options{
			Format:        AudioBestFormat,
			ExtractAudio:  true,
			AudioFormat:   AudioCodecMP3,
			AudioQuality:  AudioQualityDefault,
			EmbedMetadata: true,
			CookieFile:    req.CookieFile,
		}
	}

	return Options{
		Format:     "best",
		CookieFile: req.CookieFile,
	}
}
