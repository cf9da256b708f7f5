package download

import (
	"github.com/lrstanley/go-ytdlp"
)

// Format selector and codec constants shared by the platform variants
const (
	// AudioBestFormat asks the extractor for the best available audio stream
	AudioBestFormat = "bestaudio/best"

	// AudioCodecMP3 is the post-processing target codec for audio downloads
	AudioCodecMP3 = "mp3"

	// AudioQualityDefault is the MP3 bitrate requested from the converter
	AudioQualityDefault = "192K"

	// VideoContainerMP4 is the merge container for video downloads
	VideoContainerMP4 = "mp4"

	// VideoBestFormat merges the best video and audio streams
	VideoBestFormat = "bestvideo+bestaudio/best"
)

// Options is the option mapping a platform hands to the extraction library.
// It is pure data: variants stay stateless, two calls with the same request
// produce equal values, and tests can compare the result directly. The
// service translates it onto a yt-dlp command with apply.
type Options struct {
	Format             string
	ExtractAudio       bool
	AudioFormat        string
	AudioQuality       string
	EmbedMetadata      bool
	MergeOutputFormat  string
	NoCheckCertificate bool
	ExtractorArgs      string
	CookieFile         string
}

// apply translates the option set onto a yt-dlp command builder. Zero-valued
// fields contribute nothing, so an omitted cookie file never reaches the CLI.
func (o Options) apply(dl *ytdlp.Command) *ytdlp.Command {
	if o.Format != "" {
		dl = dl.Format(o.Format)
	}
	if o.ExtractAudio {
		dl = dl.ExtractAudio()
	}
	if o.AudioFormat != "" {
		dl = dl.AudioFormat(o.AudioFormat)
	}
	if o.AudioQuality != "" {
		dl = dl.AudioQuality(o.AudioQuality)
	}
	if o.EmbedMetadata {
		dl = dl.EmbedMetadata()
	}
	if o.MergeOutputFormat != "" {
		dl = dl.MergeOutputFormat(o.MergeOutputFormat)
	}
	if o.NoCheckCertificate {
		dl = dl.NoCheckCertificates()
	}
	if o.ExtractorArgs != "" {
		dl = dl.ExtractorArgs(o.ExtractorArgs)
	}
	if o.CookieFile != "" {
		dl = dl.Cookies(o.CookieFile)
	}
	return dl
}
