package model

// OutputKind selects what the user wants out of a URL: the full video or
// just the audio track.
type OutputKind string

const (
	// OutputVideo downloads the video and muxes it into an MP4 container
	OutputVideo OutputKind = "video"

	// OutputAudio extracts the audio track and converts it to MP3
	OutputAudio OutputKind = "audio"
)

// String returns the string representation of OutputKind
func (k OutputKind) String() string {
	return string(k)
}

// Ext returns the file extension produced for this output kind
func (k OutputKind) Ext() string {
	if k == OutputAudio {
		return "mp3"
	}
	return "mp4"
}

// DownloadRequest describes one requested download. The UI builds it from
// user input; it is consumed by exactly one download operation and never
// persisted. Treat it as immutable once constructed.
type DownloadRequest struct {
	URL        string
	Kind       OutputKind
	OutputDir  string
	CookieFile string // optional Netscape cookies.txt for protected content
}
