package download

// Package download implements the platform registry and the download pipeline
// built on top of yt-dlp (via github.com/lrstanley/go-ytdlp). The registry
// resolves a URL to a platform by host match; each platform is a data-driven
// variant contributing its yt-dlp options; the service runs one download at a
// time and propagates progress to the UI through an update callback.
