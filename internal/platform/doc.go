package platform

// Package platform contains OS integration glue: filesystem helpers, opening
// the output folder in the system file manager, and FFmpeg discovery.
