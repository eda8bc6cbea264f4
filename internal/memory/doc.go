// Package memory configures the Go runtime soft memory limit from container
// limits so the garbage collector works harder before the container is
// OOM-killed. Large watch pages and transcripts are buffered in memory
// while a request is served.
package memory
