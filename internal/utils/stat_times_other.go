//go:build !linux

package utils

import (
	"os"
	"time"
)

// StatTimes returns the creation and modification timestamps of a filesystem
// entry, normalized to UTC. Platforms without a portable creation time report
// the modification time for both.
func StatTimes(entryInfo os.FileInfo) (time.Time, time.Time) {
	modifiedTime := entryInfo.ModTime().UTC()
	return modifiedTime, modifiedTime
}
