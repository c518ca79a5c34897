//go:build linux

package utils

import (
	"os"
	"syscall"
	"time"
)

// StatTimes returns the creation and modification timestamps of a filesystem
// entry, normalized to UTC. Creation comes from the inode change time exposed
// by the platform stat structure.
func StatTimes(entryInfo os.FileInfo) (time.Time, time.Time) {
	modifiedTime := entryInfo.ModTime().UTC()
	if statData, ok := entryInfo.Sys().(*syscall.Stat_t); ok {
		createdTime := time.Unix(statData.Ctim.Sec, statData.Ctim.Nsec).UTC()
		return createdTime, modifiedTime
	}
	return modifiedTime, modifiedTime
}
