//go:build linux || darwin || freebsd || netbsd || openbsd

package fsx

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

func accessTime(path string, info os.FileInfo) time.Time {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return info.ModTime()
	}
	return time.Unix(st.Atim.Unix())
}
