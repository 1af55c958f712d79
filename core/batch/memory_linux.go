//go:build linux

package batch

import "golang.org/x/sys/unix"

// AvailableMemory returns the bytes of memory currently available to
// the process, sampled from the kernel. Free plus buffer pages is a
// close enough stand-in for MemAvailable at the granularity batch
// resizing needs.
func AvailableMemory() (uint64, error) {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return 0, err
	}
	return (uint64(si.Freeram) + uint64(si.Bufferram)) * uint64(si.Unit), nil
}
