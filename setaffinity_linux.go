//go:build linux

package eventing

import "golang.org/x/sys/unix"

// setAffinity pins the current OS thread to the given logical CPU.
// Errors are swallowed: inside a restrictive cgroup the call may fail with
// EPERM and the fallback is simply no pin.
func setAffinity(cpu int) {
	if cpu < 0 {
		return
	}

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	_ = unix.SchedSetaffinity(0, &set)
}
