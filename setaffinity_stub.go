//go:build !linux

package eventing

// setAffinity is a no-op on targets without sched_setaffinity.
func setAffinity(int) {}
