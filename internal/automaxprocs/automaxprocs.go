// Package automaxprocs sets GOMAXPROCS from the container/cgroup CPU
// quota on import, mirroring the teacher's lib/automaxprocs.
package automaxprocs

import "go.uber.org/automaxprocs/maxprocs"

func init() {
	maxprocs.Set()
}
