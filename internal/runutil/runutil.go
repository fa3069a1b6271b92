// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads resolves the --threads flag: values <= 0 mean one worker
// per CPU.
func EffectiveThreads(threads int) int {
	if threads > 0 {
		return threads
	}
	return runtime.NumCPU()
}
