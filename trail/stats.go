package trail

import "time"

type IterationStat struct {
	// 1-based iteration number.
	Iteration int

	RenderTime    time.Duration
	DecodeTime    time.Duration
	CompositeTime time.Duration
}

type Stats struct {
	// Stats for each completed iteration.
	Iterations []IterationStat

	// Wall-clock time for the whole run.
	Total time.Duration
}

// Summary of the render times over all completed iterations.
func (s Stats) RenderTimes() (min, avg, max time.Duration) {
	if len(s.Iterations) == 0 {
		return 0, 0, 0
	}

	var total time.Duration
	min = s.Iterations[0].RenderTime
	for _, stat := range s.Iterations {
		total += stat.RenderTime
		if stat.RenderTime < min {
			min = stat.RenderTime
		}
		if stat.RenderTime > max {
			max = stat.RenderTime
		}
	}

	return min, total / time.Duration(len(s.Iterations)), max
}
