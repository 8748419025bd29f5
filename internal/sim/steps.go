package sim

// StepCount is the number of whole steps of size h that fit in duration.
// Both drivers run one iteration more than this.
func StepCount(duration, h float64) int {
	return int(duration / h)
}
