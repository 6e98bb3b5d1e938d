package pricing

// Stats counts pricing lookups for one region
type Stats struct {
	Success int
	Failure int
	Cache   int
}

// SuccessRate returns the share of API calls that succeeded, in percent
func (s Stats) SuccessRate() float64 {
	total := s.Success + s.Failure
	if total == 0 {
		return 0
	}
	return float64(s.Success) / float64(total) * 100.0
}

// APIStats returns a copy of the lookup statistics keyed by region
func (e *Estimator) APIStats() map[string]Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	statsCopy := make(map[string]Stats, len(e.stats))
	for region, stats := range e.stats {
		statsCopy[region] = stats
	}
	return statsCopy
}

func (e *Estimator) recordSuccess(region string) {
	s := e.stats[region]
	s.Success++
	e.stats[region] = s
}

func (e *Estimator) recordFailure(region string) {
	s := e.stats[region]
	s.Failure++
	e.stats[region] = s
}

func (e *Estimator) recordCacheHit(region string) {
	s := e.stats[region]
	s.Cache++
	e.stats[region] = s
}
