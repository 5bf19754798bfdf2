package domain

// HealthStatus enumerates doctor check states.
type HealthStatus string

const (
	HealthOK   HealthStatus = "ok"
	HealthWarn HealthStatus = "warn"
	HealthFail HealthStatus = "fail"
)

// HealthCheck captures the output of a single diagnostic.
type HealthCheck struct {
	Name    string
	Status  HealthStatus
	Details string
}

// HealthReport aggregates doctor results.
type HealthReport struct {
	Checks []HealthCheck
}

// Failed reports whether any check failed.
func (r HealthReport) Failed() bool {
	for _, c := range r.Checks {
		if c.Status == HealthFail {
			return true
		}
	}
	return false
}
