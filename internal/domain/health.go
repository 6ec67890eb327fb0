package domain

import "fmt"

// HealthStatus is the outcome of one doctor check.
type HealthStatus string

const (
	HealthOK    HealthStatus = "ok"
	HealthWarn  HealthStatus = "warn"
	HealthError HealthStatus = "error"
)

// HealthCheck is one line of the doctor report, e.g. "Board ft232h".
type HealthCheck struct {
	Name    string
	Status  HealthStatus
	Details string
}

// HealthReport is the ordered list of checks for one doctor run.
type HealthReport struct {
	Checks []HealthCheck
}

// Failed reports whether any check ended in an error.
func (r HealthReport) Failed() bool {
	return r.count(HealthError) > 0
}

// Summary counts checks per status, e.g. "5 ok, 2 warn, 0 error".
func (r HealthReport) Summary() string {
	return fmt.Sprintf("%d ok, %d warn, %d error", r.count(HealthOK), r.count(HealthWarn), r.count(HealthError))
}

func (r HealthReport) count(status HealthStatus) int {
	n := 0
	for _, check := range r.Checks {
		if check.Status == status {
			n++
		}
	}
	return n
}
