package metrics

import (
	"sync/atomic"
	"time"
)

const (
	CalcLateness   = "lateness"
	CalcFinancials = "financials"
	CalcReport     = "report"
	CalcPayslip    = "payslip"
)

type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	rateLimited     uint64
	totalDurationMs uint64
	lateness        uint64
	financials      uint64
	reports         uint64
	payslips        uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	if c == nil {
		return
	}
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// RecordCalculation counts one served calculation of the given kind.
func (c *Collector) RecordCalculation(kind string) {
	if c == nil {
		return
	}
	switch kind {
	case CalcLateness:
		atomic.AddUint64(&c.lateness, 1)
	case CalcFinancials:
		atomic.AddUint64(&c.financials, 1)
	case CalcReport:
		atomic.AddUint64(&c.reports, 1)
	case CalcPayslip:
		atomic.AddUint64(&c.payslips, 1)
	}
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	limited := atomic.LoadUint64(&c.rateLimited)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":    total,
		"errorsTotal":      errs,
		"rateLimitedTotal": limited,
		"avgDurationMs":    avg,
		"totalDurationMs":  totalMs,
		"calculations": map[string]uint64{
			CalcLateness:   atomic.LoadUint64(&c.lateness),
			CalcFinancials: atomic.LoadUint64(&c.financials),
			CalcReport:     atomic.LoadUint64(&c.reports),
			CalcPayslip:    atomic.LoadUint64(&c.payslips),
		},
	}
}
