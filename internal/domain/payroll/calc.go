package payroll

import (
	"math"

	"hrcalc/internal/domain/attendance"
)

// MonthlyHours divides a monthly salary into an hourly rate.
const MonthlyHours = 240

type Calculator struct {
	lateness *attendance.Calculator
}

func NewCalculator(lateness *attendance.Calculator) *Calculator {
	if lateness == nil {
		lateness = attendance.NewCalculator(attendance.DefaultShiftStart)
	}
	return &Calculator{lateness: lateness}
}

func (c *Calculator) Lateness() *attendance.Calculator {
	return c.lateness
}

// Financials computes lateness cost and net salary for one employee.
// Malformed salary and deduction amounts count as zero; it never fails.
func (c *Calculator) Financials(employee Employee, logs []AttendanceLog, deductions []Deduction) FinancialsResult {
	lateness, _, _ := c.attendanceTotals(employee, logs)
	return computeFinancials(employee.Salary.OrZero(), lateness, SumDeductions(deductions))
}

func computeFinancials(salary float64, totalLateness int, totalDeductions float64) FinancialsResult {
	hourlyRate := salary / MonthlyHours
	lateCost := roundHalfUp(float64(totalLateness) / 60 * hourlyRate)
	return FinancialsResult{
		TotalLateness:   totalLateness,
		TotalDeductions: totalDeductions,
		HourlyRate:      hourlyRate,
		LateCost:        lateCost,
		NetSalary:       salary - totalDeductions - lateCost,
	}
}

// attendanceTotals sums lateness over every check-in. Repeated check-ins on
// the same day all count.
func (c *Calculator) attendanceTotals(employee Employee, logs []AttendanceLog) (lateness, checkIns, lateArrivals int) {
	for _, log := range logs {
		if log.Type != LogTypeIn {
			continue
		}
		checkIns++
		minutes := c.lateness.Lateness(log.Timestamp.Seconds, employee.ShiftStart)
		if minutes > 0 {
			lateArrivals++
		}
		lateness += minutes
	}
	return lateness, checkIns, lateArrivals
}

func SumDeductions(deductions []Deduction) float64 {
	var total float64
	for _, deduction := range deductions {
		total += deduction.Amount.OrZero()
	}
	return total
}

// roundHalfUp rounds to the nearest whole unit, halves toward +Inf. The
// result stays a float64 so huge salaries cannot overflow an integer.
func roundHalfUp(value float64) float64 {
	rounded := math.Floor(value)
	if value-rounded >= 0.5 {
		rounded++
	}
	return rounded
}
