package payroll

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Report runs Financials for each employee in order. Logs and deductions
// are matched to employees by user id; entries without a matching
// employee are ignored.
func (c *Calculator) Report(employees []Employee, logs []AttendanceLog, deductions []Deduction) Report {
	logsByUser := make(map[string][]AttendanceLog)
	for _, log := range logs {
		if log.UserID == "" {
			continue
		}
		logsByUser[log.UserID] = append(logsByUser[log.UserID], log)
	}
	deductionsByUser := make(map[string][]Deduction)
	for _, deduction := range deductions {
		if deduction.UserID == "" {
			continue
		}
		deductionsByUser[deduction.UserID] = append(deductionsByUser[deduction.UserID], deduction)
	}

	report := Report{Rows: make([]ReportRow, 0, len(employees))}
	for _, employee := range employees {
		var employeeLogs []AttendanceLog
		var employeeDeductions []Deduction
		if employee.ID != "" {
			employeeLogs = logsByUser[employee.ID]
			employeeDeductions = deductionsByUser[employee.ID]
		}

		lateness, checkIns, lateArrivals := c.attendanceTotals(employee, employeeLogs)
		salary := employee.Salary.OrZero()
		result := computeFinancials(salary, lateness, SumDeductions(employeeDeductions))

		report.Rows = append(report.Rows, ReportRow{
			EmployeeID:   employee.ID,
			Name:         employee.Name,
			Department:   employee.Department,
			Salary:       salary,
			CheckIns:     checkIns,
			LateArrivals: lateArrivals,
			Financials:   result,
		})

		report.Totals.EmployeeCount++
		report.Totals.TotalSalary += salary
		report.Totals.TotalLateness += result.TotalLateness
		report.Totals.TotalDeductions += result.TotalDeductions
		report.Totals.TotalLateCost += result.LateCost
		report.Totals.TotalNetSalary += result.NetSalary
	}
	return report
}

var reportHeader = []string{
	"employee_id", "name", "department", "salary", "check_ins", "late_arrivals",
	"total_lateness", "total_deductions", "hourly_rate", "late_cost", "net_salary",
}

func WriteReportCSV(w io.Writer, report Report) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(reportHeader); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	for _, row := range report.Rows {
		record := []string{
			row.EmployeeID,
			row.Name,
			row.Department,
			fmt.Sprintf("%.2f", row.Salary),
			strconv.Itoa(row.CheckIns),
			strconv.Itoa(row.LateArrivals),
			strconv.Itoa(row.Financials.TotalLateness),
			fmt.Sprintf("%.2f", row.Financials.TotalDeductions),
			fmt.Sprintf("%.2f", row.Financials.HourlyRate),
			fmt.Sprintf("%.0f", row.Financials.LateCost),
			fmt.Sprintf("%.2f", row.Financials.NetSalary),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write report row %q: %w", row.EmployeeID, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
