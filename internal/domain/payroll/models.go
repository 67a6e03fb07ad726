package payroll

const LogTypeIn = "in"

type Employee struct {
	ID         string `json:"id,omitempty" yaml:"id,omitempty"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Department string `json:"department,omitempty" yaml:"department,omitempty"`
	Salary     Number `json:"salary" yaml:"salary"`
	ShiftStart string `json:"shiftStart,omitempty" yaml:"shiftStart,omitempty"`
}

type Timestamp struct {
	Seconds int64 `json:"seconds" yaml:"seconds"`
}

type AttendanceLog struct {
	UserID    string    `json:"userId,omitempty" yaml:"userId,omitempty"`
	Type      string    `json:"type" yaml:"type"`
	Timestamp Timestamp `json:"timestamp" yaml:"timestamp"`
}

type Deduction struct {
	UserID string `json:"userId,omitempty" yaml:"userId,omitempty"`
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Amount Number `json:"amount" yaml:"amount"`
}

type FinancialsResult struct {
	TotalLateness   int     `json:"totalLateness" yaml:"totalLateness"`
	TotalDeductions float64 `json:"totalDeductions" yaml:"totalDeductions"`
	HourlyRate      float64 `json:"hourlyRate" yaml:"hourlyRate"`
	LateCost        float64 `json:"lateCost" yaml:"lateCost"`
	NetSalary       float64 `json:"netSalary" yaml:"netSalary"`
}

type ReportRow struct {
	EmployeeID   string           `json:"employeeId" yaml:"employeeId"`
	Name         string           `json:"name" yaml:"name"`
	Department   string           `json:"department" yaml:"department"`
	Salary       float64          `json:"salary" yaml:"salary"`
	CheckIns     int              `json:"checkIns" yaml:"checkIns"`
	LateArrivals int              `json:"lateArrivals" yaml:"lateArrivals"`
	Financials   FinancialsResult `json:"financials" yaml:"financials"`
}

type ReportTotals struct {
	EmployeeCount   int     `json:"employeeCount" yaml:"employeeCount"`
	TotalSalary     float64 `json:"totalSalary" yaml:"totalSalary"`
	TotalLateness   int     `json:"totalLateness" yaml:"totalLateness"`
	TotalDeductions float64 `json:"totalDeductions" yaml:"totalDeductions"`
	TotalLateCost   float64 `json:"totalLateCost" yaml:"totalLateCost"`
	TotalNetSalary  float64 `json:"totalNetSalary" yaml:"totalNetSalary"`
}

type Report struct {
	Rows   []ReportRow  `json:"rows" yaml:"rows"`
	Totals ReportTotals `json:"totals" yaml:"totals"`
}

// Payslip is the printable summary of one employee's financials.
type Payslip struct {
	Employee   Employee
	Period     string
	Currency   string
	Financials FinancialsResult
}
