package payroll

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const DefaultCurrency = "USD"

// RenderPayslip writes a one page A4 payslip PDF.
func RenderPayslip(w io.Writer, slip Payslip) error {
	currency := strings.TrimSpace(slip.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}
	name := strings.TrimSpace(slip.Employee.Name)
	if name == "" {
		name = slip.Employee.ID
	}
	period := strings.TrimSpace(slip.Period)
	if period == "" {
		period = "current period"
	}
	result := slip.Financials

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", name))
	pdf.Ln(7)
	if slip.Employee.Department != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Department: %s", slip.Employee.Department))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", period))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Salary: %.2f %s", slip.Employee.Salary.OrZero(), currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Hourly rate: %.2f %s", result.HourlyRate, currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Lateness: %d min", result.TotalLateness))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Late cost: %.2f %s", result.LateCost, currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %.2f %s", result.TotalDeductions, currency))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %.2f %s", result.NetSalary, currency))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render payslip: %w", err)
	}
	return nil
}
