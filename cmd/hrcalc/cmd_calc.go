package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hrcalc/internal/domain/attendance"
	"hrcalc/internal/domain/payroll"
)

var (
	latenessSeconds int64
	latenessClock   string
	latenessShift   string

	inputPath    string
	outputFormat string
	reportCSV    bool
	payslipOut   string
)

var latenessCmd = &cobra.Command{
	Use:   "lateness",
	Short: "Minutes late for a single check-in",
	Example: `  hrcalc lateness --time 09:20
  hrcalc lateness --seconds 1718010000 --shift 08:30`,
	Args: cobra.NoArgs,
	RunE: runLateness,
}

var financialsCmd = &cobra.Command{
	Use:   "financials",
	Short: "Net salary for one employee",
	Long: `Reads an input file with "employee", "logs" and "deductions" and prints
totalLateness, totalDeductions, hourlyRate, lateCost and netSalary.`,
	Args: cobra.NoArgs,
	RunE: runFinancials,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Financials for every employee in the input file",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

var payslipCmd = &cobra.Command{
	Use:   "payslip",
	Short: "Render a PDF payslip for one employee",
	Args:  cobra.NoArgs,
	RunE:  runPayslip,
}

func runLateness(cmd *cobra.Command, args []string) error {
	calc, err := newCalculator()
	if err != nil {
		return err
	}
	lateness := calc.Lateness()

	seconds := latenessSeconds
	if latenessClock != "" {
		clock, ok := attendance.ParseClock(latenessClock)
		if !ok {
			return fmt.Errorf("--time must be HH:MM, got %q", latenessClock)
		}
		now := time.Now().In(lateness.Location())
		seconds = time.Date(now.Year(), now.Month(), now.Day(), clock.Hour, clock.Minute, 0, 0, lateness.Location()).Unix()
	}

	minutes := lateness.Lateness(seconds, latenessShift)
	logger.Debug("lateness computed",
		zap.Int64("seconds", seconds),
		zap.String("shiftStart", latenessShift),
		zap.Int("minutes", minutes))
	fmt.Fprintln(cmd.OutOrStdout(), minutes)
	return nil
}

func runFinancials(cmd *cobra.Command, args []string) error {
	calc, err := newCalculator()
	if err != nil {
		return err
	}
	in, err := loadInput(inputPath, cmd.InOrStdin())
	if err != nil {
		return err
	}

	result := calc.Financials(in.Employee, in.Logs, in.Deductions)
	logger.Debug("financials computed",
		zap.String("employee", in.Employee.ID),
		zap.Int("logs", len(in.Logs)),
		zap.Int("deductions", len(in.Deductions)))
	return writeOutput(cmd.OutOrStdout(), outputFormat, result)
}

func runReport(cmd *cobra.Command, args []string) error {
	calc, err := newCalculator()
	if err != nil {
		return err
	}
	in, err := loadInput(inputPath, cmd.InOrStdin())
	if err != nil {
		return err
	}

	report := calc.Report(in.Employees, in.Logs, in.Deductions)
	logger.Debug("report computed", zap.Int("employees", report.Totals.EmployeeCount))
	if reportCSV || outputFormat == "csv" {
		return payroll.WriteReportCSV(cmd.OutOrStdout(), report)
	}
	return writeOutput(cmd.OutOrStdout(), outputFormat, report)
}

func runPayslip(cmd *cobra.Command, args []string) error {
	calc, err := newCalculator()
	if err != nil {
		return err
	}
	in, err := loadInput(inputPath, cmd.InOrStdin())
	if err != nil {
		return err
	}

	currency := in.Currency
	if currency == "" {
		currency = cfg.Currency
	}
	slip := payroll.Payslip{
		Employee:   in.Employee,
		Period:     in.Period,
		Currency:   currency,
		Financials: calc.Financials(in.Employee, in.Logs, in.Deductions),
	}

	f, err := os.Create(payslipOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", payslipOut, err)
	}
	if err := payroll.RenderPayslip(f, slip); err != nil {
		_ = f.Close()
		return fmt.Errorf("render payslip: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("payslip written", zap.String("path", payslipOut), zap.String("employee", in.Employee.ID))
	fmt.Fprintf(cmd.OutOrStdout(), "Payslip written to %s\n", payslipOut)
	return nil
}
