package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hrcalc/internal/domain/attendance"
	"hrcalc/internal/domain/payroll"
	"hrcalc/internal/platform/config"
	"hrcalc/internal/platform/logging"
)

var (
	// Global flags
	verbose    bool
	shiftStart string
	timezone   string

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hrcalc",
	Short: "Payroll arithmetic: lateness and net salary",
	Long: `hrcalc computes attendance lateness and payroll financials.

Lateness counts the minutes a check-in falls after the shift start, once a
5 minute grace period is exceeded. Financials turn accumulated lateness into
a late cost (salary / 240 per hour) and subtract it, along with deductions,
from the monthly salary.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if shiftStart != "" {
			cfg.DefaultShiftStart = shiftStart
		}
		if timezone != "" {
			cfg.Timezone = timezone
		}

		var err error
		logger, err = logging.New(cfg.LogLevel, verbose)
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&shiftStart, "shift-start", "", "Default shift start HH:MM (or set DEFAULT_SHIFT_START)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "", "IANA zone for wall-clock times (or set TIMEZONE)")

	latenessCmd.Flags().Int64Var(&latenessSeconds, "seconds", 0, "Check-in time as epoch seconds")
	latenessCmd.Flags().StringVar(&latenessClock, "time", "", "Check-in time of day HH:MM")
	latenessCmd.Flags().StringVar(&latenessShift, "shift", "", "Shift start HH:MM (default: configured default)")
	latenessCmd.MarkFlagsMutuallyExclusive("seconds", "time")
	latenessCmd.MarkFlagsOneRequired("seconds", "time")

	for _, cmd := range []*cobra.Command{financialsCmd, reportCmd, payslipCmd} {
		cmd.Flags().StringVarP(&inputPath, "file", "f", "", "Input file (YAML or JSON, - for stdin)")
		_ = cmd.MarkFlagRequired("file")
	}
	financialsCmd.Flags().StringVar(&outputFormat, "format", "json", "Output format: json or yaml")
	reportCmd.Flags().StringVar(&outputFormat, "format", "json", "Output format: json, yaml or csv")
	reportCmd.Flags().BoolVar(&reportCSV, "csv", false, "Shorthand for --format csv")
	payslipCmd.Flags().StringVarP(&payslipOut, "output", "o", "payslip.pdf", "PDF output path")

	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "Token subject (required)")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "HR", "Role name: Employee, Manager or HR")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", defaultTokenTTL, "Token lifetime")
	_ = tokenCmd.MarkFlagRequired("subject")

	rootCmd.AddCommand(latenessCmd)
	rootCmd.AddCommand(financialsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(payslipCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newCalculator builds the payroll calculator from the loaded config.
func newCalculator() (*payroll.Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	lateness := attendance.NewCalculator(cfg.DefaultShiftStart, attendance.WithLocation(loc))
	return payroll.NewCalculator(lateness), nil
}
