package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"hrcalc/internal/domain/payroll"
)

// input is the file format shared by financials, report and payslip.
// JSON documents are valid YAML, so both are accepted.
type input struct {
	Employee   payroll.Employee        `yaml:"employee"`
	Employees  []payroll.Employee      `yaml:"employees"`
	Logs       []payroll.AttendanceLog `yaml:"logs"`
	Deductions []payroll.Deduction     `yaml:"deductions"`
	Period     string                  `yaml:"period"`
	Currency   string                  `yaml:"currency"`
}

func loadInput(path string, stdin io.Reader) (input, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return input{}, fmt.Errorf("read input: %w", err)
	}

	var in input
	if err := yaml.Unmarshal(data, &in); err != nil {
		return input{}, fmt.Errorf("parse input %s: %w", path, err)
	}
	return in, nil
}

func writeOutput(w io.Writer, format string, v any) error {
	switch format {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
