package payroll

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPayslip(t *testing.T) {
	calc := newTestCalculator()
	employee := Employee{ID: "u1", Name: "Alice Smith", Department: "Engineering", Salary: NumberOf(2400)}
	result := calc.Financials(employee, []AttendanceLog{checkIn(10, 0)}, nil)

	var buf bytes.Buffer
	err := RenderPayslip(&buf, Payslip{Employee: employee, Period: "2025-06", Currency: "EUR", Financials: result})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestRenderPayslipDefaults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPayslip(&buf, Payslip{Employee: Employee{ID: "u9"}}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
