package payroll

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"hrcalc/internal/domain/attendance"
)

var today = time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)

func newTestCalculator() *Calculator {
	return NewCalculator(attendance.NewCalculator(attendance.DefaultShiftStart,
		attendance.WithClock(func() time.Time { return today }),
		attendance.WithLocation(time.UTC),
	))
}

func checkIn(hour, minute int) AttendanceLog {
	at := time.Date(today.Year(), today.Month(), today.Day(), hour, minute, 0, 0, time.UTC)
	return AttendanceLog{Type: LogTypeIn, Timestamp: Timestamp{Seconds: at.Unix()}}
}

func TestFinancialsNoLatenessNoDeductions(t *testing.T) {
	calc := newTestCalculator()
	employee := Employee{Salary: NumberOf(2400), ShiftStart: "09:00"}

	got := calc.Financials(employee, []AttendanceLog{checkIn(9, 0)}, nil)
	want := FinancialsResult{HourlyRate: 10, NetSalary: 2400}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("financials mismatch (-want +got):\n%s", diff)
	}
}

func TestFinancialsLateFee(t *testing.T) {
	calc := newTestCalculator()
	employee := Employee{Salary: NumberOf(2400), ShiftStart: "09:00"}

	got := calc.Financials(employee, []AttendanceLog{checkIn(10, 0)}, nil)
	want := FinancialsResult{TotalLateness: 60, HourlyRate: 10, LateCost: 10, NetSalary: 2390}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("financials mismatch (-want +got):\n%s", diff)
	}
}

func TestFinancialsAccumulatesCheckIns(t *testing.T) {
	calc := newTestCalculator()
	employee := Employee{Salary: NumberOf(4800), ShiftStart: "09:00"}
	logs := []AttendanceLog{
		checkIn(9, 30),
		{Type: "out", Timestamp: checkIn(18, 0).Timestamp},
		checkIn(10, 0),
	}

	got := calc.Financials(employee, logs, nil)
	assert.Equal(t, 90, got.TotalLateness)
	assert.Equal(t, 30.0, got.LateCost)
	assert.Equal(t, 4770.0, got.NetSalary)

	// The same check-in twice counts twice.
	twice := calc.Financials(employee, []AttendanceLog{checkIn(9, 30), checkIn(9, 30)}, nil)
	assert.Equal(t, 60, twice.TotalLateness)
}

func TestFinancialsSumsDeductions(t *testing.T) {
	calc := newTestCalculator()
	employee := Employee{Salary: NumberOf(2400)}
	deductions := []Deduction{
		{Amount: NumberOf(50)},
		{Amount: ParseNumber("100")},
		{Amount: ParseNumber("n/a")},
		{},
	}

	got := calc.Financials(employee, nil, deductions)
	assert.Equal(t, 150.0, got.TotalDeductions)
	assert.Equal(t, 2250.0, got.NetSalary)
}

func TestFinancialsZeroSalary(t *testing.T) {
	calc := newTestCalculator()
	employee := Employee{Salary: NumberOf(0), ShiftStart: "09:00"}

	got := calc.Financials(employee, []AttendanceLog{checkIn(10, 0)}, []Deduction{{Amount: NumberOf(50)}})
	assert.Equal(t, 60, got.TotalLateness)
	assert.Equal(t, 0.0, got.HourlyRate)
	assert.Equal(t, 0.0, got.LateCost)
	assert.Equal(t, -50.0, got.NetSalary)
}

func TestFinancialsInvalidSalaryReadsAsZero(t *testing.T) {
	calc := newTestCalculator()
	got := calc.Financials(Employee{Salary: ParseNumber("lots")}, nil, []Deduction{{Amount: NumberOf(20)}})
	assert.Equal(t, 0.0, got.HourlyRate)
	assert.Equal(t, -20.0, got.NetSalary)
}

func TestFinancialsRounding(t *testing.T) {
	calc := newTestCalculator()
	logs := []AttendanceLog{checkIn(9, 30)}

	got := calc.Financials(Employee{Salary: NumberOf(2400), ShiftStart: "09:00"}, logs, nil)
	assert.Equal(t, 5.0, got.LateCost)

	// 0.5h * 10.4166... = 5.208
	got = calc.Financials(Employee{Salary: NumberOf(2500), ShiftStart: "09:00"}, logs, nil)
	assert.Equal(t, 5.0, got.LateCost)
	assert.InDelta(t, 10.4167, got.HourlyRate, 0.0001)
}

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{2.5, 3},
		{2.4999, 2},
		{-2.5, -2},
		{-0.4, 0},
		{0.49999999999999994, 0},
		{4503599627370495.5, 4503599627370496},
		{1e300, 1e300},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, roundHalfUp(tc.in), "roundHalfUp(%v)", tc.in)
	}
}

func TestFinancialsHugeSalaryDoesNotOverflow(t *testing.T) {
	calc := newTestCalculator()

	got := calc.Financials(Employee{Salary: NumberOf(1e300), ShiftStart: "09:00"}, []AttendanceLog{checkIn(10, 0)}, nil)
	wantCost := 1e300 / MonthlyHours
	assert.InEpsilon(t, wantCost, got.LateCost, 1e-12)
	assert.Greater(t, got.LateCost, 0.0)
	assert.InEpsilon(t, 1e300-wantCost, got.NetSalary, 1e-12)
	assert.Less(t, got.NetSalary, 1e300)
}

func TestFinancialsUsesEmployeeShiftStart(t *testing.T) {
	calc := newTestCalculator()
	early := Employee{Salary: NumberOf(2400), ShiftStart: "10:00"}
	got := calc.Financials(early, []AttendanceLog{checkIn(10, 0)}, nil)
	assert.Equal(t, 0, got.TotalLateness)

	defaulted := Employee{Salary: NumberOf(2400)}
	got = calc.Financials(defaulted, []AttendanceLog{checkIn(10, 0)}, nil)
	assert.Equal(t, 60, got.TotalLateness)
}

func TestFinancialsDoesNotMutateInputs(t *testing.T) {
	calc := newTestCalculator()
	logs := []AttendanceLog{checkIn(9, 45)}
	deductions := []Deduction{{Amount: ParseNumber("10")}}
	logsCopy := append([]AttendanceLog(nil), logs...)
	deductionsCopy := append([]Deduction(nil), deductions...)

	calc.Financials(Employee{Salary: NumberOf(1000)}, logs, deductions)

	opt := cmp.AllowUnexported(Number{})
	assert.Empty(t, cmp.Diff(logsCopy, logs))
	assert.Empty(t, cmp.Diff(deductionsCopy, deductions, opt))
}

func TestNewCalculatorDefaultsLateness(t *testing.T) {
	calc := NewCalculator(nil)
	assert.Equal(t, attendance.DefaultShiftStart, calc.Lateness().DefaultShiftStart())
	got := calc.Financials(Employee{Salary: NumberOf(math.Pi * 240)}, nil, nil)
	if diff := cmp.Diff(math.Pi, got.HourlyRate, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("hourly rate mismatch: %s", diff)
	}
}
