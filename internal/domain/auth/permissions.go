package auth

import (
	"context"
	"strings"
)

const (
	RoleEmployee = "Employee"
	RoleManager  = "Manager"
	RoleHR       = "HR"
)

const (
	PermAttendanceRead  = "attendance.read"
	PermPayrollCalc     = "payroll.calculate"
	PermPayrollReport   = "payroll.report"
	PermPayrollPayslips = "payroll.payslips"
	PermMetricsRead     = "metrics.read"
)

var RolePermissions = map[string][]string{
	RoleEmployee: {
		PermAttendanceRead,
	},
	RoleManager: {
		PermAttendanceRead,
		PermPayrollCalc,
		PermPayrollReport,
	},
	RoleHR: {
		PermAttendanceRead,
		PermPayrollCalc,
		PermPayrollReport,
		PermPayrollPayslips,
		PermMetricsRead,
	},
}

type UserContext struct {
	Subject  string
	RoleName string
}

// StaticPermissions resolves permissions from RolePermissions. Role names
// match case-insensitively.
type StaticPermissions struct{}

func (StaticPermissions) HasPermission(_ context.Context, roleName, permission string) (bool, error) {
	for role, perms := range RolePermissions {
		if !strings.EqualFold(role, roleName) {
			continue
		}
		for _, perm := range perms {
			if perm == permission {
				return true, nil
			}
		}
	}
	return false, nil
}

func KnownRole(roleName string) bool {
	for role := range RolePermissions {
		if strings.EqualFold(role, roleName) {
			return true
		}
	}
	return false
}
