package vertical

import (
	"context"
	"fmt"

	"github.com/ScientiaCapital/robot-brain/supervisor"
	"github.com/ScientiaCapital/robot-brain/types"
)

// Overtime starts past this many hours per pay period and pays time and
// a half.
const (
	regularHoursCap    = 40.0
	overtimeMultiplier = 1.5
)

// PayrollSupervisor runs an HR team of payroll agents.
type PayrollSupervisor struct {
	*Supervisor
}

// NewPayroll wraps inner as a payroll vertical.
func NewPayroll(inner *supervisor.Supervisor) *PayrollSupervisor {
	return &PayrollSupervisor{Supervisor: Wrap(Payroll, inner)}
}

// Employee is one payroll input record.
type Employee struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	HoursWorked float64 `json:"hours_worked"`
	HourlyRate  float64 `json:"hourly_rate"`
}

// ProcessedEmployee is an employee with computed pay.
type ProcessedEmployee struct {
	Employee
	GrossPay      float64 `json:"gross_pay"`
	OvertimeHours float64 `json:"overtime_hours"`
}

// PayrollRun is the outcome of one pay-period run.
type PayrollRun struct {
	Status        types.Status            `json:"status"`
	PayPeriod     string                  `json:"pay_period"`
	Employees     []ProcessedEmployee     `json:"employees"`
	WorkflowSteps []string                `json:"workflow_steps"`
	Result        *types.SupervisorResult `json:"-"`
}

// ProcessPayroll delegates the run to the HR team, then computes each
// employee's gross pay with overtime past the regular-hours cap.
func (s *PayrollSupervisor) ProcessPayroll(ctx context.Context, employees []Employee, payPeriod string) *PayrollRun {
	query := fmt.Sprintf("Process payroll for %d employees for pay period %s ensuring tax and compliance checks", len(employees), payPeriod)
	result := s.Execute(ctx, query, supervisor.ExecuteOptions{})

	run := &PayrollRun{
		Status:        result.Status,
		PayPeriod:     payPeriod,
		Employees:     make([]ProcessedEmployee, 0, len(employees)),
		WorkflowSteps: []string{"PayrollProcessor", "TaxCalculator", "ComplianceAgent"},
		Result:        result,
	}
	for _, emp := range employees {
		run.Employees = append(run.Employees, processEmployee(emp))
	}
	return run
}

func processEmployee(emp Employee) ProcessedEmployee {
	processed := ProcessedEmployee{Employee: emp}
	if emp.HoursWorked > regularHoursCap {
		processed.OvertimeHours = emp.HoursWorked - regularHoursCap
		processed.GrossPay = regularHoursCap*emp.HourlyRate +
			processed.OvertimeHours*emp.HourlyRate*overtimeMultiplier
	} else {
		processed.GrossPay = emp.HoursWorked * emp.HourlyRate
	}
	return processed
}
