package schema

import (
	"time"

	"github.com/sheetbind/sheetbind"
	"github.com/sheetbind/sheetbind/internal/catalog"
	"github.com/shopspring/decimal"
)

// Employee is one row of the employee roster sheet.
type Employee struct {
	Name      string `validate:"required"`
	Email     string `validate:"omitempty,email"`
	Role      string `validate:"required"`
	FullTime  bool
	Salary    decimal.Decimal
	StartDate time.Time
	Age       int `validate:"omitempty,gte=16,lte=100"`
}

// EmployeeSchema defines the expected columns for employee roster uploads.
var EmployeeSchema = sheetbind.Schema[Employee]{
	Sheet:   "Employees",
	MaxRows: 10000,
	Columns: []sheetbind.Column[Employee]{
		{Name: "Name", Display: "Full Name", Required: true,
			Description: "Legal name as it appears in the HR system",
			Bind:        sheetbind.Text(func(e *Employee, v string) { e.Name = v })},
		{Name: "Email", Display: "Email",
			Bind: sheetbind.Text(func(e *Employee, v string) { e.Email = v })},
		{Name: "Role", Display: "Role", Required: true,
			Bind: sheetbind.Enum([]sheetbind.Choice[string]{
				{Label: "Engineer", Value: "engineer"},
				{Label: "Manager", Value: "manager"},
				{Label: "Support", Value: "support"},
			}, func(e *Employee, v string) { e.Role = v })},
		{Name: "FullTime", Display: "Full Time",
			Bind: sheetbind.Bool("Yes", "No", func(e *Employee, v bool) { e.FullTime = v })},
		{Name: "Salary", Display: "Annual Salary",
			Description: "Gross annual salary; currency symbols are accepted",
			Bind:        sheetbind.Decimal(func(e *Employee, v decimal.Decimal) { e.Salary = v })},
		{Name: "StartDate", Display: "Start Date",
			Description: "YYYY-MM-DD preferred",
			Bind:        sheetbind.Date(func(e *Employee, v time.Time) { e.StartDate = v })},
		{Name: "Age", Display: "Age",
			Bind: sheetbind.Int(func(e *Employee, v int) { e.Age = v })},
	},
}

func init() {
	catalog.Register(catalog.New("employees", "Employee Roster", EmployeeSchema))
}
