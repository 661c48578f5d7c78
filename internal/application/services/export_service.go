package services

import (
	"context"
	"fmt"
	"io"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/zatekoja/physiodesk/backend/pkg/dates"
)

// Sheet names of the exported workbook
const (
	PatientsSheet = "Patients"
	PaymentsSheet = "Payments"
)

var (
	patientHeaders = []string{"First Name", "Last Name", "Phone", "Email", "Diagnosis", "Total Sessions", "Completed Sessions", "Remaining Sessions", "Registered"}
	paymentHeaders = []string{"Patient", "Amount", "Currency", "Status", "Due Date", "Paid Date", "Method"}
)

// ExportService writes the patient and payment lists as a spreadsheet
type ExportService struct {
	patients *PatientService
	payments *PaymentService
}

// NewExportService creates a new export service
func NewExportService(patients *PatientService, payments *PaymentService) *ExportService {
	return &ExportService{
		patients: patients,
		payments: payments,
	}
}

// WriteWorkbook streams an xlsx workbook with one sheet per collection to w
func (s *ExportService) WriteWorkbook(ctx context.Context, w io.Writer) error {
	patients, err := s.patients.GetAll(ctx)
	if err != nil {
		return err
	}
	payments, err := s.payments.GetAll(ctx)
	if err != nil {
		return err
	}

	file := excelize.NewFile()
	file.NewSheet(PatientsSheet)
	file.NewSheet(PaymentsSheet)
	file.DeleteSheet("Sheet1")
	file.SetActiveSheet(file.GetSheetIndex(PatientsSheet))

	writeHeader(file, PatientsSheet, patientHeaders)
	for i, p := range patients {
		writeRow(file, PatientsSheet, i+2, []interface{}{
			p.FirstName,
			p.LastName,
			p.Phone,
			p.Email,
			p.Diagnosis,
			p.TotalSessions,
			p.CompletedSessions,
			p.RemainingSessions(),
			dates.FormatISODate(p.CreatedAt.Local()),
		})
	}

	nameOf := nameIndex(patients)
	writeHeader(file, PaymentsSheet, paymentHeaders)
	for i, p := range payments {
		writeRow(file, PaymentsSheet, i+2, []interface{}{
			nameOf(p.PatientID),
			p.Amount,
			p.Currency,
			string(p.Status),
			p.DueDate,
			p.PaidDate,
			string(p.PaymentMethod),
		})
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeHeader(file *excelize.File, sheet string, headers []string) {
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	writeRow(file, sheet, 1, row)
}

func writeRow(file *excelize.File, sheet string, row int, values []interface{}) {
	for col, v := range values {
		file.SetCellValue(sheet, cellName(col, row), v)
	}
}

// cellName turns a zero-based column and one-based row into an A1 reference.
// Exported sheets never exceed 26 columns.
func cellName(col, row int) string {
	return fmt.Sprintf("%c%d", 'A'+col, row)
}
