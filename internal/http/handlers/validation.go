package handlers

import (
	"slices"
	"strings"

	"github.com/rogerio-castellano/ops-dashboard/internal/report"
	"github.com/rogerio-castellano/ops-dashboard/internal/services"
)

var reportTypes = []string{report.TypeSales, report.TypeInventory, report.TypeCustomers}

func validateReportRequest(req ReportRequest) services.ValidationErrors {
	errs := services.ValidationErrors{}
	if !slices.Contains(reportTypes, req.Type) {
		errs = append(errs, services.FieldError{Field: "type", Description: "Type must be one of " + strings.Join(reportTypes, ", ")})
	}
	switch req.Format {
	case "", "json":
	case "csv":
		if req.Type != report.TypeCustomers {
			errs = append(errs, services.FieldError{Field: "format", Description: "CSV is only available for the customers report"})
		}
	default:
		errs = append(errs, services.FieldError{Field: "format", Description: "Format must be json or csv"})
	}
	return errs
}

func validateCredentials(req CredentialsRequest) services.ValidationErrors {
	errs := services.ValidationErrors{}
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, services.FieldError{Field: "email", Description: "Email is required"})
	}
	if req.Password == "" {
		errs = append(errs, services.FieldError{Field: "password", Description: "Password is required"})
	}
	return errs
}
