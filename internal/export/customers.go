// Package export renders business data in download formats.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

var CustomerHeader = []string{"name", "email", "type", "cognitiveGoal", "progressScore", "totalSpent"}

// WriteCustomersCSV writes one row per customer after the header. Fields
// holding commas, quotes or newlines are quoted.
func WriteCustomersCSV(w io.Writer, customers []models.Customer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CustomerHeader); err != nil {
		return err
	}
	for _, c := range customers {
		err := cw.Write([]string{
			c.Name,
			c.Email,
			c.Type,
			c.CognitiveGoal,
			strconv.Itoa(c.ProgressScore),
			strconv.FormatFloat(c.TotalSpent, 'f', -1, 64),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
