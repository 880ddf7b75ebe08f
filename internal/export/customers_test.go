package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCustomersCSV_EmptyIsHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCustomersCSV(&buf, nil))
	assert.Equal(t, "name,email,type,cognitiveGoal,progressScore,totalSpent\n", buf.String())
}

func TestWriteCustomersCSV_Rows(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCustomersCSV(&buf, []models.Customer{
		{Name: "Sarah Johnson", Email: "sarah@email.com", Type: "General Consumer", CognitiveGoal: "Memory Enhancement", ProgressScore: 85, TotalSpent: 450},
		{Name: "Mike Chen", Email: "mike@email.com", Type: "Professional Athlete", CognitiveGoal: "Focus & Performance", ProgressScore: 92, TotalSpent: 780.5},
	})
	require.NoError(t, err)

	assert.Equal(t, "name,email,type,cognitiveGoal,progressScore,totalSpent\n"+
		"Sarah Johnson,sarah@email.com,General Consumer,Memory Enhancement,85,450\n"+
		"Mike Chen,mike@email.com,Professional Athlete,Focus & Performance,92,780.5\n", buf.String())
}

func TestWriteCustomersCSV_QuotesDelimiters(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCustomersCSV(&buf, []models.Customer{
		{Name: "Chen, Mike", Email: "mike@email.com", Type: `The "Pro"`, CognitiveGoal: "Focus\nPerformance"},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"Chen, Mike"`)
	assert.Contains(t, buf.String(), `"The ""Pro"""`)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Chen, Mike", "mike@email.com", `The "Pro"`, "Focus\nPerformance", "0", "0"}, records[1])
}
