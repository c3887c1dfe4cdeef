package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverageDaysJSON(t *testing.T) {
	out, err := json.Marshal(CoverageDays{Days: 12})
	require.NoError(t, err)
	assert.Equal(t, "12", string(out))

	out, err = json.Marshal(CoverageDays{BeyondHorizon: true})
	require.NoError(t, err)
	assert.Equal(t, `"beyond_horizon"`, string(out))

	var decoded CoverageDays
	require.NoError(t, json.Unmarshal([]byte(`"beyond_horizon"`), &decoded))
	assert.True(t, decoded.BeyondHorizon)

	require.NoError(t, json.Unmarshal([]byte("5"), &decoded))
	assert.Equal(t, CoverageDays{Days: 5}, decoded)
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.March, 9)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-09"`, string(out))

	var decoded Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-09"`), &decoded))
	assert.True(t, decoded.Equal(d.Time))
}

func TestReportNullableFields(t *testing.T) {
	report := InventoryInsightReport{
		ItemID:       "X",
		CoverageDays: CoverageDays{BeyondHorizon: true},
	}

	out, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "beyond_horizon", decoded["coverage_days"])
	assert.Nil(t, decoded["stockout_date"])
	assert.Nil(t, decoded["profit_margin"])
}

func TestItemParametersValidate(t *testing.T) {
	valid := ItemParameters{UnitPrice: 1, HoldingCostRate: 0.1, LeadTimeDays: 3, SafetyFactor: 1.25}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		params ItemParameters
	}{
		{"negative price", ItemParameters{UnitPrice: -1, SafetyFactor: 1.0}},
		{"negative holding rate", ItemParameters{HoldingCostRate: -0.1, SafetyFactor: 1.0}},
		{"negative lead time", ItemParameters{LeadTimeDays: -2, SafetyFactor: 1.0}},
		{"low safety factor", ItemParameters{SafetyFactor: 0.99}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.params.Validate()

			var inputErr *InvalidInputError
			require.ErrorAs(t, err, &inputErr)
		})
	}
}
