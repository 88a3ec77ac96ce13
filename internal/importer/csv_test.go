package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want *int
	}{
		{"233", intPtr(233)},
		{" 233 ", intPtr(233)},
		{"4.5", intPtr(4)},
		{"€45,000", intPtr(45000)},
		{"940 km/h", intPtr(940)},
		{"", nil},
		{"N/A", nil},
		{"-", nil},
		{"abc", nil},
	}

	for _, tc := range cases {
		got := parseNumber(tc.in)
		if tc.want == nil {
			assert.Nil(t, got, tc.in)
			continue
		}
		require.NotNil(t, got, tc.in)
		assert.Equal(t, *tc.want, *got, tc.in)
	}
}

func TestParseDecimal(t *testing.T) {
	got := parseDecimal("4.6 sec")
	require.NotNil(t, got)
	assert.Equal(t, 4.6, *got)

	assert.Nil(t, parseDecimal("N/A"))
	assert.Nil(t, parseDecimal(""))
	assert.Nil(t, parseDecimal("unknown"))
}

func TestParse(t *testing.T) {
	input := " Brand , Model ,AccelSec\n" +
		" Tesla , Model 3 ,4.6\n" +
		"BMW,iX3,6.8\n"

	records, err := parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Tesla", records[0]["Brand"])
	assert.Equal(t, "Model 3", records[0]["Model"])
	assert.Equal(t, "4.6", records[0]["AccelSec"])
	assert.Equal(t, "BMW", records[1]["Brand"])
}

func TestParseShortRow(t *testing.T) {
	records, err := parse(strings.NewReader("Brand,Model\nTesla\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "Tesla", records[0]["Brand"])
	_, ok := records[0]["Model"]
	assert.False(t, ok)
}

func TestParseEmpty(t *testing.T) {
	records, err := parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestVehicleArgs(t *testing.T) {
	rec := map[string]string{
		"Brand":           "Tesla",
		"Model":           "Model 3 Long Range",
		"AccelSec":        "4.6",
		"TopSpeed_KmH":    "233",
		"Range_Km":        "450",
		"Efficiency_WhKm": "161",
		"FastCharge_KmH":  "940",
		"RapidCharge":     "Yes",
		"PowerTrain":      "AWD",
		"PlugType":        "Type 2 CCS",
		"BodyStyle":       "Sedan",
		"Segment":         "D",
		"Seats":           "5",
		"PriceEuro":       "55480",
		"Date":            "08/20",
	}

	args := vehicleArgs(rec)
	require.Len(t, args, 15)

	assert.Equal(t, "Tesla", args[0])
	assert.Equal(t, "Model 3 Long Range", args[1])
	assert.Equal(t, 4.6, *args[2].(*float64))
	assert.Equal(t, 233, *args[3].(*int))
	assert.Equal(t, 450, *args[4].(*int))
	assert.Equal(t, 161, *args[5].(*int))
	assert.Equal(t, "940", args[6])
	assert.Equal(t, "Yes", args[7])
	assert.Equal(t, "AWD", args[8])
	assert.Equal(t, 5, *args[12].(*int))
	assert.Equal(t, 55480, *args[13].(*int))
	assert.Equal(t, "08/20", args[14])
}

func TestVehicleArgsMissingNumerics(t *testing.T) {
	args := vehicleArgs(map[string]string{
		"Brand":     "Unknown",
		"Model":     "Prototype",
		"AccelSec":  "N/A",
		"Seats":     "",
		"PriceEuro": "TBD",
	})

	assert.Nil(t, args[2].(*float64))
	assert.Nil(t, args[12].(*int))
	assert.Nil(t, args[13].(*int))
}

func intPtr(n int) *int { return &n }
