package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePlace(t *testing.T) {
	assert.Equal(t, "silk_board", NormalizePlace("Silk Board"))
	assert.Equal(t, "silk_board", NormalizePlace("  silk board "))
	assert.Equal(t, "kr_puram", NormalizePlace("KR Puram"))
}

func TestPredictionRequestValidate(t *testing.T) {
	valid := PredictionRequest{Place: "silk_board", Day: "Monday", StartHour: 8, EndHour: 10}

	t.Run("valid request", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("unknown place", func(t *testing.T) {
		req := valid
		req.Place = "mg_road"
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid location")
		assert.Contains(t, err.Error(), "silk_board")
	})

	t.Run("unknown day", func(t *testing.T) {
		req := valid
		req.Day = "Funday"
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid day")
	})

	t.Run("hour out of bounds", func(t *testing.T) {
		req := valid
		req.EndHour = 24
		assert.Error(t, req.Validate())

		req = valid
		req.StartHour = -1
		assert.Error(t, req.Validate())
	})

	t.Run("end before start", func(t *testing.T) {
		req := valid
		req.StartHour = 10
		req.EndHour = 8
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "End hour must be greater than or equal to start hour")
	})

	t.Run("normalize then validate accepts display names", func(t *testing.T) {
		req := PredictionRequest{Place: "Silk Board", Day: "Monday", StartHour: 8, EndHour: 10}
		req.Normalize()
		assert.NoError(t, req.Validate())
	})
}

func TestClassifyTraffic(t *testing.T) {
	tests := []struct {
		pcu      float64
		level    string
		color    string
		severity int
	}{
		{0, TrafficLevelNormal, "#10B981", SeverityNormal},
		{1499.99, TrafficLevelNormal, "#10B981", SeverityNormal},
		{1500, TrafficLevelModerate, "#F59E0B", SeverityModerate},
		{2499.99, TrafficLevelModerate, "#F59E0B", SeverityModerate},
		{2500, TrafficLevelHigh, "#EF4444", SeverityHigh},
		{9000, TrafficLevelHigh, "#EF4444", SeverityHigh},
	}

	for _, tt := range tests {
		tier := ClassifyTraffic(tt.pcu)
		assert.Equal(t, tt.level, tier.Level, "pcu=%v", tt.pcu)
		assert.Equal(t, tt.color, tier.Color, "pcu=%v", tt.pcu)
		assert.Equal(t, tt.severity, tier.Severity, "pcu=%v", tt.pcu)
	}
}

func TestLocationTable(t *testing.T) {
	require.Len(t, Locations, 4)

	for _, id := range []string{"silk_board", "kr_puram", "whitefield", "hebbal"} {
		loc, ok := LocationByID(id)
		require.True(t, ok, id)
		assert.NotEmpty(t, loc.Name)
		assert.NotZero(t, loc.Latitude)
		assert.NotZero(t, loc.Longitude)
	}

	_, ok := LocationByID("mg_road")
	assert.False(t, ok)
}

func TestDaysOfWeek(t *testing.T) {
	require.Len(t, DaysOfWeek, 7)
	assert.Equal(t, "Monday", DaysOfWeek[0])
	assert.Equal(t, "Sunday", DaysOfWeek[6])
	assert.True(t, IsDayOfWeek("Friday"))
	assert.False(t, IsDayOfWeek("friday"), "day names are case sensitive like the wire contract")
}

func TestNewStatusCheck(t *testing.T) {
	check := NewStatusCheck("probe")
	assert.Equal(t, "probe", check.ClientName)
	assert.NotEmpty(t, check.ID)
	assert.False(t, check.Timestamp.IsZero())
	assert.True(t, strings.HasPrefix(check.ID, "c"), "cuid ids start with c")
}

func TestNewPredictionRecord(t *testing.T) {
	req := PredictionRequest{Place: "hebbal", Day: "Friday", StartHour: 17, EndHour: 20}
	resp := &PredictionResponse{PeakHour: 19, PeakTraffic: 4200.5, AverageTraffic: 3900.25}

	record := NewPredictionRecord(req, resp)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "hebbal", record.Place)
	assert.Equal(t, "Friday", record.Day)
	assert.Equal(t, int32(17), record.StartHour)
	assert.Equal(t, int32(20), record.EndHour)
	assert.Equal(t, int32(19), record.PeakHour)
	assert.Equal(t, 4200.5, record.PeakTraffic)
	assert.Equal(t, 3900.25, record.AverageTraffic)
	assert.False(t, record.CreatedAt.IsZero())
}
