package riskmodel

import (
	"testing"

	"github.com/lintang-b-s/saferoutex/pkg/dataset"
	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	"github.com/stretchr/testify/assert"
)

func testSegment(id string, crime, lighting, crowd float64) *dataset.Segment {
	return dataset.NewSegment(id,
		datastructure.NewCoordinate(0, 0),
		datastructure.NewCoordinate(0.009, 0),
		crime, lighting, crowd)
}

func TestTimeMultiplierDaytime(t *testing.T) {
	for hour := 0; hour < 20; hour++ {
		assert.Equal(t, 1.0, TimeMultiplier(hour), "hour %d", hour)
	}
}

func TestTimeMultiplierNightRamp(t *testing.T) {
	testCases := []struct {
		hour int
		want float64
	}{
		{hour: 20, want: 1.0},
		{hour: 21, want: 1.09},
		{hour: 22, want: 1.15},
		{hour: 23, want: 1.18},
	}

	for _, tt := range testCases {
		assert.Equal(t, tt.want, TimeMultiplier(tt.hour), "hour %d", tt.hour)
	}

	// non-decreasing and capped near 1.2x
	prev := 1.0
	for hour := 20; hour <= 23; hour++ {
		m := TimeMultiplier(hour)
		assert.GreaterOrEqual(t, m, prev)
		assert.LessOrEqual(t, m, 1.2)
		prev = m
	}
}

func TestScoreSafestAndRiskiestSegments(t *testing.T) {
	model := NewModel(NewConfig())

	// perfectly lit, crowded, crime-free segment carries zero risk
	safe := testSegment("safe", 0, 1, 1)
	assert.Equal(t, 0.0, model.Score(safe, 10))

	// max crime, unlit, empty street hits the full weighted sum
	risky := testSegment("risky", 1, 0, 0)
	assert.Equal(t, 0.9, model.Score(risky, 10))
}

func TestScoreAppliesNightMultiplier(t *testing.T) {
	model := NewModel(NewConfig())
	risky := testSegment("risky", 1, 0, 0)

	day := model.Score(risky, 10)
	night := model.Score(risky, 23)
	assert.Greater(t, night, day)
	// 0.9 * 1.18 = 1.062 -> 1.06
	assert.Equal(t, 1.06, night)
}

func TestScoreDeterministicForFixedConfigVersion(t *testing.T) {
	model := NewModel(NewConfig())
	seg := testSegment("s1", 0.4, 0.3, 0.7)

	first := model.Score(seg, 22)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, model.Score(seg, 22))
	}
}

func TestScoreChangesAfterConfigUpdate(t *testing.T) {
	config := NewConfig()
	model := NewModel(config)
	risky := testSegment("risky", 1, 0, 0)

	before := model.Score(risky, 10)
	assert.Equal(t, 0.9, before)

	config.Update(map[string]float64{KeyCrimeWeight: 1.0})
	model.PurgeMemo()

	// new version keys a fresh memo entry: 1.0 + 0.15 + 0.15
	assert.Equal(t, 1.3, model.Score(risky, 10))
}

func TestConfigUpdateIsPermissiveAndVersioned(t *testing.T) {
	config := NewConfig()
	assert.Equal(t, uint64(0), config.Version())

	v := config.Update(map[string]float64{"some_future_knob": 0.25})
	assert.Equal(t, uint64(1), v)

	stored, ok := config.Get("some_future_knob")
	assert.True(t, ok)
	assert.Equal(t, 0.25, stored)

	v = config.Update(map[string]float64{KeyCrowdWeight: 0.4})
	assert.Equal(t, uint64(2), v)
	w, _ := config.Get(KeyCrowdWeight)
	assert.Equal(t, 0.4, w)
}
