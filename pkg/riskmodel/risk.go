package riskmodel

import (
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/saferoutex/pkg"
	"github.com/lintang-b-s/saferoutex/pkg/dataset"
	"github.com/lintang-b-s/saferoutex/pkg/util"
)

type memoKey struct {
	segmentID     string
	hour          int
	configVersion uint64
}

// Model scores a segment's danger for a given hour. Scoring is pure and
// deterministic for a fixed config version, so results are memoized keyed by
// (segment id, hour, config version) in a bounded LRU.
type Model struct {
	config *Config
	memo   *lru.Cache[memoKey, float64]
}

func NewModel(config *Config) *Model {
	memo, _ := lru.New[memoKey, float64](pkg.RISK_MEMO_CAPACITY)
	return &Model{
		config: config,
		memo:   memo,
	}
}

func (m *Model) GetConfig() *Config {
	return m.config
}

// Score combines the nonlinearly-scaled crime score, lighting deficit and
// crowd scarcity of a segment with the config weights, boosted by the
// time-of-day multiplier. Rounded to 2 decimals.
func (m *Model) Score(s *dataset.Segment, hour int) float64 {
	params, version := m.config.snapshot()

	key := memoKey{segmentID: s.GetID(), hour: hour, configVersion: version}
	if score, ok := m.memo.Get(key); ok {
		return score
	}

	crime := math.Pow(s.GetCrime(), params.exponent)
	lightingDeficit := math.Pow(1-s.GetLighting(), params.exponent)
	crowdScarcity := math.Pow(1-s.GetCrowd(), params.exponent)

	base := params.crimeWeight*crime +
		params.lightingWeight*lightingDeficit +
		params.crowdWeight*crowdScarcity

	score := util.RoundFloat(base*TimeMultiplier(hour), 2)
	m.memo.Add(key, score)
	return score
}

// PurgeMemo drops all memoized scores. Called on dataset reload, config
// update and the cache TTL backstop.
func (m *Model) PurgeMemo() {
	m.memo.Purge()
}

// TimeMultiplier is 1.0 during the day and ramps smoothly after
// NIGHT_RAMP_HOUR, saturating just under 1.2x late at night. Rounded to 2
// decimals.
func TimeMultiplier(hour int) float64 {
	if hour < pkg.NIGHT_RAMP_HOUR {
		return 1.0
	}
	return util.RoundFloat(1+0.2*math.Tanh(float64(hour-pkg.NIGHT_RAMP_HOUR)/2), 2)
}
