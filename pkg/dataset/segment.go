package dataset

import (
	"sync"

	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	"github.com/lintang-b-s/saferoutex/pkg/geo"
	"github.com/lintang-b-s/saferoutex/pkg/util"
	"go.uber.org/zap"
)

// Segment is one directed road link with its risk attributes. Immutable once
// loaded, a reload replaces the whole set instead of mutating in place.
type Segment struct {
	id       string
	start    datastructure.Coordinate
	end      datastructure.Coordinate
	crime    float64
	lighting float64
	crowd    float64
}

func NewSegment(id string, start, end datastructure.Coordinate, crime, lighting, crowd float64) *Segment {
	return &Segment{
		id:       id,
		start:    start,
		end:      end,
		crime:    crime,
		lighting: lighting,
		crowd:    crowd,
	}
}

func (s *Segment) GetID() string {
	return s.id
}

func (s *Segment) GetStart() datastructure.Coordinate {
	return s.start
}

func (s *Segment) GetEnd() datastructure.Coordinate {
	return s.end
}

func (s *Segment) GetCrime() float64 {
	return s.crime
}

func (s *Segment) GetLighting() float64 {
	return s.lighting
}

func (s *Segment) GetCrowd() float64 {
	return s.crowd
}

// SegmentStore owns the authoritative segment set and the precomputed planar
// length of every segment. Replace swaps the whole set atomically and bumps
// the dataset version, the published maps are never mutated afterwards so
// readers can hold a snapshot without locking.
type SegmentStore struct {
	mu       sync.RWMutex
	segments map[string]*Segment
	lengths  map[string]float64 // km
	version  uint64
	log      *zap.Logger
}

func NewSegmentStore(log *zap.Logger) *SegmentStore {
	return &SegmentStore{
		segments: make(map[string]*Segment),
		lengths:  make(map[string]float64),
		log:      log,
	}
}

// Replace validates every segment first and only then swaps both maps. On any
// validation failure the previous dataset stays untouched, there is no
// partial swap.
func (st *SegmentStore) Replace(segments []*Segment) error {
	newSegments := make(map[string]*Segment, len(segments))
	newLengths := make(map[string]float64, len(segments))

	for _, s := range segments {
		if err := validateSegment(s); err != nil {
			return err
		}
		if _, ok := newSegments[s.id]; ok {
			return util.WrapErrorf(nil, util.ErrDataset, "duplicate segment id %q", s.id)
		}
		newSegments[s.id] = s
		newLengths[s.id] = geo.PlanarLengthKM(s.start, s.end)
	}

	st.mu.Lock()
	st.segments = newSegments
	st.lengths = newLengths
	st.version++
	version := st.version
	st.mu.Unlock()

	st.log.Info("dataset replaced",
		zap.Int("segments", len(newSegments)),
		zap.Uint64("datasetVersion", version))
	return nil
}

func validateSegment(s *Segment) error {
	if s == nil || s.id == "" {
		return util.WrapErrorf(nil, util.ErrDataset, "segment is missing an id")
	}
	for _, c := range []datastructure.Coordinate{s.start, s.end} {
		if c.GetLat() < -90 || c.GetLat() > 90 || c.GetLon() < -180 || c.GetLon() > 180 {
			return util.WrapErrorf(nil, util.ErrDataset,
				"segment %q has out-of-range coordinate (%f, %f)", s.id, c.GetLat(), c.GetLon())
		}
	}
	for name, v := range map[string]float64{"crime": s.crime, "lighting": s.lighting, "crowd": s.crowd} {
		if v < 0 || v > 1 {
			return util.WrapErrorf(nil, util.ErrDataset,
				"segment %q has %s score %f outside [0,1]", s.id, name, v)
		}
	}
	return nil
}

func (st *SegmentStore) Get(id string) (*Segment, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.segments[id]
	return s, ok
}

func (st *SegmentStore) Length(id string) float64 {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.lengths[id]
}

func (st *SegmentStore) Version() uint64 {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.version
}

func (st *SegmentStore) NumberOfSegments() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.segments)
}

// Snapshot returns a consistent (segments, lengths, version) view. The maps
// are the published ones and must be treated as read-only.
func (st *SegmentStore) Snapshot() (map[string]*Segment, map[string]float64, uint64) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.segments, st.lengths, st.version
}
