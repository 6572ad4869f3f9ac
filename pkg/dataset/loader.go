package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/saferoutex/pkg/datastructure"
	"github.com/lintang-b-s/saferoutex/pkg/util"
	"go.uber.org/zap"
)

// segmentRecord is the wire schema of one dataset entry. Scores are pointers
// so that an explicit 0 passes the required check.
type segmentRecord struct {
	ID       string    `json:"id" validate:"required"`
	Start    []float64 `json:"start" validate:"required,len=2"`
	End      []float64 `json:"end" validate:"required,len=2"`
	Crime    *float64  `json:"crime" validate:"required,min=0,max=1"`
	Lighting *float64  `json:"lighting" validate:"required,min=0,max=1"`
	Crowd    *float64  `json:"crowd" validate:"required,min=0,max=1"`
}

type datasetFile struct {
	Segments []segmentRecord `json:"segments" validate:"required,min=1,dive"`
}

// Loader reads a risk dataset file, validates its schema and hands the result
// to the segment store. A failed load leaves the previously-good dataset in
// place.
type Loader struct {
	store    *SegmentStore
	validate *validator.Validate
	trans    ut.Translator
	log      *zap.Logger
}

func NewLoader(store *SegmentStore, log *zap.Logger) *Loader {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &Loader{
		store:    store,
		validate: validate,
		trans:    trans,
		log:      log,
	}
}

// LoadFile loads and validates the dataset at path, then atomically replaces
// the store contents. Returns the number of segments loaded.
func (l *Loader) LoadFile(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, util.WrapErrorf(err, util.ErrDataset, "read dataset %s", path)
	}
	return l.Load(raw)
}

// Load parses and validates raw dataset bytes and replaces the store
// contents.
func (l *Loader) Load(raw []byte) (int, error) {
	var file datasetFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return 0, util.WrapErrorf(err, util.ErrDataset, "malformed dataset json")
	}

	if err := l.validate.Struct(file); err != nil {
		return 0, util.WrapErrorf(err, util.ErrDataset,
			"dataset schema validation: %v", l.translate(err))
	}

	segments := make([]*Segment, 0, len(file.Segments))
	for _, rec := range file.Segments {
		segments = append(segments, NewSegment(
			rec.ID,
			datastructure.NewCoordinate(rec.Start[0], rec.Start[1]),
			datastructure.NewCoordinate(rec.End[0], rec.End[1]),
			*rec.Crime, *rec.Lighting, *rec.Crowd,
		))
	}

	if err := l.store.Replace(segments); err != nil {
		return 0, err
	}
	return len(segments), nil
}

func (l *Loader) translate(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, fmt.Sprintf("%s: %s", e.Namespace(), e.Translate(l.trans)))
	}
	return out
}
