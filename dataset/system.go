package dataset

import (
	"errors"
	"log/slog"
)

// ErrNotLoaded is returned when Clean or Inspect is called before Load.
var ErrNotLoaded = errors.New("no data loaded; call Load first")

// System is the central analysis type: it loads, cleans, and answers
// questions about the bike-share data. It is not safe for concurrent use;
// the pipeline is sequential by design.
type System struct {
	loader *Loader
	log    *slog.Logger

	raw *RawData

	// Cleaned records, populated by Clean. Stations are kept sorted by ID so
	// lookups can binary-search them.
	Trips       []Trip
	Stations    []Station
	Maintenance []Maintenance
}

// Option configures a System.
type Option func(*System)

// WithLogger sets the logger used by the pipeline. The default is
// slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(s *System) {
		s.log = log
	}
}

// NewSystem creates a System reading raw data from dataDir.
func NewSystem(dataDir string, opts ...Option) *System {
	s := &System{log: slog.Default()}

	for _, opt := range opts {
		opt(s)
	}

	s.loader = NewLoader(dataDir, s.log)

	return s
}

// Load reads the raw CSV files into memory.
func (s *System) Load() error {
	raw, err := s.loader.Load()
	if err != nil {
		return err
	}

	s.raw = raw

	return nil
}

// Inspect logs the shape, per-column missing counts, and leading rows of each
// raw table. It is a debugging aid, not part of the cleaning contract.
func (s *System) Inspect() error {
	if s.raw == nil {
		return ErrNotLoaded
	}

	const previewRows = 3

	for _, table := range []*Table{s.raw.Trips, s.raw.Stations, s.raw.Maintenance} {
		missing := table.MissingCounts()

		attrs := []any{
			slog.String("table", table.Name),
			slog.Int("rows", table.NumRows()),
			slog.Int("columns", len(table.Columns)),
		}

		for _, col := range table.Columns {
			if missing[col] > 0 {
				attrs = append(attrs, slog.Int("missing_"+col, missing[col]))
			}
		}

		s.log.Info("table summary", attrs...)

		for i := 0; i < previewRows && i < table.NumRows(); i++ {
			s.log.Debug("table row",
				slog.String("table", table.Name),
				slog.Int("row", i),
				slog.Any("cells", table.Rows[i]))
		}
	}

	return nil
}
