package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	commonerrs "github.com/citybike-labs/citybike/errors"
)

// The three raw files the loader expects in its data directory. Each may also
// be present gzip-compressed with a .gz suffix.
const (
	tripsFile       = "trips.csv"
	stationsFile    = "stations.csv"
	maintenanceFile = "maintenance.csv"
)

// ErrNoDataFile is returned when neither the plain nor the gzipped variant of
// an expected file exists.
var ErrNoDataFile = errors.New("data file not found")

// RawData holds the three loaded tables before cleaning.
type RawData struct {
	Trips       *Table
	Stations    *Table
	Maintenance *Table
}

// Loader reads the raw CSV files. It handles gzip-compressed files and
// detects non-UTF-8 input, decoding legacy Latin-1/Windows-1252 exports
// transparently.
type Loader struct {
	dataDir string
	log     *slog.Logger
}

// NewLoader creates a loader rooted at dataDir. A nil logger falls back to
// slog.Default().
func NewLoader(dataDir string, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}

	return &Loader{dataDir: dataDir, log: log}
}

// Load reads all three raw tables. Problems with individual files are
// accumulated so a single run reports everything that is wrong with the data
// directory.
func (l *Loader) Load() (*RawData, error) {
	raw := &RawData{}
	errs := &commonerrs.Collection{}

	load := func(name string, dst **Table) {
		table, err := l.readTable(name)
		if err != nil {
			errs.Addf(err, "loading %s", name)

			return
		}

		*dst = table

		l.log.Info("loaded table",
			slog.String("table", name),
			slog.Int("rows", table.NumRows()),
			slog.Int("columns", len(table.Columns)))
	}

	load(tripsFile, &raw.Trips)
	load(stationsFile, &raw.Stations)
	load(maintenanceFile, &raw.Maintenance)

	if err := errs.GetError(); err != nil {
		return nil, err
	}

	return raw, nil
}

// readTable reads one CSV file into a Table, preferring the plain file and
// falling back to the gzipped variant.
func (l *Loader) readTable(name string) (*Table, error) {
	raw, err := l.readFile(name)
	if err != nil {
		return nil, err
	}

	decoded, err := decodeToUTF8(raw, l.log, name)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1 // ragged rows surface as missing cells, not errors

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("parsing %s: %w", name, commonerrs.ErrEmptyInput)
	}

	columns := make([]string, len(records[0]))
	for i, c := range records[0] {
		columns[i] = strings.TrimSpace(c)
	}

	return &Table{
		Name:    strings.TrimSuffix(name, ".csv"),
		Columns: columns,
		Rows:    records[1:],
	}, nil
}

func (l *Loader) readFile(name string) ([]byte, error) {
	plain := filepath.Join(l.dataDir, name)
	if _, err := os.Stat(plain); err == nil {
		return os.ReadFile(plain)
	}

	gzipped := plain + ".gz"
	if _, err := os.Stat(gzipped); err != nil {
		return nil, fmt.Errorf("%w: %s (or %s.gz)", ErrNoDataFile, plain, name)
	}

	f, err := os.Open(gzipped)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", gzipped, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", gzipped, err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", gzipped, err)
	}

	return raw, nil
}

// decodeToUTF8 sniffs the charset of raw and decodes Latin-1/Windows-1252
// exports into UTF-8. UTF-8 (and its ASCII subset) passes through untouched,
// as does anything the detector cannot classify.
func decodeToUTF8(raw []byte, log *slog.Logger, name string) ([]byte, error) {
	if len(raw) == 0 {
		return raw, nil
	}

	best, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil {
		// Detector has no guess; assume UTF-8 and let the CSV parser decide.
		return raw, nil //nolint:nilerr
	}

	switch best.Charset {
	case "UTF-8", "ASCII":
		return raw, nil
	case "ISO-8859-1", "windows-1252":
		// The detector classifies pure-ASCII input as Latin-1 as well. Both
		// charsets are identity on 7-bit bytes, so only decode (and warn)
		// when a high byte is actually present.
		if !hasHighBytes(raw) {
			return raw, nil
		}

		log.Warn("decoding legacy charset",
			slog.String("file", name),
			slog.String("charset", best.Charset))

		decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
		if err != nil {
			return nil, fmt.Errorf("decoding %s as %s: %w", name, best.Charset, err)
		}

		return decoded, nil
	default:
		// Unknown charset: pass through rather than guess a transformation.
		return raw, nil
	}
}

func hasHighBytes(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return true
		}
	}

	return false
}
