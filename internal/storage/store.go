package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/dynamo"
)

const (
	Numeric  = "numeric"
	Analytic = "analytic"
)

var ErrUnknownKind = errors.New("storage: unknown trajectory kind")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Model       string             `json:"model"`
	Timestamp   time.Time          `json:"timestamp"`
	Params      map[string]float64 `json:"params"`
	Y0          float64            `json:"y0"`
	Interval    dynamo.Interval    `json:"interval"`
	Steps       int                `json:"steps"`
	CurvePoints int                `json:"curve_points"`
	IncludeEnd  bool               `json:"include_end"`
	AlignStart  bool               `json:"align_start"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Save writes a run directory holding metadata.json, numeric.csv and
// analytic.csv, and returns the run id.
func (s *Store) Save(cfg *config.Config, numeric, analytic dynamo.Trajectory, metrics map[string]float64) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", cfg.Model, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Model:       cfg.Model,
		Timestamp:   now,
		Params:      cfg.ModelParams(),
		Y0:          cfg.Y0,
		Interval:    cfg.Interval,
		Steps:       cfg.Steps,
		CurvePoints: cfg.CurvePoints,
		IncludeEnd:  cfg.IncludeEnd,
		AlignStart:  cfg.AlignStart,
		Metrics:     finiteMetrics(metrics),
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeTrajectory(filepath.Join(runDir, Numeric+".csv"), numeric); err != nil {
		return "", err
	}
	if err := writeTrajectory(filepath.Join(runDir, Analytic+".csv"), analytic); err != nil {
		return "", err
	}

	logrus.Debugf("saved run %s (%d numeric, %d analytic samples) to %s", runID, len(numeric), len(analytic), runDir)
	return runID, nil
}

// finiteMetrics drops NaN and Inf values, which encoding/json rejects.
func finiteMetrics(metrics map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(metrics))
	for k, v := range metrics {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			logrus.Warnf("dropping non-finite metric %s=%v", k, v)
			continue
		}
		out[k] = v
	}
	return out
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTrajectory(path string, traj dynamo.Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteTrajectory(f, traj)
}

// WriteTrajectory writes traj as CSV with an x,y header and 6-decimal values,
// the format LoadTrajectory reads.
func WriteTrajectory(w io.Writer, traj dynamo.Trajectory) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range traj {
		row := []string{
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			logrus.Debugf("skipping %s: %v", entry.Name(), err)
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s metadata: %w", runID, err)
	}

	return &meta, nil
}

// LoadTrajectory reads the Numeric or Analytic samples of a run.
func (s *Store) LoadTrajectory(runID, kind string) (dynamo.Trajectory, error) {
	if kind != Numeric && kind != Analytic {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, kind+".csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return dynamo.Trajectory{}, nil
	}

	traj := make(dynamo.Trajectory, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) < 2 {
			continue
		}

		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%s.csv row %d: %w", kind, i+1, err)
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s.csv row %d: %w", kind, i+1, err)
		}
		traj = append(traj, dynamo.Sample{X: x, Y: y})
	}

	return traj, nil
}
