package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/boxwave/internal/analysis"
)

// Store keeps recorded traces on disk, one directory per run holding
// metadata.json and trace.csv.
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
	ID        string             `json:"id"`
	Preset    string             `json:"preset"`
	Timestamp time.Time          `json:"timestamp"`
	Cell      int                `json:"cell"`
	Row       int                `json:"row"`
	Col       int                `json:"col"`
	Rate      float64            `json:"rate"`
	TriggerAt float64            `json:"trigger_at"`
	Samples   int                `json:"samples"`
	Metrics   map[string]float64 `json:"metrics"`
}

var header = []string{"time", "height", "rot_x", "rot_z"}

func (s *Store) Save(preset string, triggerAt float64, tr *analysis.Trace, metrics map[string]float64) (string, error) {
	if preset == "" {
		preset = "custom"
	}
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", preset, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Preset:    preset,
		Timestamp: now,
		Cell:      tr.Cell,
		Row:       tr.Row,
		Col:       tr.Col,
		Rate:      tr.Rate,
		TriggerAt: triggerAt,
		Samples:   tr.Len(),
		Metrics:   metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(header); err != nil {
		return "", err
	}
	format := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	for i := range tr.Times {
		row := []string{format(tr.Times[i]), format(tr.Heights[i]), format(tr.RotX[i]), format(tr.RotZ[i])}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return runID, nil
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
		return nil, err
	}
	return &meta, nil
}

// LoadTrace rebuilds a saved trace. Values come back rounded to six decimals.
func (s *Store) LoadTrace(runID string) (*analysis.Trace, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(header)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	tr := &analysis.Trace{Cell: meta.Cell, Row: meta.Row, Col: meta.Col, Rate: meta.Rate}
	for i, record := range records {
		if i == 0 {
			continue
		}
		var vals [4]float64
		for j := range vals {
			if vals[j], err = strconv.ParseFloat(record[j], 64); err != nil {
				return nil, fmt.Errorf("run %s line %d: %w", runID, i+1, err)
			}
		}
		tr.Times = append(tr.Times, vals[0])
		tr.Heights = append(tr.Heights, vals[1])
		tr.RotX = append(tr.RotX, vals[2])
		tr.RotZ = append(tr.RotZ, vals[3])
	}
	return tr, nil
}
