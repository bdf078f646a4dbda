package pipeline

import (
	"fmt"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"
)

type outputReport struct {
	Path     string `json:"path"`
	Rows     int    `json:"rows"`
	Bytes    int    `json:"bytes"`
	Checksum string `json:"xxhash"`
}

type stepReport struct {
	Name       string  `json:"name"`
	Rows       int     `json:"rows"`
	DurationMs float64 `json:"duration_ms"`
}

type report struct {
	RunID     string         `json:"run_id"`
	Pipeline  string         `json:"pipeline"`
	Input     string         `json:"input"`
	Rows      int            `json:"rows"`
	Label     string         `json:"label"`
	Seed      int64          `json:"seed"`
	Classes   []ClassCount   `json:"classes,omitempty"`
	Groups    []int          `json:"groups,omitempty"`
	Outputs   []outputReport `json:"outputs"`
	Steps     []stepReport   `json:"steps"`
	RuntimeMs float64        `json:"runtime_ms"`
}

// MarshalReport renders a Summary as an indented JSON document
func MarshalReport(s *Summary) ([]byte, error) {
	rep := report{
		RunID:    s.RunID,
		Pipeline: s.Pipeline,
		Input:    s.Input,
		Rows:     s.Rows,
		Label:    s.Label,
		Seed:     s.Seed,
		Classes:  s.Classes,
		Groups:   s.Groups,
		Outputs:  make([]outputReport, 0, len(s.Outputs)),
	}
	for _, o := range s.Outputs {
		rep.Outputs = append(rep.Outputs, outputReport{
			Path:     o.Name,
			Rows:     o.Rows,
			Bytes:    o.Bytes,
			Checksum: fmt.Sprintf("%016x", o.Checksum),
		})
	}
	if s.Stats != nil {
		names := s.Stats.GetStepNames()
		runtimes := s.Stats.GetStepRuntimes()
		rows := s.Stats.GetNumRowsProcessed()
		rep.Steps = make([]stepReport, len(names))
		for i, name := range names {
			rep.Steps[i] = stepReport{
				Name:       name,
				Rows:       rows[i],
				DurationMs: float64(runtimes[i].Microseconds()) / 1000,
			}
		}
		rep.RuntimeMs = float64(s.Stats.GetRuntime().Microseconds()) / 1000
	}
	return jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(rep, "", "  ")
}

// WriteReport writes the JSON report of a Summary to path on fs
func WriteReport(fs afero.Fs, path string, s *Summary) error {
	data, err := MarshalReport(s)
	if err != nil {
		return err
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, append(data, '\n'), 0o644)
}
