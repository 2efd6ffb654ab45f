package roster

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/five82/studentsearch/internal/student"
)

type seedFile struct {
	Students []student.Record `yaml:"students"`
}

// LoadSeed reads a YAML roster used in place of the built-in seed set.
// Records without an id get a generated one.
func LoadSeed(path string) ([]student.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}

	var raw seedFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	seen := make(map[string]bool, len(raw.Students))
	out := make([]student.Record, 0, len(raw.Students))
	for i, r := range raw.Students {
		rec, err := normalizeSeed(r)
		if err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i+1, err)
		}
		if seen[rec.ID] {
			return nil, fmt.Errorf("seed entry %d: duplicate id %q", i+1, rec.ID)
		}
		seen[rec.ID] = true
		out = append(out, rec)
	}
	return out, nil
}

func normalizeSeed(r student.Record) (student.Record, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.RollNumber = strings.TrimSpace(r.RollNumber)
	if r.Name == "" || r.RollNumber == "" {
		return student.Record{}, errors.New("name and roll are required")
	}
	branch, ok := student.ParseBranch(string(r.Branch))
	if !ok {
		return student.Record{}, fmt.Errorf("unknown branch %q", r.Branch)
	}
	r.Branch = branch
	r.ID = strings.TrimSpace(r.ID)
	if r.ID == "" {
		r.ID = student.NewID()
	}
	return r, nil
}
