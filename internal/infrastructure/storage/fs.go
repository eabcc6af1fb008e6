package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/daytile/internal/domain"
)

// FS stores one JSON file per solved day, bucketed by year:
// <dir>/<year>/<id>.json where id is "YYYY-MM-DD".
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func yearOf(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return "misc"
}

func (s *FS) pathFor(id string) string {
	return filepath.Join(s.dir, yearOf(id), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, d *domain.SolvedDay) error {
	if d == nil || d.ID == "" {
		return errors.New("invalid solved day: missing ID")
	}
	target := s.pathFor(d.ID)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.SolvedDay, error) {
	data, err := os.ReadFile(s.pathFor(id))
	if err != nil {
		return nil, err
	}
	var out domain.SolvedDay
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.SolvedDayMeta, error) {
	type m struct {
		ID        string `json:"id"`
		Name      string `json:"name,omitempty"`
		CreatedAt int64  `json:"createdAt,omitempty"`
	}

	var out []domain.SolvedDayMeta
	years, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	for _, y := range years {
		if !y.IsDir() {
			continue
		}
		ents, err := os.ReadDir(filepath.Join(s.dir, y.Name()))
		if err != nil {
			continue
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, y.Name(), e.Name()))
			if err != nil {
				continue
			}
			var mm m
			if err := json.Unmarshal(data, &mm); err != nil || mm.ID == "" {
				continue
			}
			out = append(out, domain.SolvedDayMeta{
				ID:        mm.ID,
				Name:      mm.Name,
				CreatedAt: mm.CreatedAt,
			})
		}
	}
	return out, nil
}
