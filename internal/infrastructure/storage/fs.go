package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"svw.info/routegen/internal/domain"
)

// FS stores routes as indented JSON files bucketed by difficulty grade.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func diffDir(d domain.Difficulty) string {
	switch d {
	case domain.Intermediate:
		return "intermediate"
	case domain.Hard:
		return "hard"
	case domain.VeryHard:
		return "very-hard"
	default:
		return "easy"
	}
}

var diffBuckets = []domain.Difficulty{domain.Easy, domain.Intermediate, domain.Hard, domain.VeryHard}

func (s *FS) pathFor(id string, d domain.Difficulty) string {
	return filepath.Join(s.dir, diffDir(d), strings.TrimSpace(id)+".json")
}

// Save writes the route under <dir>/<difficulty>/<id>.json, assigning a
// fresh uuid and timestamp when missing.
func (s *FS) Save(ctx context.Context, r *domain.SavedRoute) error {
	if r == nil || len(r.Holds) == 0 {
		return errors.New("invalid route: no holds")
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().UnixNano()
	}
	target := s.pathFor(r.ID, r.Difficulty)
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
	return enc.Encode(r)
}

// Load scans the difficulty buckets for id.
func (s *FS) Load(ctx context.Context, id string) (*domain.SavedRoute, error) {
	var data []byte
	var bucket domain.Difficulty
	for _, d := range diffBuckets {
		path := s.pathFor(id, d)
		if _, statErr := os.Stat(path); statErr == nil {
			b, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			data = b
			bucket = d
			break
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.SavedRoute
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out.Difficulty == 0 {
		out.Difficulty = bucket
	}
	return &out, nil
}

// List returns metadata for every stored route.
func (s *FS) List(ctx context.Context) ([]domain.RouteMeta, error) {
	var out []domain.RouteMeta
	for _, d := range diffBuckets {
		dir := filepath.Join(s.dir, diffDir(d))
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var r domain.SavedRoute
			if err := json.Unmarshal(data, &r); err != nil || r.ID == "" {
				continue
			}
			dd := r.Difficulty
			if dd == 0 {
				dd = d
			}
			out = append(out, domain.RouteMeta{
				ID:         r.ID,
				Name:       r.Name,
				Difficulty: dd,
				CreatedAt:  r.CreatedAt,
			})
		}
	}
	return out, nil
}
