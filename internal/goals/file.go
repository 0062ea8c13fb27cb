package goals

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	apperrors "github.com/AlexanderJohnD/WealthWise/internal/errors"
	"github.com/AlexanderJohnD/WealthWise/internal/models"
)

// FileRepository keeps the goal array in <dir>/wealthwise-goals.json.
type FileRepository struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// NewFileRepository stores goals in dir.
func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{
		path: filepath.Join(dir, Slot+".json"),
		now:  time.Now,
	}
}

// Path returns the file backing the repository.
func (r *FileRepository) Path() string { return r.path }

// Insert appends goal to the file. The file is replaced atomically so a
// failed write leaves the previous goals intact.
func (r *FileRepository) Insert(_ context.Context, goal *models.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	goals, err := r.read()
	if err != nil {
		return err
	}

	stamp(goal, r.now())
	goals = append(goals, *goal)

	data, err := json.Marshal(goals)
	if err != nil {
		return apperrors.Storage(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), Slot+"-*.tmp")
	if err != nil {
		return apperrors.Storage(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return apperrors.Storage(err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.Storage(err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

// ListAll reads every stored goal. A missing file means no goals yet.
func (r *FileRepository) ListAll(_ context.Context) ([]models.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

func (r *FileRepository) read() ([]models.Goal, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.Goal{}, nil
	}
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	goals, err := decodeSlot(data)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return goals, nil
}
