package memory

import (
	"errors"
	"fmt"
	"io/fs"
	"learnbot/app/config"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/samber/do"
	"github.com/samber/oops"
)

// ErrMalformed is returned by Load when the memory file is not a JSON object of strings.
var ErrMalformed = errors.New("malformed memory file")

const malformedCode = "memory_malformed"

type Service struct {
	path string
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return NewFileService(cfg.Memory.Path), nil
}

func NewFileService(path string) *Service {
	return &Service{
		path: path,
	}
}

func (s *Service) Path() string {
	return s.path
}

// Load reads learned responses from disk. A missing file is an empty memory.
func (s *Service) Load() (*Memory, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("Memory file not found, starting empty", "path", s.path)
		return NewMemory(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read memory file: %w", err)
	}

	var raw map[string]string
	if err = sonic.ConfigStd.Unmarshal(data, &raw); err != nil {
		return nil, oops.
			Code(malformedCode).
			With("path", s.path).
			Wrapf(errors.Join(ErrMalformed, err), "failed to parse memory file")
	}
	if raw == nil {
		return nil, oops.
			Code(malformedCode).
			With("path", s.path).
			Wrapf(ErrMalformed, "memory file holds no object")
	}

	m := FromMap(raw)

	slog.Info("Loaded memory",
		"path", s.path,
		"entries_count", m.Len(),
	)

	return m, nil
}

// Save replaces the memory file with the full contents of m.
func (s *Service) Save(m *Memory) error {
	data, err := sonic.ConfigStd.MarshalIndent(m.Map(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal memory: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create memory dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp memory file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write memory: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp memory file: %w", err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace memory file: %w", err)
	}

	slog.Info("Saved memory",
		"path", s.path,
		"keys", m.Keys(),
	)

	return nil
}
