// Package baser implements the environment layer of the Key Event Log
// storage engine: it locates or creates the on-disk directory, opens the
// embedded ordered key/value environment, and manages its lifecycle.
//
// Grounded on original_source/src/keri/db/dbing.py's Databaser class — same
// path-resolution fallback (/var, falling back to $HOME on EACCES/EPERM),
// same temp-instance naming, same directory layout.
package baser

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/google/uuid"
	"github.com/ledgerwatch/lmdb-go/lmdb"

	"github.com/keridb/kelsdb/kelerr"
)

const (
	// HeadDirPath is the default head of the directory path for a
	// non-temporary instance.
	HeadDirPath = "/var"

	// TailDirPath is appended to the head to form the preferred directory.
	TailDirPath = "keri/db"

	// AltTailDirPath is appended to the user's home directory when the
	// preferred location under HeadDirPath cannot be used.
	AltTailDirPath = ".keri/db"

	// TempDirPrefix and TempDirSuffix name the system-temp directory minted
	// for temporary/test instances.
	TempDirPrefix = "keri_lmdb_"
	TempDirSuffix = "_test"

	// DefaultMaxSubStores bounds the number of named sub-stores the
	// environment can hold open at once. Ten are used by the schema layer;
	// the remainder is headroom for ad hoc callers of the keyspace layer.
	DefaultMaxSubStores = 32

	// MaxKeySize is the floor the embedded store must support (§6.2); keys
	// built by dgKey/snKey that exceed this are rejected before they ever
	// reach the store.
	MaxKeySize = 511
)

// Config configures an environment open.
type Config struct {
	// HeadDirPath overrides the default "/var" head. Ignored when Temp is true.
	HeadDirPath string

	// Name differentiates this instance's directory from others sharing a head.
	Name string

	// Temp selects a freshly minted system-temp directory instead of
	// HeadDirPath/TailDirPath, for test/ephemeral instances.
	Temp bool

	// MaxSubStores overrides DefaultMaxSubStores. Zero means use the default.
	MaxSubStores int

	// MapSize overrides the environment's memory map size, in bytes. Zero
	// means let the embedded store pick its own default.
	MapSize int64

	// Logger receives structured diagnostics. A nil Logger discards them.
	Logger *slog.Logger
}

// Baser owns one on-disk environment directory and its open LMDB
// environment handle.
type Baser struct {
	path   string
	env    *lmdb.Env
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

// Open resolves the environment directory per §4.1, creates it if needed,
// and opens the embedded ordered key/value environment with capacity for
// cfg.MaxSubStores named sub-stores (DefaultMaxSubStores when that is zero).
func Open(cfg Config) (*Baser, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}

	path, err := resolvePath(cfg, logger)
	if err != nil {
		return nil, err
	}

	env, err := lmdb.NewEnv()
	if err != nil {
		return nil, kelerr.New(kelerr.IoFailure, "", "create environment handle", err)
	}

	maxSubStores := cfg.MaxSubStores
	if maxSubStores <= 0 {
		maxSubStores = DefaultMaxSubStores
	}
	if err := env.SetMaxDBs(maxSubStores); err != nil {
		return nil, kelerr.New(kelerr.IoFailure, "", "set max named sub-stores", err)
	}
	if cfg.MapSize > 0 {
		if err := env.SetMapSize(cfg.MapSize); err != nil {
			return nil, kelerr.New(kelerr.IoFailure, "", "set map size", err)
		}
	}

	if err := env.Open(path, 0, 0o600); err != nil {
		return nil, kelerr.New(kelerr.IoFailure, "", fmt.Sprintf("open environment at %s", path), err)
	}

	logger.Debug("opened environment", "path", path, "temp", cfg.Temp)
	return &Baser{path: path, env: env, logger: logger}, nil
}

// OpenTemp opens a temporary instance named name, runs fn against it, and
// guarantees Close + Remove on every exit path including panics — the Go
// analogue of the Python source's @contextmanager openDatabaser, per the
// "Context-manager helpers ... become scoped-resource types" design note.
func OpenTemp(name string, fn func(*Baser) error) error {
	b, err := Open(Config{Temp: true, Name: name})
	if err != nil {
		return err
	}
	defer func() {
		_ = b.Close()
		_ = b.Remove()
	}()
	return fn(b)
}

// Path returns the resolved directory path, for diagnostics.
func (b *Baser) Path() string {
	return b.path
}

// Env returns the underlying LMDB environment handle for use by the
// keyspace layer. Returns nil if the environment is closed.
func (b *Baser) Env() (*lmdb.Env, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, kelerr.New(kelerr.NotOpened, "", "environment is closed", nil)
	}
	return b.env, nil
}

// Close closes the environment. Idempotent: closing an already-closed
// environment succeeds silently.
func (b *Baser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	b.env.Close()
	b.logger.Debug("closed environment", "path", b.path)
	return nil
}

// Remove deletes the backing directory tree. Guarded by an existence check;
// intended for temporary/test instances only.
func (b *Baser) Remove() error {
	if _, err := os.Stat(b.path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := os.RemoveAll(b.path); err != nil {
		return kelerr.New(kelerr.IoFailure, "", fmt.Sprintf("remove directory %s", b.path), err)
	}
	return nil
}

func resolvePath(cfg Config, logger *slog.Logger) (string, error) {
	if cfg.Temp {
		parent, err := os.MkdirTemp("", TempDirPrefix+uuid.NewString()[:8]+TempDirSuffix)
		if err != nil {
			return "", kelerr.New(kelerr.IoFailure, "", "create temp parent directory", err)
		}
		path := filepath.Join(parent, TailDirPath, cfg.Name)
		if err := os.MkdirAll(path, 0o700); err != nil {
			return "", kelerr.New(kelerr.IoFailure, "", fmt.Sprintf("create temp directory %s", path), err)
		}
		return path, nil
	}

	head := cfg.HeadDirPath
	if head == "" {
		head = HeadDirPath
	}

	path, err := absExpand(filepath.Join(head, TailDirPath, cfg.Name))
	if err != nil {
		return "", kelerr.New(kelerr.IoFailure, "", "resolve preferred path", err)
	}

	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		if mkErr := os.MkdirAll(path, 0o700); mkErr != nil {
			if !isPermissionDenied(mkErr) {
				return "", kelerr.New(kelerr.IoFailure, "", fmt.Sprintf("create directory %s", path), mkErr)
			}
			logger.Warn("preferred path not writable, falling back to home", "path", path, "error", mkErr)
			return altPath(cfg)
		}
		return path, nil
	} else if statErr != nil {
		return "", kelerr.New(kelerr.IoFailure, "", fmt.Sprintf("stat %s", path), statErr)
	}

	if !readWritable(path) {
		logger.Warn("preferred path not readable/writable, falling back to home", "path", path)
		return altPath(cfg)
	}
	return path, nil
}

func altPath(cfg Config) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", kelerr.New(kelerr.IoFailure, "", "resolve home directory", err)
	}
	path, err := absExpand(filepath.Join(home, AltTailDirPath, cfg.Name))
	if err != nil {
		return "", kelerr.New(kelerr.IoFailure, "", "resolve fallback path", err)
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		if mkErr := os.MkdirAll(path, 0o700); mkErr != nil {
			return "", kelerr.New(kelerr.IoFailure, "", fmt.Sprintf("create fallback directory %s", path), mkErr)
		}
	}
	return path, nil
}

func absExpand(path string) (string, error) {
	return filepath.Abs(path)
}

func isPermissionDenied(err error) bool {
	return errors.Is(err, os.ErrPermission) || errors.Is(err, syscall.EACCES) || errors.Is(err, syscall.EPERM)
}

// readWritable probes read+write access the portable way: attempt to
// create and immediately remove a throwaway file in the directory.
func readWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".kelsdb-rwcheck-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
