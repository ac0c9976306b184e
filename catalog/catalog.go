package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lexigrid/board"
	"github.com/katalvlaran/lexigrid/level"
)

// Sentinel errors for catalog loading.
var (
	// ErrManifest indicates a missing or malformed manifest.
	ErrManifest = errors.New("catalog: cannot read manifest")
	// ErrNotFound indicates a manifest entry without a level document.
	ErrNotFound = errors.New("catalog: level document not found")
	// ErrDuplicate indicates a level ID listed twice.
	ErrDuplicate = errors.New("catalog: duplicate level id")
	// ErrBadID indicates a level ID that is not a valid relative path.
	ErrBadID = errors.New("catalog: invalid level id")
)

// ManifestNames lists the manifest file names Load probes, in order.
var ManifestNames = []string{"manifest.toml", "manifest.yaml", "manifest.yml"}

// Manifest lists level IDs in play order.
type Manifest struct {
	Levels []string `toml:"levels" yaml:"levels"`
}

// Failure records a level that could not be loaded.
type Failure struct {
	ID  string
	Err error
}

// Option configures Load.
type Option func(*options)

type options struct {
	logger    zerolog.Logger
	levelOpts []level.Option
}

// WithLogger sets the logger used to report loaded and skipped levels.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithBounds sets the playable rectangle every level must fit in.
func WithBounds(b board.Bounds) Option {
	return func(o *options) { o.levelOpts = append(o.levelOpts, level.WithBounds(b)) }
}

// Catalog is an ordered, immutable set of levels.
type Catalog struct {
	levels   []*level.Level
	byID     map[string]*level.Level
	failures []Failure
}

// LoadDir is Load over the directory dir.
func LoadDir(dir string, opts ...Option) (*Catalog, error) {
	return Load(os.DirFS(dir), opts...)
}

// Load reads the manifest at the root of fsys and every level it lists.
func Load(fsys fs.FS, opts ...Option) (*Catalog, error) {
	o := options{logger: log.Logger}
	for _, opt := range opts {
		opt(&o)
	}

	m, err := readManifest(fsys)
	if err != nil {
		return nil, err
	}

	c := &Catalog{byID: make(map[string]*level.Level, len(m.Levels))}
	for _, id := range m.Levels {
		lv, err := loadLevel(fsys, id, o.levelOpts)
		if err == nil {
			if _, dup := c.byID[id]; dup {
				err = fmt.Errorf("%w: %q", ErrDuplicate, id)
			}
		}
		if err != nil {
			o.logger.Error().Err(err).Str("id", id).Msg("skipping level")
			c.failures = append(c.failures, Failure{ID: id, Err: err})
			continue
		}
		o.logger.Debug().Str("id", id).Str("name", lv.Name).Msg("loaded level")
		c.levels = append(c.levels, lv)
		c.byID[id] = lv
	}
	o.logger.Info().Int("levels", len(c.levels)).Int("failed", len(c.failures)).Msg("catalog loaded")

	return c, nil
}

func readManifest(fsys fs.FS) (Manifest, error) {
	for _, name := range ManifestNames {
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Manifest{}, fmt.Errorf("%w: %s: %w", ErrManifest, name, err)
		}
		var m Manifest
		if strings.HasSuffix(name, ".toml") {
			err = toml.Unmarshal(data, &m)
		} else {
			err = yaml.Unmarshal(data, &m)
		}
		if err != nil {
			return Manifest{}, fmt.Errorf("%w: %s: %w", ErrManifest, name, err)
		}
		return m, nil
	}
	return Manifest{}, fmt.Errorf("%w: none of %v", ErrManifest, ManifestNames)
}

func loadLevel(fsys fs.FS, id string, opts []level.Option) (*level.Level, error) {
	if id == "" || !fs.ValidPath(id) {
		return nil, fmt.Errorf("%w: %q", ErrBadID, id)
	}
	for _, ext := range level.Extensions {
		name := id + ext
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		doc, err := level.Decode(name, data)
		if err != nil {
			return nil, err
		}
		return doc.Build(id, opts...)
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
}

// Len returns the number of loaded levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// Levels returns the loaded levels in manifest order.
func (c *Catalog) Levels() []*level.Level {
	return append([]*level.Level(nil), c.levels...)
}

// Level returns the level with the given ID.
func (c *Catalog) Level(id string) (*level.Level, bool) {
	lv, ok := c.byID[id]
	return lv, ok
}

// Failures returns the levels that were skipped, in manifest order.
func (c *Catalog) Failures() []Failure {
	return append([]Failure(nil), c.failures...)
}
