package tables

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fenilsonani/tidyfiles/internal/logging"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Table file names (without extension) and the keys they carry
const (
	StopWordsName  = "ignoreTokens"
	StopWordsKey   = "ignoreTokens"
	CategoriesName = "filetypes"
	DangerousName  = "dangerousExts"
	DangerousKey   = "dangerousExtensions"
)

// LocalDataDir is searched before the configured data directory
const LocalDataDir = "data"

var errNotFound = errors.New("no table file found")

// Loader discovers table files in a list of directories, first hit wins.
// Any file that is missing or malformed is replaced by the built-in table.
type Loader struct {
	dirs   []string
	logger *slog.Logger
}

// NewLoader creates a loader that searches dirs in order. Empty entries are ignored.
func NewLoader(logger *slog.Logger, dirs ...string) *Loader {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	searched := make([]string, 0, len(dirs))
	for _, d := range dirs {
		if strings.TrimSpace(d) != "" {
			searched = append(searched, d)
		}
	}
	return &Loader{dirs: searched, logger: logger}
}

// SearchDirs returns the directories the loader looks in
func (l *Loader) SearchDirs() []string {
	return append([]string(nil), l.dirs...)
}

// Load reads all three tables
func (l *Loader) Load() *Tables {
	t := &Tables{}
	t.StopWords, t.StopWordsSource = l.StopWords()
	t.Categories, t.CategoriesSource = l.CategoryTable()
	t.Dangerous, t.DangerousSource = l.DangerousExts()
	return t
}

// StopWords loads the stop-word list
func (l *Loader) StopWords() (StringSet, Source) {
	items, path, err := l.readList(StopWordsName, StopWordsKey)
	if err != nil {
		return NewStringSet(DefaultStopWords()...), l.fallback(StopWordsName, err)
	}
	l.logger.Debug("Loaded stop words", "path", path, "count", len(items))
	return NewStringSet(items...), Source{Path: path}
}

// DangerousExts loads the dangerous-extension denylist
func (l *Loader) DangerousExts() (StringSet, Source) {
	items, path, err := l.readList(DangerousName, DangerousKey)
	if err != nil {
		return NewExtensionSet(DefaultDangerousExts()...), l.fallback(DangerousName, err)
	}
	l.logger.Debug("Loaded dangerous extensions", "path", path, "count", len(items))
	return NewExtensionSet(items...), Source{Path: path}
}

// CategoryTable loads the category table.
//
// Viper locates and syntax-checks the file, but it lowercases map keys, so the
// mapping itself is decoded from the raw file to keep category names as written.
func (l *Loader) CategoryTable() (*CategoryTable, Source) {
	v, err := l.find(CategoriesName)
	if err != nil {
		return NewCategoryTable(DefaultCategories()), l.fallback(CategoriesName, err)
	}

	path := v.ConfigFileUsed()
	mapping, err := decodeCategories(path)
	if err != nil {
		return NewCategoryTable(DefaultCategories()), l.fallback(CategoriesName, err)
	}

	l.logger.Debug("Loaded category table", "path", path, "categories", len(mapping))
	return NewCategoryTable(mapping), Source{Path: path}
}

func (l *Loader) find(name string) (*viper.Viper, error) {
	if len(l.dirs) == 0 {
		return nil, errNotFound
	}

	v := viper.New()
	v.SetConfigName(name)
	for _, dir := range l.dirs {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, errNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return v, nil
}

func (l *Loader) readList(name, key string) ([]string, string, error) {
	v, err := l.find(name)
	if err != nil {
		return nil, "", err
	}

	path := v.ConfigFileUsed()
	if !v.IsSet(key) {
		return nil, path, fmt.Errorf("%s: missing key %q", filepath.Base(path), key)
	}

	items, ok := stringList(v.Get(key))
	if !ok {
		return nil, path, fmt.Errorf("%s: key %q is not a list of strings", filepath.Base(path), key)
	}
	return items, path, nil
}

func (l *Loader) fallback(name string, err error) Source {
	if errors.Is(err, errNotFound) {
		l.logger.Info("Using built-in table", "table", name, "searched", l.dirs)
		return Source{Fallback: true, Reason: "not found"}
	}
	l.logger.Warn("Invalid table file, using built-in table", "table", name, "error", err)
	return Source{Fallback: true, Reason: err.Error()}
}

func stringList(raw interface{}) ([]string, bool) {
	switch items := raw.(type) {
	case []string:
		return items, true
	case []interface{}:
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func decodeCategories(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	mapping := make(map[string][]string)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &mapping)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &mapping)
	case ".toml":
		err = toml.Unmarshal(data, &mapping)
	default:
		return nil, fmt.Errorf("unsupported table format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return mapping, nil
}
