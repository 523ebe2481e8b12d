package settings

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/doky-sim/doky-cli/internal/errors"
	"github.com/doky-sim/doky-cli/internal/fs"
	"github.com/doky-sim/doky-cli/internal/memoryfs"
	"github.com/doky-sim/doky-cli/internal/versions"
)

const (
	DefaultRoot   = "C:"
	DefaultBanner = "Welcome to Doky file simulator"
)

// Folder is a folder to create when the session starts.
type Folder struct {
	Name    string   `yaml:"name"`
	Folders []Folder `yaml:"folders,omitempty"`
}

type Settings struct {
	Root     string   `yaml:"root"`
	Banner   string   `yaml:"banner"`
	Requires string   `yaml:"requires,omitempty"`
	Folders  []Folder `yaml:"folders,omitempty"`
}

func Default() Settings {
	return Settings{
		Root:   DefaultRoot,
		Banner: DefaultBanner,
	}
}

// Parse reads YAML settings. Keys that are absent keep their default value and
// unknown keys are rejected.
func Parse(contents []byte) (Settings, error) {
	s := Default()
	if err := yaml.UnmarshalWithOptions(contents, &s, yaml.DisallowUnknownField()); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Load reads the settings file at path. An empty path yields the defaults.
func Load(filesystem fs.FileSystem, path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}

	exists, err := filesystem.Exists(path)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "unable to find %q", path)
	}
	if !exists {
		return Settings{}, errors.Errorf("settings file %q does not exist", path)
	}

	fd, err := filesystem.Open(path)
	if err != nil {
		return Settings{}, err
	}
	defer fd.Close()

	contents, err := io.ReadAll(fd)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "error reading %q", path)
	}

	s, err := Parse(contents)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "unable to parse %q", path)
	}

	return s, nil
}

func (s Settings) Validate() error {
	if !memoryfs.ValidName(s.Root) {
		return errors.Wrapf(errors.ErrInvalidName, "root folder %q", s.Root)
	}

	return versions.CheckRequirement(s.Requires)
}

// Populate creates the configured folders below the root of store.
func (s Settings) Populate(store fs.FolderStore) error {
	return populate(store, store.Root(), s.Folders)
}

func populate(store fs.FolderStore, parent fs.NodeID, folders []Folder) error {
	for _, folder := range folders {
		id, err := store.AddChild(parent, folder.Name)
		if err != nil {
			return errors.Wrap(err, "unable to create the configured folders")
		}

		if err := populate(store, id, folder.Folders); err != nil {
			return err
		}
	}

	return nil
}
