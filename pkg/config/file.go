package config

import (
	"encoding/json"
	"os"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ideapad-go/ideapadctl/pkg/utils/ptr"
)

var defaultFileConfig = &RawFileConfig{
	AllowNonRootAccess:       ptr.To(false),
	DefaultHandler:           ptr.To("switch"),
	DisableRapidChargeOnExit: ptr.To(false),
	ProfileOverride:          ptr.To(""),
}

// RawFileConfig is the on-disk JSON shape. Pointers distinguish "absent"
// from zero values so a partial file keeps the defaults for the rest.
type RawFileConfig struct {
	AllowNonRootAccess       *bool   `json:"allowNonRootAccess,omitempty"`
	DefaultHandler           *string `json:"defaultHandler,omitempty"`
	DisableRapidChargeOnExit *bool   `json:"disableRapidChargeOnExit,omitempty"`
	ProfileOverride          *string `json:"profileOverride,omitempty"`
}

var _ Config = &File{}

// File is a Config backed by a JSON file.
type File struct {
	c        *RawFileConfig
	mu       sync.RWMutex
	filepath string
}

// NewFile loads (or initializes) the config at configPath.
func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		c:        &RawFileConfig{},
	}
	if err := f.Load(); err != nil {
		return nil, err
	}

	return f, nil
}

// Load reads the config file, creating it with defaults if it is missing.
func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := os.ReadFile(f.filepath)
	if os.IsNotExist(err) {
		logrus.Warnf("config file %s does not exist, writing defaults", f.filepath)
		c := *defaultFileConfig
		f.c = &c
		return f.save()
	}
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read config %s", f.filepath)
	}

	raw := &RawFileConfig{}
	if err := json.Unmarshal(b, raw); err != nil {
		return pkgerrors.Wrapf(err, "failed to parse config %s", f.filepath)
	}

	fillDefaults(raw)
	f.c = raw

	return nil
}

// Save writes the config back to disk.
func (f *File) Save() error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.save()
}

func (f *File) save() error {
	b, err := json.MarshalIndent(f.c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.filepath, b, 0o644)
}

func fillDefaults(raw *RawFileConfig) {
	if raw.AllowNonRootAccess == nil {
		raw.AllowNonRootAccess = defaultFileConfig.AllowNonRootAccess
	}
	if raw.DefaultHandler == nil {
		raw.DefaultHandler = defaultFileConfig.DefaultHandler
	}
	if raw.DisableRapidChargeOnExit == nil {
		raw.DisableRapidChargeOnExit = defaultFileConfig.DisableRapidChargeOnExit
	}
	if raw.ProfileOverride == nil {
		raw.ProfileOverride = defaultFileConfig.ProfileOverride
	}
}

func (f *File) AllowNonRootAccess() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return *f.c.AllowNonRootAccess
}

func (f *File) SetAllowNonRootAccess(allow bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.AllowNonRootAccess = ptr.To(allow)
}

func (f *File) DefaultHandler() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return *f.c.DefaultHandler
}

func (f *File) DisableRapidChargeOnExit() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return *f.c.DisableRapidChargeOnExit
}

func (f *File) ProfileOverride() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return *f.c.ProfileOverride
}

// Raw returns a copy of the on-disk shape, for serving over the API.
func (f *File) Raw() RawFileConfig {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return *f.c
}

func (f *File) LogrusFields() logrus.Fields {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return logrus.Fields{
		"allowNonRootAccess":       *f.c.AllowNonRootAccess,
		"defaultHandler":           *f.c.DefaultHandler,
		"disableRapidChargeOnExit": *f.c.DisableRapidChargeOnExit,
		"profileOverride":          *f.c.ProfileOverride,
	}
}
