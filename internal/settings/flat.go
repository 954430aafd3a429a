package settings

import (
	"errors"
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/text/language"
)

const (
	defaultTimeoutMinutes = 20
	defaultUILanguage     = "en"
)

// TempStorage selects where local temporary files are written.
type TempStorage int

const (
	TempStorageDefault TempStorage = iota
	TempStorageAppTemp
	TempStorageEnvironmentTemp
)

func (s TempStorage) String() string {
	switch s {
	case TempStorageDefault:
		return "Default"
	case TempStorageAppTemp:
		return "AppTemp"
	case TempStorageEnvironmentTemp:
		return "EnvironmentTemp"
	default:
		return fmt.Sprintf("TempStorage(%d)", int(s))
	}
}

// Flat is the flat global settings domain.
type Flat interface {
	ConfigurationStatus() string
	UseHTTPS() bool
	HideTopLevelNodeFromPath() bool
	Path() string
	UseDirectoryURLs() bool
	TimeoutMinutes() int
	DefaultUILanguage() string
	LocalTempStorage() TempStorage
	ReservedPaths() mapset.Set[string]
	ReservedURLs() mapset.Set[string]
}

// URLResolver turns application-relative links into site-absolute URLs.
type URLResolver interface {
	ResolveURL(ref string) string
}

// FlatConfig is the value implementation of Flat.
type FlatConfig struct {
	Status           string
	HTTPS            bool
	HideTopLevelNode bool
	BasePath         string
	DirectoryURLs    bool
	// Timeout is the back office session timeout in minutes.
	Timeout         int
	UILanguage      string
	TempStorage     TempStorage
	ReservedPathSet mapset.Set[string]
	ReservedURLSet  mapset.Set[string]
}

func (c *FlatConfig) ConfigurationStatus() string       { return c.Status }
func (c *FlatConfig) UseHTTPS() bool                    { return c.HTTPS }
func (c *FlatConfig) HideTopLevelNodeFromPath() bool    { return c.HideTopLevelNode }
func (c *FlatConfig) Path() string                      { return c.BasePath }
func (c *FlatConfig) UseDirectoryURLs() bool            { return c.DirectoryURLs }
func (c *FlatConfig) TimeoutMinutes() int               { return c.Timeout }
func (c *FlatConfig) DefaultUILanguage() string         { return c.UILanguage }
func (c *FlatConfig) LocalTempStorage() TempStorage     { return c.TempStorage }
func (c *FlatConfig) ReservedPaths() mapset.Set[string] { return nonNilSet(c.ReservedPathSet) }
func (c *FlatConfig) ReservedURLs() mapset.Set[string]  { return nonNilSet(c.ReservedURLSet) }

// GenerateFlat returns a fresh FlatConfig holding the factory defaults. The
// admin path is resolved through urls.
func GenerateFlat(urls URLResolver) *FlatConfig {
	reserved := mapset.NewSet(staticReservedPaths...)
	reserved.Add(DefaultAdminPath)
	return &FlatConfig{
		Status:           CurrentVersion().String(),
		HTTPS:            false,
		HideTopLevelNode: false,
		BasePath:         urls.ResolveURL(DefaultAdminPath),
		DirectoryURLs:    true,
		Timeout:          defaultTimeoutMinutes,
		UILanguage:       defaultUILanguage,
		TempStorage:      TempStorageDefault,
		ReservedPathSet:  reserved,
		ReservedURLSet:   mapset.NewSet(staticReservedURLs...),
	}
}

// Validate reports every problem with the flat settings at once.
func (c *FlatConfig) Validate() error {
	var errs *multierror.Error
	if strings.TrimSpace(c.BasePath) == "" {
		errs = multierror.Append(errs, errors.New("path must be set"))
	}
	if c.Timeout <= 0 {
		errs = multierror.Append(errs, errors.New("timeout_minutes must be positive"))
	}
	if _, err := language.Parse(c.UILanguage); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("default_ui_language %q: %w", c.UILanguage, err))
	}
	if c.TempStorage < TempStorageDefault || c.TempStorage > TempStorageEnvironmentTemp {
		errs = multierror.Append(errs, fmt.Errorf("local_temp_storage: unknown value %d", int(c.TempStorage)))
	}
	return errs.ErrorOrNil()
}

func nonNilSet(s mapset.Set[string]) mapset.Set[string] {
	if s == nil {
		return mapset.NewSet[string]()
	}
	return s
}
