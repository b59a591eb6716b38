package config

import (
	"bytes"
	"cmp"
	"encoding/json"
	stderrors "errors"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/mod/modfile"

	"github.com/markout-dev/markout/internal/errors"
)

// ConfigFileName is the project file that Load and FindProjectRoot
// look for.
const ConfigFileName = "markout.json"

// Defaults applied when markout.json leaves a field unset.
const (
	DefaultPort   = 3000
	DefaultHost   = "localhost"
	DefaultOutput = "dist"
	DefaultAssets = "assets"
)

// Config is the parsed markout.json. Zero values mean "use the
// default"; Load fills them in after decoding.
type Config struct {
	// Name identifies the project in CLI output.
	Name string `json:"name,omitempty"`

	// Version of the project, not of markout itself.
	Version string `json:"version,omitempty"`

	// Module overrides the Go module path. When empty, the project's
	// go.mod is consulted.
	Module string `json:"module,omitempty"`

	// BaseURL is the canonical URL the site is published under.
	BaseURL string `json:"baseUrl,omitempty"`

	// Output is the build output directory, relative to the project
	// root unless absolute.
	Output string `json:"output,omitempty"`

	// Assets is the static assets directory copied into the output.
	Assets string `json:"assets,omitempty"`

	// Catalog is the path to a custom element catalog. When empty, the
	// embedded catalog is used.
	Catalog string `json:"catalog,omitempty"`

	// Dev holds preview server settings.
	Dev DevConfig `json:"dev,omitempty"`

	// Publish holds publish target settings.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath remembers where the config was loaded from so that
	// relative paths resolve against the project root.
	configPath string
}

// DevConfig configures the preview server.
type DevConfig struct {
	// Port the preview server listens on.
	Port int `json:"port,omitempty"`

	// Host the preview server binds to.
	Host string `json:"host,omitempty"`

	// OpenBrowser opens the browser automatically on start.
	OpenBrowser bool `json:"openBrowser,omitempty"`

	// Watch lists paths to watch for changes.
	Watch []string `json:"watch,omitempty"`

	// Ignore lists directory names skipped during watch.
	Ignore []string `json:"ignore,omitempty"`

	// Reload enables live reload in the preview server.
	Reload bool `json:"reload,omitempty"`
}

// PublishConfig configures where `markout publish` puts the site.
type PublishConfig struct {
	// Target selects the publisher: "disk" or "s3".
	Target string `json:"target,omitempty"`

	// Dir is the destination directory for the disk target.
	Dir string `json:"dir,omitempty"`

	// Bucket is the S3 bucket name for the s3 target.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is an optional key prefix inside the bucket.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region. When empty, the SDK's default
	// resolution applies.
	Region string `json:"region,omitempty"`

	// Prune removes remote objects that are no longer part of the site.
	Prune bool `json:"prune,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Output:  DefaultOutput,
		Assets:  DefaultAssets,
		Dev: DevConfig{
			Port:   DefaultPort,
			Host:   DefaultHost,
			Watch:  []string{"."},
			Ignore: []string{".git", DefaultOutput},
			Reload: true,
		},
	}
}

// Load reads the project configuration from markout.json in dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return nil, errors.New("E105").
			WithDetail("No markout.json found in " + filepath.Dir(path)).
			WithSuggestion("Run 'markout create' to create a new project or create markout.json manually")
	case err != nil:
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, parseError(path, data, err)
	}

	cfg.configPath = path
	cfg.fillDefaults()
	return cfg, nil
}

// parseError turns a JSON decode failure into an E101, resolving the
// decoder's byte offset to a line and column when it reports one.
func parseError(path string, data []byte, err error) *errors.Error {
	me := errors.New("E101").
		WithDetail("Failed to parse markout.json: " + err.Error()).
		WithSuggestion("Check that markout.json is valid JSON")

	var syn *json.SyntaxError
	if stderrors.As(err, &syn) {
		line, col := lineCol(data, syn.Offset)
		me = me.WithLocation(path, line, col)
	}
	return me
}

// Save writes the configuration back to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to path and remembers it for later
// Save calls.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E101").Wrap(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.New("E101").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the project root, the directory containing markout.json.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// fillDefaults replaces zero values left by the decoder.
func (c *Config) fillDefaults() {
	c.Output = cmp.Or(c.Output, DefaultOutput)
	c.Assets = cmp.Or(c.Assets, DefaultAssets)
	c.Dev.Port = cmp.Or(c.Dev.Port, DefaultPort)
	c.Dev.Host = cmp.Or(c.Dev.Host, DefaultHost)
	if c.Dev.Watch == nil {
		c.Dev.Watch = []string{"."}
	}
	if c.Dev.Ignore == nil {
		c.Dev.Ignore = []string{".git", c.Output}
	}
}

// Validate rejects configurations the rest of the toolchain cannot
// act on.
func (c *Config) Validate() error {
	if c.Dev.Port < 1 || c.Dev.Port > 65535 {
		return errors.New("E106").
			WithDetail("Port must be between 1 and 65535")
	}

	if c.Output == "" {
		return errors.New("E103")
	}

	if c.BaseURL != "" {
		if _, err := url.Parse(c.BaseURL); err != nil {
			return errors.New("E104").
				WithDetail("Cannot parse base URL " + c.BaseURL).
				Wrap(err)
		}
	}

	switch c.Publish.Target {
	case "", "disk", "s3":
	default:
		return errors.Newf(errors.CategoryConfig, "unknown publish target %q", c.Publish.Target).
			WithSuggestion(`Use "disk" or "s3"`)
	}
	if c.Publish.Target == "s3" && c.Publish.Bucket == "" {
		return errors.New("E102").
			WithDetail(`Publish target "s3" requires a bucket`).
			WithSuggestion(`Set "publish.bucket" in markout.json`)
	}
	if c.Publish.Target == "disk" && c.Publish.Dir == "" {
		return errors.New("E102").
			WithDetail(`Publish target "disk" requires a destination directory`).
			WithSuggestion(`Set "publish.dir" in markout.json`)
	}

	return nil
}

// DevAddress returns the host:port the preview server listens on.
func (c *Config) DevAddress() string {
	return net.JoinHostPort(c.Dev.Host, strconv.Itoa(c.Dev.Port))
}

// DevURL returns the full URL for the preview server.
func (c *Config) DevURL() string {
	return "http://" + c.DevAddress()
}

// resolve makes p absolute against the project root.
func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir(), p)
}

// OutputPath is the absolute build output directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Output)
}

// AssetsPath returns the absolute path to the assets directory.
func (c *Config) AssetsPath() string {
	return c.resolve(c.Assets)
}

// CatalogPath returns the absolute path to the custom element catalog,
// or "" when the embedded catalog should be used.
func (c *Config) CatalogPath() string {
	if c.Catalog == "" {
		return ""
	}
	return c.resolve(c.Catalog)
}

// ModulePath returns the Go module path for the project. An explicit
// "module" setting wins; otherwise the project's go.mod is consulted.
func (c *Config) ModulePath() (string, error) {
	if c.Module != "" {
		return c.Module, nil
	}

	data, err := os.ReadFile(filepath.Join(c.Dir(), "go.mod"))
	if err != nil {
		return "", errors.New("E102").
			WithDetail("No module path configured and no go.mod found in " + c.Dir()).
			WithSuggestion(`Set "module" in markout.json or run 'go mod init'`)
	}

	path := modfile.ModulePath(data)
	if path == "" {
		return "", errors.New("E102").
			WithDetail("go.mod has no module directive")
	}
	return path, nil
}

// Exists reports whether dir contains a markout.json.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up from startDir to the directory containing
// markout.json.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for prev := ""; dir != prev; prev, dir = dir, filepath.Dir(dir) {
		if Exists(dir) {
			return dir, nil
		}
	}

	return "", errors.New("E105").
		WithDetail("No markout.json found in " + startDir + " or any parent directory").
		WithSuggestion("Run 'markout create' to create a new project")
}

// LoadFromWorkingDir loads configuration for the project enclosing the
// current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}
	return Load(root)
}

// lineCol converts a byte offset into 1-based line and column.
func lineCol(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	head := data[:offset]
	line = 1 + bytes.Count(head, []byte("\n"))
	col = len(head) - bytes.LastIndexByte(head, '\n')
	return line, col
}
