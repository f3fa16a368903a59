package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/callummcdougall/jupyter-to-anki/internal/medias"
	"github.com/callummcdougall/jupyter-to-anki/pkg/resync"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slices"
)

// How many parent directories to traverse before considering a directory as not a jta project
const maxDepth = 10

// Default .jta/config content
const DefaultConfig = `
[medias]
type="fs"
dir=".jta/medias"

[export]
format="yaml"
overwrite=false

[render]
sanitize=false
`

// Default .jta/.gitignore content
const DefaultGitIgnore = `
/medias/
`

var (
	// Lazy-load configuration and ensure a single read
	configOnce      resync.Once
	configSingleton *Config
)

var (
	supportedMediaTypes    = []string{"fs", "s3", "storj", "memory"}
	supportedExportFormats = []string{"yaml", "json"}
)

// Note: Fields must be public for toml package to unmarshall
type ConfigFile struct {
	Medias ConfigMedias
	Export ConfigExport
	Render ConfigRender
}
type ConfigMedias struct {
	Type string // fs, s3, storj, or memory
	// fs-specific attributes
	Dir string
	// s3-specific attributes
	Endpoint   string
	AccessKey  string `toml:"access_key"`
	SecretKey  string `toml:"secret_key"`
	BucketName string `toml:"bucket_name"`
	Secure     bool
	// storj-specific attributes
	AccessGrant string `toml:"access_grant"`
}
type ConfigExport struct {
	Format string // yaml or json
	// Default to the directory containing the notebook
	Dir string
	// Replace existing files instead of adding a numeric suffix
	Overwrite bool
}
type ConfigRender struct {
	// Remove any markup not generated by the renderer
	Sanitize bool
}

// ConfigureFSMedias saves media files in a local directory.
func (f *ConfigFile) ConfigureFSMedias(dir string) *ConfigFile {
	f.Medias = ConfigMedias{
		Type: "fs",
		Dir:  dir,
	}
	return f
}

// ConfigureS3Medias saves media files in a S3 bucket.
func (f *ConfigFile) ConfigureS3Medias(endpoint, bucketName, accessKey, secretKey string) *ConfigFile {
	f.Medias = ConfigMedias{
		Type:       "s3",
		Endpoint:   endpoint,
		BucketName: bucketName,
		AccessKey:  accessKey,
		SecretKey:  secretKey,
	}
	return f
}

// ConfigureMemoryMedias keeps media files in memory.
func (f *ConfigFile) ConfigureMemoryMedias() *ConfigFile {
	f.Medias = ConfigMedias{
		Type: "memory",
	}
	return f
}

/* Main config */

type Config struct {
	// Absolute top directory containing the .jta sub-directory
	RootDirectory string

	// .jta/config content
	ConfigFile ConfigFile

	// Toggle this flag to skip some side-effects
	DryRun bool
}

func CurrentConfig() *Config {
	configOnce.Do(func() {
		home := currentHome()
		var err error
		configSingleton, err = ReadConfigFromDirectory(home)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current configuration: %v\n", err)
			os.Exit(1)
		}
		if configSingleton == nil {
			// No .jta directory. Use the default configuration.
			configFile, err := parseConfigFile(DefaultConfig)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Default configuration is broken: %v\n", err)
				os.Exit(1)
			}
			configSingleton = &Config{
				RootDirectory: home,
				ConfigFile:    *configFile,
			}
		}
	})
	return configSingleton
}

// SetDryRun enables or disables side-effects.
func (c *Config) SetDryRun(dryRun bool) *Config {
	c.DryRun = dryRun
	return c
}

// MediaStore returns the store to use when saving images.
func (c *Config) MediaStore() (medias.Store, error) {
	if c.DryRun {
		return medias.NewMemoryStore(), nil
	}

	settings := c.ConfigFile.Medias
	switch settings.Type {
	case "", "fs":
		return medias.NewFSStore(c.resolve(settings.Dir))
	case "s3":
		return medias.NewS3StoreWithCredentials(settings.Endpoint, settings.BucketName, settings.AccessKey, settings.SecretKey, settings.Secure)
	case "storj":
		return medias.NewStorjStoreWithCredentials(settings.BucketName, settings.AccessGrant)
	case "memory":
		return medias.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unsupported media type %q", settings.Type)
}

// ExportDir returns the directory where to write the decks of the given notebook.
func (c *Config) ExportDir(notebookPath string) string {
	if c.ConfigFile.Export.Dir == "" {
		return filepath.Dir(notebookPath)
	}
	return c.resolve(c.ConfigFile.Export.Dir)
}

// ExportFormat returns the format used to export decks.
func (c *Config) ExportFormat() string {
	if c.ConfigFile.Export.Format == "" {
		return "yaml"
	}
	return c.ConfigFile.Export.Format
}

// resolve evaluates a path relative to the root directory.
func (c *Config) resolve(path string) string {
	if path == "" {
		path = filepath.Join(".jta", "medias")
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.RootDirectory, path)
}

func currentHome() string {
	// Supports overriding the root directory mainly for testing purposes.
	// Ex:
	//
	//   $ env JTA_HOME=./examples go run ./cmd/jta build notebook.ipynb
	if path, ok := os.LookupEnv("JTA_HOME"); ok {
		abspath, err := filepath.Abs(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to evaluate $JTA_HOME")
			os.Exit(1)
		}
		if _, err := os.Stat(abspath); os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, "Path in $JTA_HOME undefined")
			os.Exit(1)
		}
		return abspath
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to determine current directory: %v\n", err)
		os.Exit(1)
	}
	return cwd
}

// ReadConfigFromDirectory loads the configuration by searching for a .jta directory in the given directory
// or any parent directories. It returns nil when no directory is found.
func ReadConfigFromDirectory(path string) (*Config, error) {
	rootPath := path
	i := 0 // Safeguard to not go up too far
	for {
		i++
		if i > maxDepth {
			return nil, nil
		}
		jtaPath := filepath.Join(rootPath, ".jta")
		_, err := os.Stat(jtaPath)
		if os.IsNotExist(err) {
			parent := filepath.Dir(rootPath)
			if parent == rootPath {
				// Root directory detected
				return nil, nil
			}
			rootPath = parent
		} else if err != nil {
			return nil, fmt.Errorf("error while searching for configuration directory: %v", err)
		} else {
			break
		}
	}

	// Check for .jta/config
	jtaConfigPath := filepath.Join(rootPath, ".jta", "config")
	_, err := os.Stat(jtaConfigPath)
	var configFile *ConfigFile
	if os.IsNotExist(err) {
		configFile, err = parseConfigFile(DefaultConfig)
		if err != nil {
			return nil, fmt.Errorf("default configuration is broken: %v", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to check for .jta/config file: %v", err)
	} else {
		content, err := os.ReadFile(jtaConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read .jta/config file: %v", err)
		}
		configFile, err = parseConfigFile(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse .jta/config file: %v", err)
		}
	}

	return &Config{
		RootDirectory: rootPath,
		ConfigFile:    *configFile,
	}, nil
}

func parseConfigFile(content string) (*ConfigFile, error) {
	r := strings.NewReader(content)
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	var result ConfigFile
	err := d.Decode(&result)
	return &result, err
}

// InitConfigFromDirectory creates the .jta configuration directory with default files.
func InitConfigFromDirectory(path string) (*Config, error) {
	currentConfig, err := ReadConfigFromDirectory(path)
	if err != nil {
		return nil, err
	}
	if currentConfig != nil {
		// Do not override current configuration
		return nil, fmt.Errorf("current configuration detected in %q", currentConfig.RootDirectory)
	}

	// Create .jta directory
	jtaPath := filepath.Join(path, ".jta")
	err = os.Mkdir(jtaPath, 0755)
	if err != nil {
		return nil, err
	}

	// Init .jta/config file
	jtaConfigPath := filepath.Join(jtaPath, "config")
	err = os.WriteFile(jtaConfigPath, []byte(DefaultConfig), 0644)
	if err != nil {
		return nil, err
	}

	// Init .jta/.gitignore file
	gitIgnorePath := filepath.Join(jtaPath, ".gitignore")
	_, err = os.Stat(gitIgnorePath)
	if os.IsNotExist(err) { // Do not override existing file!
		err = os.WriteFile(gitIgnorePath, []byte(DefaultGitIgnore), 0644)
		if err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	// Reread configuration
	return ReadConfigFromDirectory(path)
}

func (c *Config) Check() error {
	settings := c.ConfigFile.Medias
	if settings.Type != "" && !slices.Contains(supportedMediaTypes, settings.Type) {
		return fmt.Errorf("unknown media type %q (supported: %s)", settings.Type, strings.Join(supportedMediaTypes, ", "))
	}
	switch settings.Type {
	case "s3":
		if settings.Endpoint == "" || settings.BucketName == "" {
			return fmt.Errorf("missing endpoint or bucket name for media type %q", settings.Type)
		}
	case "storj":
		if settings.AccessGrant == "" || settings.BucketName == "" {
			return fmt.Errorf("missing access grant or bucket name for media type %q", settings.Type)
		}
	}

	format := c.ConfigFile.Export.Format
	if format != "" && !slices.Contains(supportedExportFormats, format) {
		return fmt.Errorf("unknown export format %q (supported: %s)", format, strings.Join(supportedExportFormats, ", "))
	}

	return nil
}
