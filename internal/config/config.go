// Package config provides YAML-based configuration for the authoring server
// and CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/labstack/gommon/bytes"
	"gopkg.in/yaml.v3"
)

// DefaultEditorVersion is written into ProjectVersion.txt when no version is given.
const DefaultEditorVersion = "6000.3.2f1"

// AppConfig represents the root configuration structure.
type AppConfig struct {
	// Server configuration
	Server ServerConfig `yaml:"server"`

	// Storage configuration
	Storage StorageConfig `yaml:"storage"`

	// Unity project defaults
	Unity UnityConfig `yaml:"unity"`

	// Security configuration
	Security SecurityConfig `yaml:"security"`

	// Advanced options
	Advanced AdvancedConfig `yaml:"advanced"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port           int    `yaml:"port"`
	BindAddress    string `yaml:"bindAddress"`
	EnableCORS     bool   `yaml:"enableCors"`
	AllowOrigins   string `yaml:"allowOrigins"`
	ReadTimeout    int    `yaml:"readTimeoutSeconds"`
	WriteTimeout   int    `yaml:"writeTimeoutSeconds"`
	IdleTimeout    int    `yaml:"idleTimeoutSeconds"`
	RequestTimeout int    `yaml:"requestTimeoutSeconds"`
	BodyLimit      string `yaml:"bodyLimit"`
}

// StorageConfig contains file storage settings
type StorageConfig struct {
	// ProjectsRoot is where projects are scaffolded when a request names
	// no root directory.
	ProjectsRoot string `yaml:"projectsRoot"`
}

// UnityConfig contains defaults for generated projects
type UnityConfig struct {
	EditorVersion string `yaml:"editorVersion"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	AllowAssetDeletion bool `yaml:"allowAssetDeletion"`
}

// AdvancedConfig contains advanced/tuning options
type AdvancedConfig struct {
	LogLevel             string `yaml:"logLevel"`
	EnableRequestLogging bool   `yaml:"enableRequestLogging"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:           8089,
			BindAddress:    "0.0.0.0",
			EnableCORS:     true,
			AllowOrigins:   "*",
			ReadTimeout:    30,
			WriteTimeout:   30,
			IdleTimeout:    120,
			RequestTimeout: 60,
			BodyLimit:      "64M",
		},
		Storage: StorageConfig{
			ProjectsRoot: "./projects",
		},
		Unity: UnityConfig{
			EditorVersion: DefaultEditorVersion,
		},
		Security: SecurityConfig{
			AllowAssetDeletion: true,
		},
		Advanced: AdvancedConfig{
			LogLevel:             "notice",
			EnableRequestLogging: true,
		},
	}
}

// LoadConfig loads configuration from a YAML file. A missing file is created
// with the defaults.
func LoadConfig(configPath string) (*AppConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := config.Save(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	config.applyEnvironmentOverrides()
	config.resolvePaths(filepath.Dir(configPath))
	return config, nil
}

// Save saves the configuration to a YAML file
func (c *AppConfig) Save(configPath string) error {
	output, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# Unity asset authoring server configuration\n# This file is auto-generated on first run\n\n")
	content := append(header, output...)

	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnvironmentOverrides allows environment variables to override config values
func (c *AppConfig) applyEnvironmentOverrides() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if root := os.Getenv("PROJECTS_ROOT"); root != "" {
		c.Storage.ProjectsRoot = root
	}

	if version := os.Getenv("UNITY_VERSION"); version != "" {
		c.Unity.EditorVersion = version
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Advanced.LogLevel = level
	}
}

// resolvePaths converts relative paths to absolute based on config file location
func (c *AppConfig) resolvePaths(configDir string) {
	if c.Storage.ProjectsRoot != "" && !filepath.IsAbs(c.Storage.ProjectsRoot) {
		c.Storage.ProjectsRoot = filepath.Join(configDir, c.Storage.ProjectsRoot)
	}
}

// GetServerAddr returns the server bind address
func (c *AppConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.BindAddress, c.Server.Port)
}

// GetBodyLimitBytes returns the request body limit in bytes, or 0 when the
// limit is unset or unparsable.
func (c *AppConfig) GetBodyLimitBytes() int64 {
	if c.Server.BodyLimit == "" {
		return 0
	}
	n, err := bytes.Parse(c.Server.BodyLimit)
	if err != nil {
		return 0
	}
	return n
}

// EnsureDirectories creates all necessary directories
func (c *AppConfig) EnsureDirectories() error {
	if err := os.MkdirAll(c.Storage.ProjectsRoot, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.Storage.ProjectsRoot, err)
	}
	return nil
}
