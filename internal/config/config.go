package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/csheth/tinypal/internal/errors"
)

const (
	DefaultBaseURL  = "https://genai-images-4ea9c0ca90c8.herokuapp.com"
	DefaultTimeout  = 30 * time.Second
	DefaultLogPath  = "/tmp/tinypal.log"
	DefaultChildID  = "EXAMPLECHILD"
	DefaultParentID = "EXAMPLEPARENT"
	DefaultModuleID = "1"
)

// Config holds all TinyPal configuration.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Identity IdentityConfig `yaml:"identity"`
	Logging  LoggingConfig  `yaml:"logging"`
	UI       UIConfig       `yaml:"ui"`
}

// APIConfig configures the content service.
type APIConfig struct {
	BaseURL      string `yaml:"base_url"`
	ImageBaseURL string `yaml:"image_base_url"`
	Timeout      string `yaml:"timeout"`
}

// IdentityConfig carries the fixed identifiers sent with every request, plus
// the questionnaire answers the personalization endpoint expects.
type IdentityConfig struct {
	ChildID   string     `yaml:"child_id"`
	ParentID  string     `yaml:"parent_id"`
	ModuleID  string     `yaml:"module_id"`
	Responses []Response `yaml:"responses"`
}

// Response is one answered questionnaire item.
type Response struct {
	QuestionID        string   `yaml:"question_id"`
	SelectedChoiceIDs []string `yaml:"selected_choice_ids"`
	OpenResponseText  string   `yaml:"open_response_text"`
	Timestamp         string   `yaml:"timestamp"`
}

// LoggingConfig configures the log file.
type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// UIConfig configures the terminal program.
type UIConfig struct {
	Screen    string `yaml:"screen"` // home, dyk, flash
	AltScreen bool   `yaml:"alt_screen"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout.String(),
		},
		Identity: IdentityConfig{
			ChildID:   DefaultChildID,
			ParentID:  DefaultParentID,
			ModuleID:  DefaultModuleID,
			Responses: defaultResponses(),
		},
		Logging: LoggingConfig{File: DefaultLogPath, Level: "info"},
		UI:      UIConfig{Screen: "home", AltScreen: true},
	}
}

func defaultResponses() []Response {
	const stamp = "2025-10-14T07:25:31.482Z"
	return []Response{
		{QuestionID: "q006_tantrums", SelectedChoiceIDs: []string{"choice_b", "choice_c"}, Timestamp: stamp},
		{QuestionID: "q009_language_dev", SelectedChoiceIDs: []string{"choice_c", "choice_a"}, Timestamp: stamp},
		{
			QuestionID:        "q008_development_concerns",
			SelectedChoiceIDs: []string{"open_response"},
			OpenResponseText:  "His cognitive abilities being stunted by overuse of mobiles",
			Timestamp:         stamp,
		},
	}
}

// Load reads path over the defaults and then applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	const op errors.Op = "config.Load"
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.E(op, errors.KindConfig, fmt.Sprintf("read %s", path), err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.E(op, errors.KindConfig, fmt.Sprintf("parse %s", path), err)
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from TINYPAL_* environment variables.
func (c *Config) ApplyEnv() {
	if env := os.Getenv("TINYPAL_BASE_URL"); env != "" {
		c.API.BaseURL = env
	}
	if env := os.Getenv("TINYPAL_IMAGE_BASE_URL"); env != "" {
		c.API.ImageBaseURL = env
	}
	if env := os.Getenv("TINYPAL_TIMEOUT"); env != "" {
		c.API.Timeout = env
	}
	if env := os.Getenv("TINYPAL_CHILD_ID"); env != "" {
		c.Identity.ChildID = env
	}
	if env := os.Getenv("TINYPAL_PARENT_ID"); env != "" {
		c.Identity.ParentID = env
	}
	if env := os.Getenv("TINYPAL_MODULE_ID"); env != "" {
		c.Identity.ModuleID = env
	}
	if env := os.Getenv("TINYPAL_LOG_FILE"); env != "" {
		c.Logging.File = env
	}
}

// Validate checks the fields the clients cannot work without.
func (c *Config) Validate() error {
	const op errors.Op = "config.Validate"
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	if c.API.BaseURL == "" {
		return errors.E(op, errors.KindConfig, "api.base_url is empty")
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return errors.E(op, errors.KindConfig, "api.timeout", err)
	}
	switch c.UI.Screen {
	case "", "home", "dyk", "flash":
	default:
		return errors.E(op, errors.KindConfig, fmt.Sprintf("ui.screen %q must be home, dyk or flash", c.UI.Screen))
	}
	return nil
}

// TimeoutDuration parses API.Timeout, defaulting to DefaultTimeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if strings.TrimSpace(c.API.Timeout) == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %s", d)
	}
	return d, nil
}

// ImageBase returns the prefix for relative image URLs.
func (c *Config) ImageBase() string {
	if c.API.ImageBaseURL != "" {
		return strings.TrimRight(c.API.ImageBaseURL, "/")
	}
	return c.API.BaseURL
}
