package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the complete tool configuration. Values are resolved from flags,
// then environment variables (ARGUMENTA_*), then the config file, then defaults.
type Config struct {
	Tagger      TaggerConfig      `yaml:"tagger"`
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	LLM         LLMConfig         `yaml:"llm"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// TaggerConfig configures the tag source that labels tokens.
type TaggerConfig struct {
	// Mode selects the provider: "remote" (HTTP tagging service) or
	// "heuristic" (built-in discourse-marker tagger).
	Mode     string        `yaml:"mode"`
	Endpoint string        `yaml:"endpoint"` // Remote tagging service URL
	Timeout  time.Duration `yaml:"timeout"`
}

// HTTPConfig configures fetching when the analysis input is a URL.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy"`
	CheckRobots  bool          `yaml:"check_robots"`
}

// CacheConfig configures caching of tag-source output.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"` // Disk cache directory
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// LLMConfig configures the optional suggestion generator.
type LLMConfig struct {
	Provider  string  `yaml:"provider"` // openai, anthropic, ollama, "" (disabled)
	Model     string  `yaml:"model"`
	APIKey    string  `yaml:"-"` // From env only, never persisted
	BaseURL   string  `yaml:"base_url"`
	Timeout   int     `yaml:"timeout"` // seconds
	MaxTokens int     `yaml:"max_tokens"`
	Rate      float64 `yaml:"rate"` // Requests per second to the provider
}

// ConcurrencyConfig configures worker counts.
type ConcurrencyConfig struct {
	BatchWorkers      int `yaml:"batch_workers"`      // Parallel inputs in batch mode
	SuggestionWorkers int `yaml:"suggestion_workers"` // Parallel LLM suggestion calls
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Tagger: TaggerConfig{
			Mode:    "heuristic",
			Timeout: 30 * time.Second,
		},
		HTTP: HTTPConfig{
			Timeout:      2 * time.Minute,
			UserAgent:    "Argumenta/0.1",
			MaxBodyBytes: 2_000_000,
			CheckRobots:  true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default
			Timeout:   30,
			MaxTokens: 150,
			Rate:      2,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers:      4,
			SuggestionWorkers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}

// defaultCacheDir returns ~/.argumenta/cache. When the home directory cannot
// be resolved the disk layer is skipped and caching stays memory-only.
func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".argumenta", "cache")
}
