package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"argumenta/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "argumenta",
	Short: "Argumenta - Argument mining and strength diagnostics for Spanish prose",
	Long: `Argumenta extracts argumentative components from Spanish text and scores
how strongly each paragraph argues its case.

It does not judge whether the arguments are true or persuasive.

Argumenta locates premises and conclusions from token-level BIO labels,
segments the text into paragraphs, and computes a transparent 0-100
strength score per paragraph with concrete improvement hints.

Scores are deterministic and explainable; optional LLM suggestions are
generated after scoring and never influence it.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for Argumenta.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("argumenta v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.argumenta/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.argumenta")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match ARGUMENTA_*
	viper.SetEnvPrefix("ARGUMENTA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setViperDefaults()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// setViperDefaults registers every config key with viper. AutomaticEnv only
// resolves keys viper already knows about, so without this, values set purely
// through ARGUMENTA_* variables would never reach Unmarshal.
func setViperDefaults() {
	d := model.DefaultConfig()

	viper.SetDefault("tagger.mode", d.Tagger.Mode)
	viper.SetDefault("tagger.endpoint", d.Tagger.Endpoint)
	viper.SetDefault("tagger.timeout", d.Tagger.Timeout)

	viper.SetDefault("http.timeout", d.HTTP.Timeout)
	viper.SetDefault("http.user_agent", d.HTTP.UserAgent)
	viper.SetDefault("http.max_body_bytes", d.HTTP.MaxBodyBytes)
	viper.SetDefault("http.insecure_tls", d.HTTP.InsecureTLS)
	viper.SetDefault("http.http_proxy", d.HTTP.HTTPProxy)
	viper.SetDefault("http.https_proxy", d.HTTP.HTTPSProxy)
	viper.SetDefault("http.no_proxy", d.HTTP.NoProxy)
	viper.SetDefault("http.check_robots", d.HTTP.CheckRobots)

	viper.SetDefault("cache.enabled", d.Cache.Enabled)
	viper.SetDefault("cache.dir", d.Cache.Dir)
	viper.SetDefault("cache.memory_ttl", d.Cache.MemoryTTL)
	viper.SetDefault("cache.disk_ttl", d.Cache.DiskTTL)

	viper.SetDefault("llm.provider", d.LLM.Provider)
	viper.SetDefault("llm.model", d.LLM.Model)
	viper.SetDefault("llm.base_url", d.LLM.BaseURL)
	viper.SetDefault("llm.timeout", d.LLM.Timeout)
	viper.SetDefault("llm.max_tokens", d.LLM.MaxTokens)
	viper.SetDefault("llm.rate", d.LLM.Rate)

	viper.SetDefault("concurrency.batch_workers", d.Concurrency.BatchWorkers)
	viper.SetDefault("concurrency.suggestion_workers", d.Concurrency.SuggestionWorkers)

	viper.SetDefault("output.verbose", d.Output.Verbose)
	viper.SetDefault("output.include_footer", d.Output.IncludeFooter)
}
