package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"argumenta/internal/model"
	"argumenta/internal/pipeline"
)

var (
	outJSON        string
	outMD          string
	timeout        time.Duration
	userAgent      string
	maxBytes       int64
	noCache        bool
	noFooter       bool
	insecureTLS    bool
	httpProxy      string
	httpsProxy     string
	noRobots       bool
	taggerMode     string
	taggerEndpoint string
	llmEnabled     bool
	llmProvider    string
	llmModel       string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <source>",
	Short: "Analyze one text and report per-paragraph argumentative strength",
	Long: `Analyze runs the full mining pass over a single input:
- Tag tokens with BIO argument labels
- Decode labels into premise and conclusion components
- Segment the text into paragraphs
- Score each paragraph 0-100 with a transparent formula
- Emit improvement recommendations per paragraph

The source may be a file path, an http(s) URL, or "-" for stdin.

Example:
  argumenta analyze ensayo.txt
  argumenta analyze https://example.com/articulo --json report.json --md report.md
  cat ensayo.txt | argumenta analyze - --llm --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// HTTP flags (only used for URL sources)
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().StringVar(&userAgent, "ua", "Argumenta/0.1", "HTTP User-Agent")
	analyzeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	analyzeCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	analyzeCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	analyzeCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
	analyzeCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt check when fetching URLs")

	// Tagger flags
	analyzeCmd.Flags().StringVar(&taggerMode, "tagger", "heuristic", "tag source (heuristic, remote)")
	analyzeCmd.Flags().StringVar(&taggerEndpoint, "tagger-endpoint", "", "remote tagging service URL (required with --tagger remote)")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable tag-output caching")

	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM improvement suggestions")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

// buildConfig assembles the pipeline configuration. Precedence: flags the
// user actually set, then ARGUMENTA_* environment variables, then the config
// file, then DefaultConfig.
func buildConfig(cmd *cobra.Command) (*model.Config, error) {
	cfg := model.DefaultConfig()

	// Layer config-file and environment values over the defaults. The Config
	// struct carries yaml tags, so point the decoder at those.
	err := viper.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) { dc.TagName = "yaml" })
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}

	// Flags override only when set explicitly, otherwise a flag default would
	// clobber a config-file or environment value.
	httpTimeoutFlag := "timeout"
	if flags.Lookup("analyze-timeout") != nil {
		// In batch mode "timeout" is the whole-batch deadline.
		httpTimeoutFlag = "analyze-timeout"
	}
	if changed(httpTimeoutFlag) {
		cfg.HTTP.Timeout = timeout
	}
	if changed("ua") {
		cfg.HTTP.UserAgent = userAgent
	}
	if changed("max-bytes") {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	if changed("insecure") {
		cfg.HTTP.InsecureTLS = insecureTLS
	}
	if changed("http-proxy") {
		cfg.HTTP.HTTPProxy = httpProxy
	}
	if changed("https-proxy") {
		cfg.HTTP.HTTPSProxy = httpsProxy
	}
	if changed("no-robots") {
		cfg.HTTP.CheckRobots = !noRobots
	}
	if changed("no-cache") {
		cfg.Cache.Enabled = !noCache
	}
	if changed("tagger") {
		cfg.Tagger.Mode = taggerMode
	}
	if changed("tagger-endpoint") {
		cfg.Tagger.Endpoint = taggerEndpoint
	}
	if changed("no-footer") {
		cfg.Output.IncludeFooter = !noFooter
	}
	if verbose {
		cfg.Output.Verbose = true
	}

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
	}

	// Credentials come from the environment regardless of how the provider
	// was selected.
	switch strings.ToLower(cfg.LLM.Provider) {
	case "":
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	source := args[0]

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", source)
		fmt.Fprintf(os.Stderr, "Tagger: %s\n", cfg.Tagger.Mode)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}

	var report *model.Report
	if source == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		report, err = p.AnalyzeText(ctx, string(data), "stdin")
		if err != nil {
			return fmt.Errorf("analyze failed: %w", err)
		}
	} else {
		report, err = p.AnalyzeSource(ctx, source)
		if err != nil {
			return fmt.Errorf("analyze failed: %w", err)
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d premises\n", len(report.Premises))
		fmt.Fprintf(os.Stderr, "✓ Extracted %d conclusions\n", len(report.Conclusions))
		fmt.Fprintf(os.Stderr, "✓ Scored %d paragraphs\n", len(report.Paragraphs))
		if report.LLM != nil && report.LLM.Enabled {
			fmt.Fprintf(os.Stderr, "✓ Generated %d LLM suggestions using %s/%s\n",
				len(report.LLM.Suggestions), report.LLM.Provider, report.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}
