package config

import (
	"fmt"
	"time"
)

const (
	TranscriberOpenAI     = "openai"
	TranscriberWhisperCPP = "whisper-cpp"

	SummarizerOpenAI = "openai"
	SummarizerGemini = "gemini"
	SummarizerNone   = "none"
)

type Config struct {
	Fetcher     FetcherConfig     `yaml:"fetcher"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Output      OutputConfig      `yaml:"output"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`

	// Secrets only come from the environment (or .env).
	Secrets SecretsConfig `yaml:"-"`
}

type FetcherConfig struct {
	BinaryPath   string   `yaml:"binary_path"`
	FFmpegPath   string   `yaml:"ffmpeg_path"`
	AudioFormat  string   `yaml:"audio_format"`
	AudioQuality string   `yaml:"audio_quality"`
	AllowedHosts []string `yaml:"allowed_hosts"`
}

type TranscriberConfig struct {
	Provider         string           `yaml:"provider" env:"TRANSCRIBER_PROVIDER"`
	Model            string           `yaml:"model"`
	Language         string           `yaml:"language"`
	Prompt           string           `yaml:"prompt"`
	BaseURL          string           `yaml:"base_url" env:"OPENAI_BASE_URL"`
	MaxChunkDuration time.Duration    `yaml:"max_chunk_duration"`
	FFmpegPath       string           `yaml:"ffmpeg_path"`
	FFprobePath      string           `yaml:"ffprobe_path"`
	DetectLanguages  []string         `yaml:"detect_languages"`
	WhisperCPP       WhisperCPPConfig `yaml:"whisper_cpp"`
}

type WhisperCPPConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Threads    int    `yaml:"threads"`
}

type SummarizerConfig struct {
	Provider      string `yaml:"provider" env:"SUMMARIZER_PROVIDER"`
	Model         string `yaml:"model"`
	BaseURL       string `yaml:"base_url"`
	MaxTokens     int    `yaml:"max_tokens"`
	MinSentences  int    `yaml:"min_sentences"`
	FallbackChars int    `yaml:"fallback_chars"`
}

type OutputConfig struct {
	Docx         bool `yaml:"docx"`
	PreviewChars int  `yaml:"preview_chars"`
}

type PathsConfig struct {
	Output     string `yaml:"output" env:"TRANSCRIBER_OUTPUT_DIR"`
	Temp       string `yaml:"temp"`
	Input      string `yaml:"input"`
	Processing string `yaml:"processing"`
	Archived   string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"TRANSCRIBER_LOG_LEVEL"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type SecretsConfig struct {
	OpenAIAPIKey  string   `env:"OPENAI_API_KEY"`
	GeminiAPIKeys []string `env:"GEMINI_API_KEYS" envSeparator:","`
}

// Default returns a validated configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Validate checks provider names and fills in defaults for unset fields.
func (c *Config) Validate() error {
	if c.Transcriber.Provider == "" {
		c.Transcriber.Provider = TranscriberOpenAI
	}
	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = SummarizerOpenAI
	}

	switch c.Transcriber.Provider {
	case TranscriberOpenAI, TranscriberWhisperCPP:
	default:
		return fmt.Errorf("transcriber.provider %q is not supported", c.Transcriber.Provider)
	}
	switch c.Summarizer.Provider {
	case SummarizerOpenAI, SummarizerGemini, SummarizerNone:
	default:
		return fmt.Errorf("summarizer.provider %q is not supported", c.Summarizer.Provider)
	}
	if c.Transcriber.Provider == TranscriberWhisperCPP && c.Transcriber.WhisperCPP.ModelPath == "" {
		return fmt.Errorf("transcriber.whisper_cpp.model_path is required")
	}

	if c.Fetcher.BinaryPath == "" {
		c.Fetcher.BinaryPath = "yt-dlp"
	}
	if c.Fetcher.FFmpegPath == "" {
		c.Fetcher.FFmpegPath = "ffmpeg"
	}
	if c.Fetcher.AudioFormat == "" {
		c.Fetcher.AudioFormat = "mp3"
	}
	if c.Fetcher.AudioQuality == "" {
		c.Fetcher.AudioQuality = "192K"
	}
	if len(c.Fetcher.AllowedHosts) == 0 {
		c.Fetcher.AllowedHosts = []string{"youtube.com", "youtu.be"}
	}

	if c.Transcriber.Model == "" {
		c.Transcriber.Model = "whisper-1"
	}
	if c.Transcriber.Language == "" {
		c.Transcriber.Language = "en"
	}
	if c.Transcriber.MaxChunkDuration == 0 {
		c.Transcriber.MaxChunkDuration = 5 * time.Minute
	}
	if c.Transcriber.FFmpegPath == "" {
		c.Transcriber.FFmpegPath = "ffmpeg"
	}
	if c.Transcriber.FFprobePath == "" {
		c.Transcriber.FFprobePath = "ffprobe"
	}
	if c.Transcriber.WhisperCPP.BinaryPath == "" {
		c.Transcriber.WhisperCPP.BinaryPath = "whisper-cli"
	}
	if c.Transcriber.WhisperCPP.Threads == 0 {
		c.Transcriber.WhisperCPP.Threads = 8
	}

	if c.Summarizer.Model == "" {
		switch c.Summarizer.Provider {
		case SummarizerGemini:
			c.Summarizer.Model = "gemini-2.5-flash"
		default:
			c.Summarizer.Model = "gpt-4o-mini"
		}
	}
	if c.Summarizer.MaxTokens == 0 {
		c.Summarizer.MaxTokens = 500
	}
	if c.Summarizer.MinSentences == 0 {
		c.Summarizer.MinSentences = 3
	}
	if c.Summarizer.FallbackChars == 0 {
		c.Summarizer.FallbackChars = 500
	}

	if c.Output.PreviewChars == 0 {
		c.Output.PreviewChars = 1000
	}

	if c.Paths.Output == "" {
		c.Paths.Output = "transcripts"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "temp_audio"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Processing == "" {
		c.Paths.Processing = "data/processing"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent <= 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
