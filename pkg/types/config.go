package types

import "fmt"

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	// Host is the listen address (default "0.0.0.0").
	Host string `json:"host" yaml:"host"`

	// Port is the listen port (default 5000).
	Port int `json:"port" yaml:"port"`

	// MaxUploadMB caps the in-memory portion of multipart parsing,
	// in megabytes (default 32).
	MaxUploadMB int64 `json:"max_upload_mb" yaml:"max_upload_mb"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// EngineBackend identifies the external conversion tool.
type EngineBackend string

const (
	// BackendPdf2docx runs the pdf2docx CLI found on PATH.
	BackendPdf2docx EngineBackend = "pdf2docx"

	// BackendContainer runs the pdf2docx image through docker or podman.
	BackendContainer EngineBackend = "container"
)

// EngineConfig holds settings for the external conversion engine.
type EngineConfig struct {
	// Backend selects the conversion tool: pdf2docx or container.
	Backend EngineBackend `json:"backend" yaml:"backend"`

	// Binary overrides the pdf2docx executable name for the pdf2docx
	// backend (default "pdf2docx").
	Binary string `json:"binary,omitempty" yaml:"binary,omitempty"`

	// Image overrides the container image for the container backend
	// (default "pdf2docx:latest").
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
}

// ConvertConfig holds settings for conversion orchestration.
type ConvertConfig struct {
	// Workers bounds parallel conversion on non-interactive batch
	// paths. 1 (the default) processes files strictly sequentially.
	Workers int `json:"workers" yaml:"workers"`

	// Pattern is the file glob for directory batches (default "*.pdf").
	Pattern string `json:"pattern" yaml:"pattern"`
}

// LoggingConfig holds settings for the process-wide logging handle.
type LoggingConfig struct {
	// File is the append-style log file path (default "pdfbridge.log").
	File string `json:"file" yaml:"file"`

	// Level is the minimum level: debug, info, warning, or error
	// (default "info").
	Level string `json:"level" yaml:"level"`
}

// Config groups all sections. It is what `pdfbridge config init`
// scaffolds and what viper reads back.
type Config struct {
	Server  ServerConfig  `json:"server" yaml:"server"`
	Engine  EngineConfig  `json:"engine" yaml:"engine"`
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// DefaultConfig returns the configuration used when no file, flag, or
// environment override is present.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        5000,
			MaxUploadMB: 32,
		},
		Engine: EngineConfig{
			Backend: BackendPdf2docx,
			Binary:  "pdf2docx",
			Image:   "pdf2docx:latest",
		},
		Convert: ConvertConfig{
			Workers: 1,
			Pattern: "*.pdf",
		},
		Logging: LoggingConfig{
			File:  "pdfbridge.log",
			Level: "info",
		},
	}
}
