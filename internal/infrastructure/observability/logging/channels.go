// Package logging provides structured logging channels for Beckons site
// operations, keyed by system component.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Channel represents a logical logging channel for different system components
type Channel string

const (
	// System channels
	ChannelSystem   Channel = "system"   // General system operations
	ChannelStartup  Channel = "startup"  // Application startup and initialization
	ChannelShutdown Channel = "shutdown" // Application shutdown and cleanup

	// Business logic channels
	ChannelContent Channel = "content" // Content resolution operations
	ChannelCache   Channel = "cache"   // Cache operations and management
	ChannelCMS     Channel = "cms"     // CMS backend calls (queries and mutations)
	ChannelLeads   Channel = "leads"   // Inquiry and subscription capture
	ChannelEditor  Channel = "editor"  // Edit mode and inline editor operations
	ChannelMedia   Channel = "media"   // Media processing and upload

	// Infrastructure channels
	ChannelDatabase Channel = "database" // Database operations and queries

	// Performance and debugging channels
	ChannelPerf  Channel = "performance" // Performance monitoring
	ChannelDebug Channel = "debug"       // Debug information
)

// ChanneledLogger provides structured logging with multiple channels
type ChanneledLogger struct {
	channels map[Channel]*slog.Logger
	config   *LoggerConfig
	configMu sync.RWMutex
}

// LoggerConfig contains configuration options for the channeled logger
type LoggerConfig struct {
	OutputToFile    bool   `json:"outputToFile"`    // Whether to write logs to files
	OutputToConsole bool   `json:"outputToConsole"` // Whether to write logs to console
	LogDirectory    string `json:"logDirectory"`    // Directory for log files

	JSONFormat      bool   `json:"jsonFormat"`      // Use JSON format for structured logging
	IncludeSource   bool   `json:"includeSource"`   // Include source file and line in logs
	TimestampFormat string `json:"timestampFormat"` // Timestamp format for logs

	DefaultLevel  slog.Level             `json:"defaultLevel"`  // Default log level
	ChannelLevels map[Channel]slog.Level `json:"channelLevels"` // Per-channel log levels
}

// DefaultLoggerConfig returns a sensible default configuration
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: true,
		LogDirectory:    "logs",
		JSONFormat:      true,
		IncludeSource:   false,
		TimestampFormat: time.RFC3339,
		DefaultLevel:    slog.LevelInfo,
		ChannelLevels:   make(map[Channel]slog.Level),
	}
}

// NewChanneledLogger creates a new channeled logger with the given configuration
func NewChanneledLogger(config *LoggerConfig) (*ChanneledLogger, error) {
	if config == nil {
		config = DefaultLoggerConfig()
	}

	logger := &ChanneledLogger{
		channels: make(map[Channel]*slog.Logger),
		config:   config,
	}

	if config.OutputToFile {
		if err := os.MkdirAll(config.LogDirectory, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	channels := []Channel{
		ChannelSystem, ChannelStartup, ChannelShutdown,
		ChannelContent, ChannelCache, ChannelCMS,
		ChannelLeads, ChannelEditor, ChannelMedia,
		ChannelDatabase, ChannelPerf, ChannelDebug,
	}

	for _, channel := range channels {
		channelLogger, err := logger.createChannelLogger(channel)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger for channel %s: %w", channel, err)
		}
		logger.channels[channel] = channelLogger
	}

	return logger, nil
}

// createChannelLogger creates a slog.Logger for a specific channel
func (cl *ChanneledLogger) createChannelLogger(channel Channel) (*slog.Logger, error) {
	cl.configMu.RLock()
	defer cl.configMu.RUnlock()

	// Respect DefaultLevel unless explicitly overridden for the channel
	level := cl.config.DefaultLevel
	if channelLevel, exists := cl.config.ChannelLevels[channel]; exists {
		level = channelLevel
	}

	var writers []io.Writer

	if cl.config.OutputToConsole {
		writers = append(writers, os.Stdout)
	}

	if cl.config.OutputToFile {
		filename := fmt.Sprintf("%s.log", string(channel))
		path := filepath.Join(cl.config.LogDirectory, filename)

		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}

		writers = append(writers, file)
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = os.Stdout
	case 1:
		writer = writers[0]
	default:
		writer = io.MultiWriter(writers...)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cl.config.IncludeSource,
	}

	var handler slog.Handler
	if cl.config.JSONFormat {
		handler = slog.NewJSONHandler(writer, handlerOpts)
	} else {
		handler = slog.NewTextHandler(writer, handlerOpts)
	}

	return slog.New(handler).With(slog.String("channel", string(channel))), nil
}

func (cl *ChanneledLogger) System() *slog.Logger   { return cl.channels[ChannelSystem] }
func (cl *ChanneledLogger) Startup() *slog.Logger  { return cl.channels[ChannelStartup] }
func (cl *ChanneledLogger) Shutdown() *slog.Logger { return cl.channels[ChannelShutdown] }
func (cl *ChanneledLogger) Content() *slog.Logger  { return cl.channels[ChannelContent] }
func (cl *ChanneledLogger) Cache() *slog.Logger    { return cl.channels[ChannelCache] }
func (cl *ChanneledLogger) CMS() *slog.Logger      { return cl.channels[ChannelCMS] }
func (cl *ChanneledLogger) Leads() *slog.Logger    { return cl.channels[ChannelLeads] }
func (cl *ChanneledLogger) Editor() *slog.Logger   { return cl.channels[ChannelEditor] }
func (cl *ChanneledLogger) Media() *slog.Logger    { return cl.channels[ChannelMedia] }
func (cl *ChanneledLogger) Database() *slog.Logger { return cl.channels[ChannelDatabase] }
func (cl *ChanneledLogger) Perf() *slog.Logger     { return cl.channels[ChannelPerf] }
func (cl *ChanneledLogger) Debug() *slog.Logger    { return cl.channels[ChannelDebug] }

// SetChannelLevel changes the log level for one channel at runtime.
func (cl *ChanneledLogger) SetChannelLevel(channel Channel, level slog.Level) error {
	cl.configMu.Lock()
	cl.config.ChannelLevels[channel] = level
	cl.configMu.Unlock()

	channelLogger, err := cl.createChannelLogger(channel)
	if err != nil {
		return err
	}

	cl.configMu.Lock()
	cl.channels[channel] = channelLogger
	cl.configMu.Unlock()
	return nil
}
