package log

import (
	"github.com/kochabx/ripe/log/writer"
)

// FileConfig describes a rotating log file.
type FileConfig struct {
	Filepath         string            `json:"filepath" mapstructure:"filepath"`
	Filename         string            `json:"filename" mapstructure:"filename"`
	FileExt          string            `json:"file_ext" mapstructure:"file_ext"`
	RotateMode       writer.RotateMode `json:"rotate_mode" mapstructure:"rotate_mode"`
	RotatelogsConfig RotatelogsConfig  `json:"rotatelogs_config" mapstructure:"rotatelogs_config"`
	LumberjackConfig LumberjackConfig  `json:"lumberjack_config" mapstructure:"lumberjack_config"`
}

// RotatelogsConfig configures time-based rotation.
type RotatelogsConfig struct {
	MaxAge       int `json:"max_age" mapstructure:"max_age"`
	RotationTime int `json:"rotation_time" mapstructure:"rotation_time"`
}

// LumberjackConfig configures size-based rotation.
type LumberjackConfig struct {
	MaxSize    int  `json:"max_size" mapstructure:"max_size"`
	MaxBackups int  `json:"max_backups" mapstructure:"max_backups"`
	MaxAge     int  `json:"max_age" mapstructure:"max_age"`
	Compress   bool `json:"compress" mapstructure:"compress"`
}

func (c *FileConfig) applyDefaults() {
	if c.Filepath == "" {
		c.Filepath = "log"
	}
	if c.Filename == "" {
		c.Filename = "ripe"
	}
	if c.FileExt == "" {
		c.FileExt = "log"
	}
	if c.RotatelogsConfig.MaxAge == 0 {
		c.RotatelogsConfig.MaxAge = 24
	}
	if c.RotatelogsConfig.RotationTime == 0 {
		c.RotatelogsConfig.RotationTime = 1
	}
	if c.LumberjackConfig.MaxSize == 0 {
		c.LumberjackConfig.MaxSize = 100
	}
	if c.LumberjackConfig.MaxBackups == 0 {
		c.LumberjackConfig.MaxBackups = 7
	}
}

func (c *FileConfig) toWriterConfig() writer.RotateConfig {
	return writer.RotateConfig{
		Mode:     c.RotateMode,
		Filepath: c.Filepath,
		Filename: c.Filename,
		FileExt:  c.FileExt,
		TimeRotateConfig: writer.TimeRotateConfig{
			MaxAge:       c.RotatelogsConfig.MaxAge,
			RotationTime: c.RotatelogsConfig.RotationTime,
		},
		SizeRotateConfig: writer.SizeRotateConfig{
			MaxSize:    c.LumberjackConfig.MaxSize,
			MaxBackups: c.LumberjackConfig.MaxBackups,
			MaxAge:     c.LumberjackConfig.MaxAge,
			Compress:   c.LumberjackConfig.Compress,
		},
	}
}
