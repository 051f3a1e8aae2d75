package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateOCR(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.SamplingFPS <= 0 {
		return errors.New("analysis.sampling_fps must be greater than 0")
	}
	if c.Analysis.ChangeThreshold <= 0 || c.Analysis.ChangeThreshold > 1 {
		return errors.New("analysis.change_threshold must be in (0, 1]")
	}
	if c.Analysis.StuckThresholdSeconds <= 0 {
		return errors.New("analysis.stuck_threshold_seconds must be greater than 0")
	}
	if c.Analysis.ProgressInterval < 0 {
		return errors.New("analysis.progress_interval must not be negative")
	}
	return nil
}

func (c *Config) validateOCR() error {
	// Tesseract supports page segmentation modes 0 through 13.
	if c.OCR.PageSegMode < 0 || c.OCR.PageSegMode > 13 {
		return fmt.Errorf("ocr.page_seg_mode must be between 0 and 13, got %d", c.OCR.PageSegMode)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
