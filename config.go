package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	ZoomMin         float64
	ZoomMax         float64
	WheelFactor     float64
	ExportDirectory string
}

func loadConfig() *Config {
	config := &Config{
		ZoomMin:         defaultZoomMin,
		ZoomMax:         defaultZoomMax,
		WheelFactor:     defaultWheelFactor,
		ExportDirectory: "",
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	configPath := filepath.Join(homeDir, ".jackvizrc")
	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "zoommin", "zoom_min":
			if v, err := strconv.ParseFloat(value, 64); err == nil && v > 0 {
				config.ZoomMin = v
			}
		case "zoommax", "zoom_max":
			if v, err := strconv.ParseFloat(value, 64); err == nil && v > 0 {
				config.ZoomMax = v
			}
		case "wheelfactor", "wheel_factor":
			if v, err := strconv.ParseFloat(value, 64); err == nil && v > 1 {
				config.WheelFactor = v
			}
		case "exportdirectory", "export_directory", "exportdir":
			if strings.HasPrefix(value, "~") {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.ExportDirectory = value
		}
	}

	// Both bounds must hold or the view could invert.
	if config.ZoomMin >= config.ZoomMax {
		config.ZoomMin = defaultZoomMin
		config.ZoomMax = defaultZoomMax
	}

	return config
}

func (c *Config) GetExportPath(filename string) string {
	if c.ExportDirectory == "" {
		return filename
	}
	os.MkdirAll(c.ExportDirectory, 0755)
	return filepath.Join(c.ExportDirectory, filename)
}
