package app

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strings"

    yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
    Root       string `yaml:"root" json:"root"`
    Input      string `yaml:"input" json:"input"`
    Output     string `yaml:"output" json:"output"`
    OutputPDF  string `yaml:"outputPDF" json:"outputPDF"`
    OutputXLSX string `yaml:"outputXLSX" json:"outputXLSX"`
    Verbose    bool   `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    b, err := os.ReadFile(path)
    if err != nil {
        return fc, err
    }
    switch ext := strings.ToLower(filepath.Ext(path)); ext {
    case ".yaml", ".yml":
        if err := yaml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse yaml: %w", err)
        }
    case ".json":
        if err := json.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse json: %w", err)
        }
    default:
        // Try YAML then JSON
        if err := yaml.Unmarshal(b, &fc); err != nil {
            if jerr := json.Unmarshal(b, &fc); jerr != nil {
                return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
            }
        }
    }
    return fc, nil
}

// ApplyFileConfig fills fields of cfg that are still unset from fc. Flags and
// env have already been applied, so they keep precedence.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
    if cfg == nil {
        return
    }
    if cfg.Root == "" { cfg.Root = fc.Root }
    if cfg.InputPath == "" { cfg.InputPath = fc.Input }
    if cfg.OutputPath == "" { cfg.OutputPath = fc.Output }
    if cfg.OutputPDFPath == "" { cfg.OutputPDFPath = fc.OutputPDF }
    if cfg.OutputXLSXPath == "" { cfg.OutputXLSXPath = fc.OutputXLSX }
    if !cfg.Verbose && fc.Verbose { cfg.Verbose = true }
}

// ValidateConfig checks a resolved config.
func ValidateConfig(cfg Config) error {
    if strings.TrimSpace(cfg.InputPath) == "" {
        return errors.New("config: input path is required")
    }
    if strings.TrimSpace(cfg.OutputPath) == "" {
        return errors.New("config: output path is required")
    }
    if filepath.Clean(cfg.InputPath) == filepath.Clean(cfg.OutputPath) {
        return errors.New("config: output path must differ from input path")
    }
    for _, p := range []string{cfg.OutputPDFPath, cfg.OutputXLSXPath} {
        if p != "" && (filepath.Clean(p) == filepath.Clean(cfg.InputPath) || filepath.Clean(p) == filepath.Clean(cfg.OutputPath)) {
            return fmt.Errorf("config: export path %s collides with input or output", p)
        }
    }
    return nil
}
