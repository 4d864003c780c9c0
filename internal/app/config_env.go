package app

import (
    "os"
    "strings"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
    if cfg == nil { return }

    setString := func(dst *string, envKey string) {
        if *dst != "" { return }
        *dst = strings.TrimSpace(os.Getenv(envKey))
    }
    setString(&cfg.Root, "TIMELINE_ROOT")
    setString(&cfg.InputPath, "TIMELINE_INPUT")
    setString(&cfg.OutputPath, "TIMELINE_OUTPUT")
    setString(&cfg.OutputPDFPath, "TIMELINE_OUTPUT_PDF")
    setString(&cfg.OutputXLSXPath, "TIMELINE_OUTPUT_XLSX")

    if !cfg.Verbose {
        switch strings.ToLower(strings.TrimSpace(os.Getenv("VERBOSE"))) {
        case "1", "true", "yes", "on":
            cfg.Verbose = true
        }
    }
}
