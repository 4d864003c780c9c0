package app

import (
    "fmt"
    "os"
    "path/filepath"
    "strings"
)

// Conventional locations relative to Root.
var (
    DefaultInputPath  = filepath.Join("History", "Timeline.pptx")
    DefaultOutputPath = filepath.Join("History", "timeline_extracted.json")
)

// Resolve returns a copy of cfg with an absolute Root and every path made
// absolute under it. Empty input and output paths take the defaults.
func (c Config) Resolve() (Config, error) {
    root := strings.TrimSpace(c.Root)
    if root == "" {
        wd, err := os.Getwd()
        if err != nil {
            return c, fmt.Errorf("resolve root: %w", err)
        }
        root = wd
    }
    root, err := filepath.Abs(root)
    if err != nil {
        return c, fmt.Errorf("resolve root: %w", err)
    }
    out := c
    out.Root = root
    out.InputPath = underRoot(root, pickNonEmpty(c.InputPath, DefaultInputPath))
    out.OutputPath = underRoot(root, pickNonEmpty(c.OutputPath, DefaultOutputPath))
    if strings.TrimSpace(c.OutputPDFPath) != "" {
        out.OutputPDFPath = underRoot(root, c.OutputPDFPath)
    }
    if strings.TrimSpace(c.OutputXLSXPath) != "" {
        out.OutputXLSXPath = underRoot(root, c.OutputXLSXPath)
    }
    return out, nil
}

func underRoot(root, p string) string {
    p = strings.TrimSpace(p)
    if filepath.IsAbs(p) {
        return filepath.Clean(p)
    }
    return filepath.Join(root, p)
}

func pickNonEmpty(a, b string) string {
    if strings.TrimSpace(a) != "" {
        return a
    }
    return b
}
