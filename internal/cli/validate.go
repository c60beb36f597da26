package cli

import (
	"fmt"
	"io"

	"github.com/nauticalab/uconfig/internal/document"
)

// ValidateOptions holds configuration for the validate command
type ValidateOptions struct {
	Verbose bool
}

// RunValidate loads every file and reports whether it is a valid config.
// It returns an error when at least one file fails.
func RunValidate(w io.Writer, paths []string, opts ValidateOptions) error {
	failed := 0
	for _, path := range paths {
		cfg, err := document.LoadFile(path)
		if err != nil {
			failed++
			printError(w, "%s: %v", path, err)
			continue
		}
		if cfg.Len() == 0 {
			printWarn(w, "%s: config has no fields", path)
		} else {
			printSuccess(w, "%s: %d fields", path, cfg.Len())
		}
		if opts.Verbose {
			for _, key := range cfg.Keys() {
				v, _ := cfg.Get(key)
				fmt.Fprintf(w, "   %s: %s\n", key, v.Kind())
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d configs failed validation", failed, len(paths))
	}
	return nil
}
