package cli

import (
	"fmt"
	"io"

	"github.com/nauticalab/uconfig/internal/document"
	"github.com/nauticalab/uconfig/pkg/uconfig"
)

// ConvertOptions holds configuration for the convert command
type ConvertOptions struct {
	Indent int
	Force  bool
}

// RunConvert rewrites the config at in to out, picking both formats from
// the file extensions.
func RunConvert(w io.Writer, in, out string, opts ConvertOptions) error {
	if _, err := document.FormatFromPath(out); err != nil {
		return err
	}

	if !opts.Force && fileExists(out) {
		return fmt.Errorf("output file %s already exists (use --force to overwrite)", out)
	}

	cfg, err := document.LoadFile(in)
	if err != nil {
		return err
	}

	if err := document.WriteFile(cfg, out, uconfig.WithIndent(opts.Indent)); err != nil {
		return err
	}

	printSuccess(w, "converted %s to %s", in, out)
	return nil
}
