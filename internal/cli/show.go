package cli

import (
	"fmt"
	"io"

	"github.com/nauticalab/uconfig/internal/document"
	"github.com/nauticalab/uconfig/pkg/uconfig"
)

// ShowOptions holds configuration for the show command
type ShowOptions struct {
	Format string
	Indent int
	// Repr prints the config's string representation instead of a document
	Repr bool
}

// RunShow prints the config at path in the requested format.
func RunShow(w io.Writer, path string, opts ShowOptions) error {
	cfg, err := document.LoadFile(path)
	if err != nil {
		return err
	}

	if opts.Repr {
		fmt.Fprintln(w, cfg.String())
		return nil
	}

	format, err := document.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	if format == document.FormatJSON {
		if err := cfg.Encode(w, uconfig.WithIndent(opts.Indent)); err != nil {
			return err
		}
		fmt.Fprintln(w)
		return nil
	}
	return cfg.EncodeYAML(w)
}
