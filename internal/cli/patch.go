package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/nauticalab/uconfig/internal/document"
	"github.com/nauticalab/uconfig/pkg/uconfig"
)

// PatchOptions holds configuration for the patch command
type PatchOptions struct {
	// Output is written instead of printing when set
	Output string
	Indent int
}

// RunPatch applies the RFC 6902 patch at patchPath to the config at path.
// The result is validated like any loaded document before it is printed or
// saved.
func RunPatch(w io.Writer, path, patchPath string, opts PatchOptions) error {
	cfg, err := document.LoadFile(path)
	if err != nil {
		return err
	}

	patchFormat, err := document.FormatFromPath(patchPath)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(patchPath)
	if err != nil {
		return fmt.Errorf("failed to read patch file %s: %w", patchPath, err)
	}
	patch, err := document.DecodePatch(data, patchFormat)
	if err != nil {
		return fmt.Errorf("invalid patch in %s: %w", patchPath, err)
	}

	patched, err := document.ApplyPatch(cfg, patch)
	if err != nil {
		return err
	}

	if opts.Output != "" {
		if err := document.WriteFile(patched, opts.Output, uconfig.WithIndent(opts.Indent)); err != nil {
			return err
		}
		printSuccess(w, "patched %s into %s", path, opts.Output)
		return nil
	}

	format, err := document.FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err = document.Encode(patched, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", bytes.TrimRight(data, "\n"))
	return err
}
