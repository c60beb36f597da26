package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/nauticalab/uconfig/internal/document"
	"github.com/nauticalab/uconfig/internal/git"
	"github.com/nauticalab/uconfig/pkg/uconfig"
)

// ErrConfigsDiffer is returned by the diff runners when FailOnDiff is set
// and the configs are not equal.
var ErrConfigsDiffer = errors.New("configs differ")

// DiffOptions holds configuration for the diff command
type DiffOptions struct {
	// Text compares the rendered JSON documents line by line
	Text bool
	// FailOnDiff turns a non-empty difference into ErrConfigsDiffer
	FailOnDiff bool
}

// RunDiff compares the configs stored at a and b.
func RunDiff(w io.Writer, a, b string, opts DiffOptions) error {
	first, err := document.LoadFile(a)
	if err != nil {
		return err
	}
	second, err := document.LoadFile(b)
	if err != nil {
		return err
	}
	return printDiff(w, a, b, first, second, opts)
}

// RunDiffRevision compares the config at file as of rev with its current
// contents in the working tree.
func RunDiffRevision(w io.Writer, file, rev string, opts DiffOptions) error {
	format, err := document.FormatFromPath(file)
	if err != nil {
		return err
	}

	old, err := git.ReadFileAtRevision(file, rev)
	if err != nil {
		return err
	}

	first, err := document.LoadBytes(document.NameFromPath(file), old.Data, format)
	if err != nil {
		return fmt.Errorf("invalid configuration in %s at %s: %w", file, rev, err)
	}
	second, err := document.LoadFile(file)
	if err != nil {
		return err
	}

	label := fmt.Sprintf("%s@%s", old.Path, shortHash(old.Commit))
	return printDiff(w, label, file, first, second, opts)
}

func printDiff(w io.Writer, labelA, labelB string, first, second *uconfig.Config, opts DiffOptions) error {
	diff, err := first.Difference(second)
	if err != nil {
		return err
	}

	if diff.Len() == 0 {
		printSuccess(w, "%s and %s are equal", labelA, labelB)
		return nil
	}

	fmt.Fprintln(w, header("--- "+labelA))
	fmt.Fprintln(w, header("+++ "+labelB))

	if opts.Text {
		if err := printTextDiff(w, first, second); err != nil {
			return err
		}
	} else if err := printFieldDiff(w, diff); err != nil {
		return err
	}

	if opts.FailOnDiff {
		return ErrConfigsDiffer
	}
	return nil
}

func printFieldDiff(w io.Writer, diff *uconfig.Map) error {
	var err error
	diff.Range(func(key string, v uconfig.Value) bool {
		var data []byte
		if data, err = v.MarshalJSON(); err != nil {
			return false
		}
		line := fmt.Sprintf("%s: %s", key, data)
		if strings.HasPrefix(key, "first.") {
			fmt.Fprintln(w, removed("- "+line))
		} else {
			fmt.Fprintln(w, added("+ "+line))
		}
		return true
	})
	return err
}

func printTextDiff(w io.Writer, first, second *uconfig.Config) error {
	var a, b bytes.Buffer
	if err := first.Encode(&a); err != nil {
		return err
	}
	if err := second.Encode(&b); err != nil {
		return err
	}

	for _, line := range lineDiff(a.String()+"\n", b.String()+"\n") {
		switch line[0] {
		case '-':
			fmt.Fprintln(w, removed(line))
		case '+':
			fmt.Fprintln(w, added(line))
		default:
			fmt.Fprintln(w, line)
		}
	}
	return nil
}

// lineDiff returns the lines of a unified-style diff without hunk headers.
// Every line starts with "- ", "+ " or two spaces.
func lineDiff(a, b string) []string {
	dmp := diffmatchpatch.New()
	charsA, charsB, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(charsA, charsB, false), lines)

	var out []string
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			out = append(out, prefix+line)
		}
	}
	return out
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
