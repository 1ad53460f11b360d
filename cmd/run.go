package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/amirphl/ezpz-ti/internal/frame"
	"github.com/amirphl/ezpz-ti/internal/indicator"
	"github.com/amirphl/ezpz-ti/internal/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// parseAssignments turns repeated key=value flags into a map.
func parseAssignments(flag string, items []string) (map[string]string, error) {
	out := make(map[string]string, len(items))
	for _, item := range items {
		key, value, ok := strings.Cut(item, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("--%s %q: expected key=value", flag, item)
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("--%s: %q given twice", flag, key)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

func describeParams(params []indicator.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		if p.Default == "" {
			parts[i] = fmt.Sprintf("%s:%s (required)", p.Name, p.Kind)
		} else {
			parts[i] = fmt.Sprintf("%s:%s=%s", p.Name, p.Kind, p.Default)
		}
	}
	return strings.Join(parts, ", ")
}

func describeInputs(roles []string) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		if col := indicator.DefaultColumn(r); col != r {
			parts[i] = r + "<-" + col
		} else {
			parts[i] = r
		}
	}
	return strings.Join(parts, ", ")
}

func writeCatalog(w io.Writer, family string) error {
	heading := color.New(color.FgCyan, color.Bold)
	name := color.New(color.FgGreen)

	entries := indicator.Entries()
	for _, fam := range indicator.Families() {
		if family != "" && fam != family {
			continue
		}
		heading.Fprintln(w, fam)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, e := range entries {
			if e.Family != fam {
				continue
			}
			fmt.Fprintf(tw, "  %s\t[%s]\t%s\n", name.Sprint(e.Name), describeInputs(e.Inputs), describeParams(e.Params))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func newListCmd() *cobra.Command {
	var family string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List indicator entry points with their inputs and parameters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeCatalog(cmd.OutOrStdout(), family)
		},
	}
	cmd.Flags().StringVar(&family, "family", "", "Only list this family")
	return cmd
}

func readFrame(path string, stdin io.Reader) (*frame.Frame, error) {
	if path == "" || path == "-" {
		return frame.ReadCSV(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	return frame.ReadCSV(f)
}

func writeTable(w io.Writer, f *frame.Frame) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	header := color.New(color.Bold)
	for _, n := range f.Names() {
		fmt.Fprint(tw, header.Sprint(n), "\t")
	}
	fmt.Fprintln(tw)
	cols := f.Columns()
	for row := range f.Height() {
		for _, c := range cols {
			fmt.Fprint(tw, c.Format(row), "\t")
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

type runOptions struct {
	input      string
	output     string
	format     string
	cols       []string
	params     []string
	appendCols bool
}

// invoke runs one entry point on the input frame and returns the table to
// write.
func (a *app) invoke(name string, opts runOptions, stdin io.Reader) (*frame.Frame, error) {
	entry, ok := indicator.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown indicator %q, see 'ezpz-ti list'", name)
	}
	inputs, err := parseAssignments("col", opts.cols)
	if err != nil {
		return nil, err
	}
	params, err := parseAssignments("param", opts.params)
	if err != nil {
		return nil, err
	}

	var in *frame.Frame
	if len(entry.Inputs) > 0 || opts.appendCols {
		if in, err = readFrame(opts.input, stdin); err != nil {
			return nil, err
		}
		a.recorder.AddRows(in.Height())
	}

	logger := utils.GetLogger()
	started := time.Now()
	result, err := entry.Invoke(indicator.Call{Frame: in, Inputs: inputs, Params: params})
	a.recorder.Observe(name, started, err)
	if err != nil {
		logger.Debug().Err(err).Str("indicator", name).Msg("invocation failed")
		return nil, err
	}
	logger.Debug().Str("indicator", name).Stringer("kind", result.Kind).Dur("took", time.Since(started)).Msg("invoked")

	out, err := result.Frame(name)
	if err != nil {
		return nil, err
	}
	if opts.appendCols {
		if result.Kind != indicator.SeriesResult && result.Kind != indicator.TableResult {
			return nil, fmt.Errorf("--append needs a column or table result, %s returns a %s", name, result.Kind)
		}
		return in.With(out.Columns()...)
	}
	return out, nil
}

func writeResult(w io.Writer, out *frame.Frame, format string) error {
	switch format {
	case "csv":
		return out.WriteCSV(w)
	case "table":
		return writeTable(w, out)
	}
	return fmt.Errorf("unknown --format %q, expected csv or table", format)
}

// writeAndClose reports a failed close when the write itself succeeded.
func writeAndClose(wc io.WriteCloser, out *frame.Frame, format string) (err error) {
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()
	return writeResult(wc, out, format)
}

func newRunCmd(a *app) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run <indicator>",
		Short: "Run one indicator on a CSV table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.invoke(args[0], opts, cmd.InOrStdin())
			if err != nil {
				return err
			}

			if opts.output == "" {
				return writeResult(cmd.OutOrStdout(), out, opts.format)
			}
			f, err := os.Create(opts.output)
			if err != nil {
				return fmt.Errorf("failed to create output: %w", err)
			}
			return writeAndClose(f, out, opts.format)
		},
	}
	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "Input CSV file, - for stdin")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "Write the result here instead of stdout")
	cmd.Flags().StringVar(&opts.format, "format", "csv", "Output format: csv or table")
	cmd.Flags().StringArrayVar(&opts.cols, "col", nil, "Bind an input role to a column, role=column (repeatable)")
	cmd.Flags().StringArrayVarP(&opts.params, "param", "p", nil, "Set a parameter, key=value (repeatable)")
	cmd.Flags().BoolVar(&opts.appendCols, "append", false, "Append result columns to the input table")
	return cmd
}
