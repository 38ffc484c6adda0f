package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/runtype"
	"github.com/reoring/runtype/i18n"
	"github.com/reoring/runtype/internal/catalog"
	"github.com/reoring/runtype/reporter"
)

// errInvalid signals that at least one document failed validation. The
// report has already been printed.
var errInvalid = errors.New("validation failed")

type checkOptions struct {
	codec    string
	format   string
	output   string
	lang     string
	maxValue int
}

type fileReport struct {
	File   string           `json:"file"`
	Valid  bool             `json:"valid"`
	Issues []reporter.Issue `json:"issues,omitempty"`
}

func newCheckCmd(a *app) *cobra.Command {
	o := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Decode files with a catalog codec and report failures",
		Long:  "Decode each FILE (\"-\" reads stdin) with the selected codec. Exits with status 1 when any file is invalid.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.check(cmd.InOrStdin(), o, args)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.codec, "codec", "c", "", "catalog codec ID (listed by the codecs command)")
	f.StringVarP(&o.format, "format", "f", "", "json|yaml|toml|msgpack|cbor (default: from file extension, json for stdin)")
	f.StringVarP(&o.output, "output", "o", "text", "text|json")
	f.StringVar(&o.lang, "lang", "en", "message language (en|ja)")
	f.IntVar(&o.maxValue, "max-value", 80, "truncate rendered values to this many runes (0 disables)")
	_ = cmd.MarkFlagRequired("codec")
	return cmd
}

func (a *app) check(stdin io.Reader, o *checkOptions, files []string) error {
	entry, ok := catalog.Lookup(o.codec)
	if !ok {
		return fmt.Errorf("unknown codec %q", o.codec)
	}
	if o.output != "text" && o.output != "json" {
		return fmt.Errorf("unknown output %q", o.output)
	}
	rep := reporter.New(
		reporter.WithTranslator(i18n.Lookup(o.lang)),
		reporter.WithMaxValueLength(o.maxValue),
	)

	reports := make([]fileReport, 0, len(files))
	invalid := false
	for _, file := range files {
		src, err := a.source(stdin, file, o.format)
		if err != nil {
			return err
		}
		r := runtype.DecodeAnyFrom(entry.Codec, src)
		a.log.Debug("decoded",
			zap.String("file", file),
			zap.String("codec", entry.ID),
			zap.String("format", src.Format()),
			zap.Int("errors", len(r.Errors())),
		)
		fr := fileReport{File: file, Valid: r.IsSuccess()}
		if r.IsFailure() {
			invalid = true
			a.log.Info("invalid document", zap.String("file", file), zap.Error(r.Errors()))
			if o.output == "json" {
				fr.Issues = rep.Issues(r.Errors())
			} else {
				for _, msg := range rep.Messages(r.Errors()) {
					fmt.Fprintf(a.out, "%s: %s\n", file, msg)
				}
			}
		} else if o.output == "text" {
			fmt.Fprintf(a.out, "%s: ok\n", file)
		}
		reports = append(reports, fr)
	}

	if o.output == "json" {
		b, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, string(b))
	}
	if invalid {
		return errInvalid
	}
	return nil
}

func (a *app) source(stdin io.Reader, file, format string) (runtype.Source, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = formatFromExt(file)
	}
	switch format {
	case "json":
		return runtype.JSONBytes(data), nil
	case "yaml", "yml":
		return runtype.YAMLBytes(data), nil
	case "toml":
		return runtype.TOMLBytes(data), nil
	case "msgpack":
		return runtype.MsgpackBytes(data), nil
	case "cbor":
		return runtype.CBORBytes(data), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func formatFromExt(file string) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	case ".msgpack", ".mp":
		return "msgpack"
	case ".cbor":
		return "cbor"
	default:
		return "json"
	}
}
