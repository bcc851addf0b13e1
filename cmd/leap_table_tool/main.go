// Command leap_table_tool transcodes a leap-second catalog between its
// binary, textproto, and JSON forms, and can render a LeapTable's
// debug dump for a given catalog file.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/skytime/smeartai/catalog"
)

var log logrus.FieldLogger = logrus.StandardLogger()

const (
	exitOK = iota
	exitIOOrParseError
	exitUsageError
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	var inputFormat, outputFormat string

	cmd := &cobra.Command{
		Use:           "leap_table_tool FILENAME",
		Short:         "Transcode a leap-second catalog between proto, textproto, json, and debug forms",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, rawArgs []string) error {
			if err := transcode(rawArgs[0], inputFormat, outputFormat, stdout); err != nil {
				return ioError{err}
			}
			return nil
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().StringVar(&inputFormat, "input", "textproto", "input format: proto, textproto")
	cmd.Flags().StringVar(&outputFormat, "output", "proto", "output format: proto, textproto, json, debug")
	cmd.PreRunE = func(_ *cobra.Command, _ []string) error {
		return validateFormats(inputFormat, outputFormat)
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		if isIOOrParseError(err) {
			return exitIOOrParseError
		}
		return exitUsageError
	}
	return exitOK
}

// ioError marks an error as originating from transcode (file I/O or
// catalog parsing) rather than from argument/flag validation, which is
// everything else cobra or validateFormats can return.
type ioError struct{ error }

func isIOOrParseError(err error) bool {
	_, ok := err.(ioError)
	return ok
}

func validateFormats(input, output string) error {
	switch input {
	case "proto", "textproto":
	case "json", "debug":
		return fmt.Errorf("--input=%s is not accepted (catalogs are not read in %s form)", input, input)
	default:
		return fmt.Errorf("--input must be one of proto, textproto (got %q)", input)
	}
	switch output {
	case "proto", "textproto", "json", "debug":
	default:
		return fmt.Errorf("--output must be one of proto, textproto, json, debug (got %q)", output)
	}
	return nil
}

func transcode(filename, inputFormat, outputFormat string, stdout *os.File) error {
	raw, err := os.ReadFile(filename)
	if err != nil {
		log.WithError(err).WithField("filename", filename).Error("leap_table_tool: reading input")
		return err
	}

	var cat catalog.LeapCatalog
	switch inputFormat {
	case "proto":
		cat, err = catalog.UnmarshalBinary(raw)
	case "textproto":
		cat, err = catalog.UnmarshalText(raw)
	}
	if err != nil {
		log.WithError(err).WithField("input", inputFormat).Error("leap_table_tool: parsing catalog")
		return err
	}

	var out []byte
	switch outputFormat {
	case "proto":
		out, err = cat.MarshalBinary()
		if err != nil {
			log.WithError(err).Error("leap_table_tool: rendering proto")
			return err
		}
	case "textproto":
		out = cat.MarshalText()
	case "json":
		out, err = cat.MarshalJSON()
		if err != nil {
			log.WithError(err).Error("leap_table_tool: rendering json")
			return err
		}
	case "debug":
		lt, ltErr := cat.ToLeapTable()
		if ltErr != nil {
			log.WithError(ltErr).Error("leap_table_tool: catalog fails validation")
			return ltErr
		}
		out = []byte(lt.DebugString())
	}

	_, err = stdout.Write(out)
	return err
}
