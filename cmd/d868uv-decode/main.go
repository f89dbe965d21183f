// d868uv-decode: decode a raw AT-D868UV-class codeplug dump into a JSON
// configuration file.
//
// This tool reads a flat binary memory image (as read off the radio by a
// transport implementation), decodes it into the abstract configuration
// model, and writes the result to a JSON file. Any cross-references that
// didn't resolve cleanly are printed as warnings; the output config always
// has them cleared to "none" rather than left dangling.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/n0call/d868uv-codeplug/pkg/codeplug"
	"github.com/n0call/d868uv-codeplug/pkg/codeplug/d868uv"
	"github.com/n0call/d868uv-codeplug/pkg/image"
)

func main() {
	inputFile := pflag.StringP("input", "i", "", "Raw codeplug dump file to decode (required)")
	outputFile := pflag.StringP("output", "o", "", "Output JSON config path (default: <input>.json)")
	verbose := pflag.BoolP("verbose", "v", false, "Verbose logging")
	pflag.Parse()

	logger := log.Default()
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: --input is required")
		pflag.Usage()
		os.Exit(1)
	}

	img, err := image.ReadFlatFile(*inputFile)
	if err != nil {
		logger.Fatal("failed to read codeplug dump", "err", err)
	}

	cfg, diags, err := d868uv.Decode(img, logger)
	if err != nil {
		logger.Fatal("failed to decode codeplug", "err", err)
	}

	for _, d := range diags {
		logLevel := logger.Warn
		if d.Kind == codeplug.CorruptImage {
			logLevel = logger.Error
		}
		logLevel(d.String())
	}

	path := *outputFile
	if path == "" {
		path = *inputFile + ".json"
	}
	if err := cfg.Save(path); err != nil {
		logger.Fatal("failed to save config", "err", err)
	}

	fmt.Printf("Decoded configuration saved to: %s\n", path)
	if len(diags) > 0 {
		fmt.Printf("%d diagnostic(s) were reported, see log output above\n", len(diags))
	}
}
