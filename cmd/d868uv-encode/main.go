// d868uv-encode: encode a JSON configuration file into a raw AT-D868UV-class
// codeplug dump.
//
// This is the mirror of d868uv-decode: it loads the abstract configuration
// model from JSON, encodes it into the sparse binary memory image, and
// writes that image out as a flat file the size of the radio's full address
// span, with unallocated regions left as filesystem holes.
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
	inputFile := pflag.StringP("input", "i", "", "JSON config file to encode (required)")
	outputFile := pflag.StringP("output", "o", "", "Output raw codeplug dump path (default: <input>.bin)")
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

	cfg, err := codeplug.Load(*inputFile)
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}

	img, err := d868uv.Encode(cfg, logger)
	if err != nil {
		logger.Fatal("failed to encode config", "err", err)
	}

	path := *outputFile
	if path == "" {
		path = *inputFile + ".bin"
	}
	if err := image.WriteFlatFile(path, img, d868uv.ImageSpan); err != nil {
		logger.Fatal("failed to write codeplug dump", "err", err)
	}

	fmt.Printf("Encoded codeplug dump saved to: %s\n", path)
}
