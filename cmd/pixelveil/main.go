// PixelVeil — Hide a grayscale image inside another image.
//
// Usage:
//
//	pixelveil hide <carrier> <hidden> <output.png> [--fit] [--gray]
//	pixelveil reveal <encoded> <output> [--legacy-order]
//	pixelveil gen -o <file> [options]
//	pixelveil serve [--port 8080]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mgeist/pixelveil/clients/server"
	"github.com/mgeist/pixelveil/pkg/carrier"
	"github.com/mgeist/pixelveil/pkg/imgio"
	"github.com/mgeist/pixelveil/pkg/prep"
	"github.com/mgeist/pixelveil/pkg/steg"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "hide":
		if err := runHide(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "reveal":
		if err := runReveal(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "gen":
		if err := runGen(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "serve":
		if err := server.RunServe(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runHide(args []string) error {
	fs := flag.NewFlagSet("hide", flag.ExitOnError)
	fit := fs.Bool("fit", false, "Scale the hidden image to the carrier's size")
	gray := fs.Bool("gray", false, "Reduce the hidden image to grayscale before embedding")
	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		printUsage()
		return fmt.Errorf("hide needs <carrier> <hidden> <output.png>")
	}
	carrierPath, hiddenPath, outputPath := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	carrierBuf, err := imgio.Load(carrierPath)
	if err != nil {
		return err
	}
	hiddenBuf, err := imgio.Load(hiddenPath)
	if err != nil {
		return err
	}

	if *gray {
		hiddenBuf = prep.Grayscale(hiddenBuf)
	}
	if *fit {
		hiddenBuf = prep.FitTo(hiddenBuf, carrierBuf.Width(), carrierBuf.Height())
	}

	if err := imgio.SaveEncoded(outputPath, steg.Embed(carrierBuf, hiddenBuf)); err != nil {
		return err
	}
	fmt.Printf("Hidden %s inside %s → %s\n", hiddenPath, carrierPath, outputPath)
	return nil
}

func runReveal(args []string) error {
	fs := flag.NewFlagSet("reveal", flag.ExitOnError)
	legacy := fs.Bool("legacy-order", false, "Read images encoded by the original ImageHider tool")
	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		printUsage()
		return fmt.Errorf("reveal needs <encoded> <output>")
	}
	encodedPath, outputPath := fs.Arg(0), fs.Arg(1)

	encoded, err := imgio.Load(encodedPath)
	if err != nil {
		return err
	}

	revealed := steg.Extract(encoded, steg.ExtractOptions{LegacyChannelOrder: *legacy})
	if err := imgio.Save(outputPath, revealed); err != nil {
		return err
	}
	fmt.Printf("Revealed %s → %s\n", encodedPath, outputPath)
	return nil
}

func runGen(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)

	var (
		output string
		width  int
		height int
		color  string
	)
	fs.StringVar(&output, "o", "", "Output file path (.png or .bmp)")
	fs.StringVar(&output, "output", "", "Output file path (.png or .bmp)")
	fs.IntVar(&width, "w", 1280, "Width in pixels")
	fs.IntVar(&width, "width", 1280, "Width in pixels")
	fs.IntVar(&height, "h", 720, "Height in pixels")
	fs.IntVar(&height, "height", 720, "Height in pixels")
	fs.StringVar(&color, "color", "random", "Background color: hex or 'random'")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}
	if output == "" {
		printUsage()
		return fmt.Errorf("output file is required (-o)")
	}

	cfg := carrier.Config{Width: width, Height: height, Color: color}
	if err := carrier.Generate(output, cfg); err != nil {
		return err
	}
	fmt.Printf("Generated carrier: %s\n", output)
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`PixelVeil — Hide a grayscale image inside another image

USAGE:
    pixelveil hide <carrier> <hidden> <output.png> [--fit] [--gray]
    pixelveil reveal <encoded> <output> [--legacy-order]
    pixelveil gen -o <file> [options]
    pixelveil serve [--port 8080]

HIDE:
    Embeds the hidden image's luminance into the two low-order bits of each
    carrier channel. Inputs: .bmp, .gif, .jpeg, .jpg, .png, .wpng. Output
    must be .png — lossy formats destroy the hidden bits.
    --fit                  Scale the hidden image to cover the carrier
    --gray                 Convert the hidden image to grayscale first

REVEAL:
    Recovers the grayscale image from an encoded carrier.
    --legacy-order         Decode files produced by the original ImageHider

GEN:
    Generates a solid-color cover image.
    -o, --output <path>    Output file (.png or .bmp)
    -w, --width <px>       Width in pixels (default: 1280)
    -h, --height <px>      Height in pixels (default: 720)
    --color <hex>          Background color or 'random' (default: random)

SERVE:
    Starts the HTTP API (POST /api/v1/hide, POST /api/v1/reveal).

EXAMPLES:
    pixelveil gen -o cover.png -w 800 -h 600 --color "#336699"
    pixelveil hide cover.png secret.jpg out.png --fit --gray
    pixelveil reveal out.png revealed.png
`)
}
