// Command uz1 compresses and decompresses uz1 container files.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/dargueta/uz1/uz1"
	uzerrors "github.com/dargueta/uz1/errors"
)

func main() {
	app := cli.App{
		Name:  "uz1",
		Usage: "Compress or decompress uz1 container files",
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Usage:     "Compress a file into a uz1 container",
				ArgsUsage: "INPUT-FILE OUTPUT-FILE",
				Action:    runCompress,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "extended",
						Usage: "use the five-stage (variant 5678) pipeline instead of the default four-stage one",
					},
				},
			},
			{
				Name:      "decompress",
				Usage:     "Decompress a uz1 container to a file",
				ArgsUsage: "INPUT-FILE OUTPUT-FILE",
				Action:    runDecompress,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func runCompress(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return cli.Exit("expected exactly two arguments: INPUT-FILE OUTPUT-FILE", 1)
	}
	inputPath := c.Args().Get(0)
	outputPath := c.Args().Get(1)

	inputFile, err := os.Open(inputPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to open file for reading: %q: %s", inputPath, err), 1)
	}
	defer inputFile.Close()

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to open file for writing: %q: %s", outputPath, err), 1)
	}
	defer outputFile.Close()

	variant := uz1.VariantUT99
	if c.Bool("extended") {
		variant = uz1.VariantExtended
	}

	err = uz1.Compress(inputFile, outputFile, filepath.Base(inputPath), variant, nil)
	if err != nil {
		// The compression failure is the primary cause; closing and
		// removing the half-written output file can independently fail
		// with its own I/O error, so both get reported together rather
		// than letting the cleanup failure silently mask the original one.
		closeErr := outputFile.Close()
		removeErr := os.Remove(outputPath)
		if closeErr != nil || removeErr != nil {
			err = uzerrors.Wrap(err, closeErr, removeErr)
		}
		return cli.Exit(fmt.Sprintf("error compressing file: %s", err), 1)
	}

	info, statErr := outputFile.Stat()
	if statErr == nil {
		fmt.Printf("Compressed input file to %d bytes.\n", info.Size())
	}
	return nil
}

func runDecompress(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return cli.Exit("expected exactly two arguments: INPUT-FILE OUTPUT-FILE", 1)
	}
	inputPath := c.Args().Get(0)
	outputPath := c.Args().Get(1)

	inputFile, err := os.Open(inputPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to open file for reading: %q: %s", inputPath, err), 1)
	}
	defer inputFile.Close()

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to open file for writing: %q: %s", outputPath, err), 1)
	}
	defer outputFile.Close()

	filename, err := uz1.Decompress(inputFile, outputFile, nil)
	if err != nil {
		closeErr := outputFile.Close()
		removeErr := os.Remove(outputPath)
		if closeErr != nil || removeErr != nil {
			err = uzerrors.Wrap(err, closeErr, removeErr)
		}
		return cli.Exit(fmt.Sprintf("error decompressing file: %s", err), 1)
	}

	fmt.Printf("Decompressed %q from container.\n", filename)
	return nil
}
