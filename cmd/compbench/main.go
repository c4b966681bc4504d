// Command compbench benchmarks the compressibility of a payload.
//
// The payload comes from an inline string, a file, an image, or an
// entropy-targeted random generator, and is compared against one codec or
// the whole catalogue:
//
//	compbench --type string --compression gzip "hello hello hello"
//	compbench --type file --compression zstandard ./testdata.bin
//	compbench --type random --size 65536 --entropy 4.5 --compression brotli
//	compbench --type random --size 65536 --entropy 8 --all
//	compbench --type image ./photo.png
//
// Image payloads skip the codec catalogue and are re-encoded losslessly
// as maximum-quality JPEG instead.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/compbench/compbench/bench"
	"github.com/compbench/compbench/codec"
	"github.com/compbench/compbench/recode"
	"github.com/compbench/compbench/request"
)

func main() {
	registry := codec.NewRegistry()

	app := &cli.App{
		Name:      "compbench",
		Usage:     "Benchmark the compressibility of a payload",
		ArgsUsage: "[PAYLOAD]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "type",
				Usage:    "payload type: string, file, image, or random",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "size",
				Usage: "size in bytes of the random payload (type random only)",
			},
			&cli.Float64Flag{
				Name:  "entropy",
				Usage: "target entropy of the random payload, 0 to 8 bits per byte (type random only)",
			},
			&cli.StringFlag{
				Name:  "compression",
				Usage: "codec to benchmark against: " + strings.Join(registry.Names(), ", "),
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "compare every registered codec instead of one",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, registry)
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}

func run(c *cli.Context, registry *codec.Registry) error {
	logger, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	req := request.Request{
		Type:          request.PayloadType(c.String("type")),
		Size:          c.Int("size"),
		TargetEntropy: c.Float64("entropy"),
		Codec:         c.String("compression"),
		CompareAll:    c.Bool("all"),
	}
	switch req.Type {
	case request.TypeString:
		req.Text = c.Args().First()
	case request.TypeFile, request.TypeImage:
		req.Path = c.Args().First()
	}

	logger.Debug("resolving payload",
		zap.String("type", req.Type.String()),
		zap.Int("size", req.Size),
		zap.Float64("entropy", req.TargetEntropy),
	)

	data, err := req.Resolve()
	if err != nil {
		return err
	}
	logger.Debug("payload resolved", zap.Int("bytes", len(data)))

	if req.Type == request.TypeImage {
		report, err := recode.Benchmark(data)
		if err != nil {
			return err
		}

		fmt.Println("Lossless re-encode applied to image.")
		fmt.Println(report)

		return nil
	}

	runner := bench.NewRunner(registry)

	if req.CompareAll {
		reports, err := runner.RunAll(data)
		if err != nil {
			return err
		}
		printComparison(reports)

		return nil
	}

	report, err := runner.Run(data, req.Codec)
	if err != nil {
		return err
	}

	fmt.Printf("Entropy of the original payload: %.2f bits per byte\n", report.Entropy)
	fmt.Println(report)

	return nil
}

func printComparison(reports []bench.Report) {
	if len(reports) == 0 {
		return
	}

	first := reports[0]
	fmt.Printf("Entropy of the original payload: %.2f bits per byte\n", first.Entropy)
	fmt.Printf("Original size: %d bytes\n\n", first.OriginalSize)

	fmt.Printf("%-12s %12s %10s %12s\n", "codec", "compressed", "reduction", "time")
	for _, report := range reports {
		reductionText := "n/a"
		if reduction, ok := report.Reduction(); ok {
			reductionText = fmt.Sprintf("%.2f%%", reduction)
		}

		fmt.Printf("%-12s %12d %10s %12s\n",
			report.Codec, report.CompressedSize, reductionText, report.Elapsed.Round(10*time.Microsecond))
	}
}
