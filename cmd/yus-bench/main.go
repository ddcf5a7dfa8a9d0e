// Command yus-bench sweeps keystream throughput across block counts and
// renders the results as an interactive HTML chart.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"yuscipher/cipher"
	"yuscipher/field"
)

func main() {
	pFlag := flag.Uint64("p", 65579, "prime modulus, p ≡ 2 mod 3 and p > 2^16")
	levelFlag := flag.Int("level", 5, "security level: 5 (80-bit) or 6 (128-bit)")
	mFlag := flag.Int("m", 12, "truncation width m in [0,36]")
	maxBlocks := flag.Int("max-blocks", 4096, "largest block count in the sweep")
	steps := flag.Int("steps", 12, "number of sweep points, log-spaced up to max-blocks")
	outPath := flag.String("out", "yus-bench.html", "output HTML chart path")
	flag.Parse()

	key := make([]field.Elem, 36)
	for i := range key {
		key[i] = field.Elem(i*2654435761 + 1)
	}
	nonce := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	type point struct {
		blocks      int
		elapsed     time.Duration
		elemsPerSec float64
		bytesPerSec float64
	}
	var points []point

	for i := 1; i <= *steps; i++ {
		n := int(math.Round(math.Pow(float64(*maxBlocks), float64(i)/float64(*steps))))
		if n < 1 {
			n = 1
		}
		c, err := cipher.New(*pFlag, cipher.SecurityLevel(*levelFlag), *mFlag)
		if err != nil {
			log.Fatal(err)
		}
		if err := c.Init(key, nonce); err != nil {
			log.Fatal(err)
		}

		start := time.Now()
		ks, err := c.GenerateKeystream(n)
		if err != nil {
			log.Fatal(err)
		}
		elapsed := time.Since(start)

		elemsPerSec := float64(len(ks)) / elapsed.Seconds()
		points = append(points, point{
			blocks:      n,
			elapsed:     elapsed,
			elemsPerSec: elemsPerSec,
			bytesPerSec: elemsPerSec * 8,
		})
		fmt.Fprintf(os.Stderr, "[bench] n=%d blocks -> %v, %.0f elems/s\n", n, elapsed, elemsPerSec)
	}

	page := components.NewPage().SetPageTitle("QPSC Keystream Throughput")

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Keystream throughput vs. block count",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "blocks requested", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "field elements / second", Type: "value"}),
	)

	xAxis := make([]string, 0, len(points))
	series := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		xAxis = append(xAxis, fmt.Sprintf("%d", p.blocks))
		series = append(series, opts.LineData{Value: p.elemsPerSec})
	}
	line.SetXAxis(xAxis).AddSeries("elements/sec", series)

	page.AddCharts(line)

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", *outPath)
}
