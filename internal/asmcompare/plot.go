package asmcompare

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/PullupGuy/bioinfo-project/config"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// namedColors are the palette values accepted in settings.yaml.
var namedColors = map[string]color.Color{
	"red":    color.RGBA{R: 214, G: 39, B: 40, A: 255},
	"blue":   color.RGBA{R: 31, G: 119, B: 180, A: 255},
	"green":  color.RGBA{R: 44, G: 160, B: 44, A: 255},
	"orange": color.RGBA{R: 255, G: 127, B: 14, A: 255},
	"purple": color.RGBA{R: 148, G: 103, B: 189, A: 255},
	"black":  color.Black,
}

// paletteColor resolves an assembler's plot color from config.
func paletteColor(c *config.Config, assembler string) color.Color {
	if col, ok := namedColors[c.Palette[assembler]]; ok {
		return col
	}
	return color.Gray{Y: 128}
}

// PlotAll renders the comparison charts into outDir. The quality and
// phylum charts are only drawn when large circular contigs exist.
func PlotAll(t *Table, c *config.Config, outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	if err := plotLengthDistribution(t, c, filepath.Join(outDir, "length_distribution.png")); err != nil {
		return err
	}
	if err := plotLengthVsCoverage(t, c, filepath.Join(outDir, "length_vs_coverage.png")); err != nil {
		return err
	}

	large := 0
	for _, r := range t.Records {
		if r.LargeCircular {
			large++
		}
	}
	if large == 0 {
		stderr.Println("no large circular contigs found, skipping quality and phylum charts")
		return nil
	}

	if err := plotLargeCircularQuality(t, c, filepath.Join(outDir, "large_circular_quality.png")); err != nil {
		return err
	}
	return plotLargeCircularPhyla(t, c, filepath.Join(outDir, "large_circular_phyla.png"))
}

// plotLengthDistribution overlays normalized histograms of log10 contig
// length, one per assembler.
func plotLengthDistribution(t *Table, c *config.Config, path string) error {
	p := plot.New()
	p.Title.Text = "Contig Length Distribution"
	p.X.Label.Text = "Contig Length (bp, log10)"
	p.Y.Label.Text = "Density"

	for _, assembler := range c.AssemblerOrder {
		var lengths plotter.Values
		for _, r := range t.Records {
			if r.Assembler == assembler {
				lengths = append(lengths, math.Log10(float64(r.Length)))
			}
		}
		if len(lengths) == 0 {
			continue
		}

		hist, err := plotter.NewHist(lengths, 40)
		if err != nil {
			return err
		}
		hist.Normalize(1)
		hist.FillColor = nil
		hist.LineStyle.Color = paletteColor(c, assembler)
		hist.LineStyle.Width = vg.Points(2)

		p.Add(hist)
	}

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

// plotLengthVsCoverage draws a log-log scatter of length against
// coverage. Records without a coverage value are left out.
func plotLengthVsCoverage(t *Table, c *config.Config, path string) error {
	p := plot.New()
	p.Title.Text = "Contig Length vs Coverage"
	p.X.Label.Text = "Contig Length (bp, log10)"
	p.Y.Label.Text = "Coverage (log10)"

	for _, assembler := range c.AssemblerOrder {
		var points plotter.XYs
		for _, r := range t.Records {
			if r.Assembler != assembler || !r.HasCoverage || r.Coverage <= 0 {
				continue
			}
			points = append(points, plotter.XY{
				X: math.Log10(float64(r.Length)),
				Y: math.Log10(r.Coverage),
			})
		}
		if len(points) == 0 {
			continue
		}

		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = paletteColor(c, assembler)
		scatter.GlyphStyle.Radius = vg.Points(1.5)

		p.Add(scatter)
		p.Legend.Add(assembler, scatter)
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// plotLargeCircularQuality draws grouped bars of quality categories for
// large circular contigs, one bar group color per assembler.
func plotLargeCircularQuality(t *Table, c *config.Config, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Quality of Large Circular Contigs (>%d bp)", LargeContigLength)
	p.X.Label.Text = "Quality Category"
	p.Y.Label.Text = "Contigs"

	categories := []Category{CategoryHigh, CategoryMedium, CategoryLow, CategoryUnknown}
	width := vg.Points(18)

	for i, assembler := range c.AssemblerOrder {
		counts := make(plotter.Values, len(categories))
		for _, r := range t.Records {
			if r.Assembler != assembler || !r.LargeCircular {
				continue
			}
			for j, category := range categories {
				if r.Category == category {
					counts[j]++
				}
			}
		}

		bars, err := plotter.NewBarChart(counts, width)
		if err != nil {
			return err
		}
		bars.Color = paletteColor(c, assembler)
		bars.LineStyle.Width = 0
		bars.Offset = width * vg.Length(i)

		p.Add(bars)
		p.Legend.Add(assembler, bars)
	}

	names := make([]string, len(categories))
	for i, category := range categories {
		names[i] = string(category)
	}
	p.NominalX(names...)

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

// plotLargeCircularPhyla draws bars of large circular contig counts per
// phylum, most abundant phylum first.
func plotLargeCircularPhyla(t *Table, c *config.Config, path string) error {
	p := plot.New()
	p.Title.Text = "Large Circular Contigs per Phylum"
	p.X.Label.Text = "Phylum"
	p.Y.Label.Text = "Contigs"

	totals := map[string]int{}
	for _, r := range t.Records {
		if r.LargeCircular && r.Lineage.Phylum != "" {
			totals[r.Lineage.Phylum]++
		}
	}
	phyla := sortedPhyla(totals)
	if len(phyla) == 0 {
		stderr.Println("no classified large circular contigs, skipping phylum chart")
		return nil
	}

	width := vg.Points(18)
	for i, assembler := range c.AssemblerOrder {
		counts := make(plotter.Values, len(phyla))
		for _, r := range t.Records {
			if r.Assembler != assembler || !r.LargeCircular {
				continue
			}
			for j, phylum := range phyla {
				if r.Lineage.Phylum == phylum {
					counts[j]++
				}
			}
		}

		bars, err := plotter.NewBarChart(counts, width)
		if err != nil {
			return err
		}
		bars.Color = paletteColor(c, assembler)
		bars.LineStyle.Width = 0
		bars.Offset = width * vg.Length(i)

		p.Add(bars)
		p.Legend.Add(assembler, bars)
	}

	p.NominalX(phyla...)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
