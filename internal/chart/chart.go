package chart

import (
	"fmt"
	"os/exec"
	"runtime"

	"StockYTD/internal/model"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Chart is a line chart of closing prices.
type Chart interface {
	// AddSeries draws points as one labeled line.
	AddSeries(label string, points []model.ClosePoint) error
	// Save writes the chart to path, replacing any existing file. The image
	// format follows the file extension.
	Save(path string) error
	// Show displays a saved chart.
	Show(path string) error
}

// Series is one labeled line of a PriceChart.
type Series struct {
	Label  string
	Points []model.ClosePoint
}

// PriceChart implements Chart with gonum/plot: dates on the x axis, legend and grid on.
type PriceChart struct {
	Width  vg.Length
	Height vg.Length
	// Open hands a saved file to the desktop viewer. Defaults to OpenFile.
	Open func(path string) error

	plot   *plot.Plot
	series []Series
}

// NewPriceChart creates an empty 14x7 inch chart.
func NewPriceChart(title, xLabel, yLabel string) *PriceChart {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: model.DateLayout}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	return &PriceChart{
		Width:  14 * vg.Inch,
		Height: 7 * vg.Inch,
		Open:   OpenFile,
		plot:   p,
	}
}

func (c *PriceChart) AddSeries(label string, points []model.ClosePoint) error {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = float64(pt.Time.Unix())
		xys[i].Y = pt.Close
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("series %s: %w", label, err)
	}
	line.Color = plotutil.Color(len(c.series))
	line.Width = vg.Points(1.5)

	c.plot.Add(line)
	c.plot.Legend.Add(label, line)
	c.series = append(c.series, Series{Label: label, Points: points})
	return nil
}

// Series returns the lines added so far, in insertion order.
func (c *PriceChart) Series() []Series {
	return c.series
}

func (c *PriceChart) Save(path string) error {
	if err := c.plot.Save(c.Width, c.Height, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}

func (c *PriceChart) Show(path string) error {
	return c.Open(path)
}

// OpenFile opens path with the platform's default viewer.
func OpenFile(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}
