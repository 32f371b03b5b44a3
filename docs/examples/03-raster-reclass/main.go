package main

import (
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/beetlebugorg/carto/pkg/dataset"
	"github.com/beetlebugorg/carto/pkg/raster"
	"github.com/beetlebugorg/carto/pkg/render"
)

func main() {
	// Load an elevation grid from an ESRI ASCII file
	elevation, err := dataset.ReadRaster("elevation.asc")
	if err != nil {
		log.Fatal(err)
	}

	stats := elevation.Stats()
	fmt.Printf("Elevation: min=%.1f max=%.1f mean=%.1f (%d cells)\n",
		stats.Min, stats.Max, stats.Mean, stats.Count)

	// Classify cells into elevation bands
	breaks := []float64{stats.Min, 200, 500, 1000, stats.Max}
	labels := []string{"lowland", "hills", "upland", "mountain"}
	bands, err := elevation.Reclassify(breaks, labels, raster.DefaultReclassifyOptions())
	if err != nil {
		log.Fatal(err)
	}

	table, err := render.RampTable(labels, "#edf8e9", "#00441b")
	if err != nil {
		log.Fatal(err)
	}

	r := render.NewRenderer()
	if err := r.AddLayer(render.NewRasterLayer(bands, render.Style{ColorTable: table})); err != nil {
		log.Fatal(err)
	}

	img, err := r.Draw(800, 800)
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create("elevation.png")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Wrote elevation.png")
}
