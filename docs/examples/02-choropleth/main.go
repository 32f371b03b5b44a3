package main

import (
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/beetlebugorg/carto/pkg/dataset"
	"github.com/beetlebugorg/carto/pkg/feature"
	"github.com/beetlebugorg/carto/pkg/render"
)

func main() {
	// Fetch country polygons from the built-in catalog
	client := dataset.NewClient()
	countries, err := client.Fetch("countries", dataset.Resolution110m)
	if err != nil {
		log.Fatal(err)
	}

	// Bin population estimates into named classes
	breaks := []float64{0, 1e6, 1e7, 1e8, 2e9}
	labels := []string{"small", "medium", "large", "huge"}
	classed, err := countries.DeriveColumn("POP_EST", "pop_class", breaks, labels,
		feature.DefaultClassifyOptions())
	if err != nil {
		log.Fatal(err)
	}

	// Blend a color ramp across the classes
	table, err := render.RampTable(labels, "#fee8c8", "#b30000")
	if err != nil {
		log.Fatal(err)
	}

	r := render.NewRenderer()
	err = r.AddLayer(render.NewVectorLayer(classed, render.Style{
		Stroke:     "#666666",
		FillBy:     "pop_class",
		ColorTable: table,
	}))
	if err != nil {
		log.Fatal(err)
	}

	img, err := r.Draw(1200, 600)
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create("population.png")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Wrote population.png")
}
