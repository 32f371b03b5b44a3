package main

import (
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/beetlebugorg/carto/pkg/dataset"
	"github.com/beetlebugorg/carto/pkg/render"
)

func main() {
	// Load a GeoJSON file into a feature table
	countries, err := dataset.ReadVector("countries.geojson")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Features: %d\n", countries.Len())
	fmt.Printf("CRS: %s\n", countries.Geometries().SRID())

	bounds := countries.Geometries().Bounds()
	fmt.Printf("Bounds: [%.4f,%.4f] to [%.4f,%.4f]\n",
		bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MaxY)

	// Draw an outline map
	r := render.NewRenderer()
	if err := r.AddLayer(render.NewVectorLayer(countries, render.Style{
		Stroke: "#333333",
		Fill:   "#d9e8d0",
	})); err != nil {
		log.Fatal(err)
	}

	img, err := r.Draw(1024, 512)
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create("world.png")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Wrote world.png")
}
