// cartoview renders a vector dataset in the terminal.
//
// Usage:
//
//	cartoview countries.geojson
//	cartoview -fetch countries -res 110m
//
// With -fetch, the dataset comes from the built-in Natural Earth catalog
// instead of a local file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/beetlebugorg/carto/internal/viewer"
	"github.com/beetlebugorg/carto/pkg/dataset"
	"github.com/beetlebugorg/carto/pkg/feature"
)

func main() {
	fetch := flag.String("fetch", "", "fetch a named catalog dataset instead of reading a file")
	res := flag.String("res", "110m", "catalog resolution: 110m, 50m, or 10m")
	flag.Usage = usage
	flag.Parse()

	title, data, err := load(*fetch, *res, flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	program := tea.NewProgram(viewer.New(title, data), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatal(err)
	}
}

func load(fetch, res string, args []string) (string, *feature.Table, error) {
	if fetch != "" {
		client := dataset.NewClient()
		data, err := client.Fetch(fetch, dataset.Resolution(res))
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("%s (%s)", fetch, res), data, nil
	}

	if len(args) != 1 {
		usage()
		os.Exit(2)
	}
	data, err := dataset.ReadVector(args[0])
	if err != nil {
		return "", nil, err
	}
	return filepath.Base(args[0]), data, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: cartoview [-fetch name [-res 110m|50m|10m]] [file.geojson]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "catalog datasets:")
	for _, e := range dataset.NewCatalog().Entries() {
		fmt.Fprintf(os.Stderr, "  %-18s %s\n", e.Name, e.Description)
	}
	flag.PrintDefaults()
}
