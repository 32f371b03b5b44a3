package dataset

import "fmt"

// Kind distinguishes vector from raster catalog entries.
type Kind int

const (
	// VectorData is a GeoJSON feature collection.
	VectorData Kind = iota

	// RasterData is a gridded dataset.
	RasterData
)

// String returns the string representation of the dataset kind.
func (k Kind) String() string {
	switch k {
	case VectorData:
		return "Vector"
	case RasterData:
		return "Raster"
	default:
		return "Unknown"
	}
}

// Resolution selects a Natural Earth scale. Smaller scales carry more detail
// and larger downloads.
type Resolution string

const (
	// Resolution110m is the coarsest scale, suitable for world maps.
	Resolution110m Resolution = "110m"

	// Resolution50m is the medium scale.
	Resolution50m Resolution = "50m"

	// Resolution10m is the most detailed scale.
	Resolution10m Resolution = "10m"
)

// CatalogEntry describes one named reference dataset.
type CatalogEntry struct {
	Name        string       // Short name used for lookup (e.g., "countries")
	Kind        Kind         // Vector or raster
	Description string       // Human-readable summary
	Resolutions []Resolution // Scales the dataset is published at
	path        string       // Path fragment within the remote repository
}

// Catalog lists built-in reference datasets from the Natural Earth project.
//
// Natural Earth publishes public-domain basemap data at three scales; the
// entries here cover the layers most maps start from. Fetch downloads an
// entry by name through a Client.
type Catalog struct {
	entries []CatalogEntry
	byName  map[string]int
}

// NewCatalog returns the built-in Natural Earth catalog.
func NewCatalog() *Catalog {
	entries := []CatalogEntry{
		{
			Name:        "countries",
			Kind:        VectorData,
			Description: "Country polygons with name and population attributes",
			Resolutions: []Resolution{Resolution110m, Resolution50m, Resolution10m},
			path:        "ne_%s_admin_0_countries.geojson",
		},
		{
			Name:        "populated_places",
			Kind:        VectorData,
			Description: "City and town points",
			Resolutions: []Resolution{Resolution110m, Resolution50m, Resolution10m},
			path:        "ne_%s_populated_places.geojson",
		},
		{
			Name:        "coastline",
			Kind:        VectorData,
			Description: "Coastline linestrings",
			Resolutions: []Resolution{Resolution110m, Resolution50m, Resolution10m},
			path:        "ne_%s_coastline.geojson",
		},
		{
			Name:        "rivers",
			Kind:        VectorData,
			Description: "River and lake centerlines",
			Resolutions: []Resolution{Resolution110m, Resolution50m, Resolution10m},
			path:        "ne_%s_rivers_lake_centerlines.geojson",
		},
		{
			Name:        "lakes",
			Kind:        VectorData,
			Description: "Lake and reservoir polygons",
			Resolutions: []Resolution{Resolution110m, Resolution50m, Resolution10m},
			path:        "ne_%s_lakes.geojson",
		},
		{
			Name:        "land",
			Kind:        VectorData,
			Description: "Land polygons",
			Resolutions: []Resolution{Resolution110m, Resolution50m, Resolution10m},
			path:        "ne_%s_land.geojson",
		},
	}

	byName := make(map[string]int, len(entries))
	for i, e := range entries {
		byName[e.Name] = i
	}
	return &Catalog{entries: entries, byName: byName}
}

// Entries returns all catalog entries.
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Find looks up an entry by name.
func (c *Catalog) Find(name string) (CatalogEntry, error) {
	i, ok := c.byName[name]
	if !ok {
		return CatalogEntry{}, &ErrUnknownDataset{Name: name}
	}
	return c.entries[i], nil
}

// HasResolution reports whether the entry is published at the given scale.
func (e CatalogEntry) HasResolution(res Resolution) bool {
	for _, r := range e.Resolutions {
		if r == res {
			return true
		}
	}
	return false
}

// remotePath returns the path of the entry at a resolution, relative to the
// repository base URL.
func (e CatalogEntry) remotePath(res Resolution) string {
	return fmt.Sprintf("geojson/"+e.path, string(res))
}
