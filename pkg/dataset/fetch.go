package dataset

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/beetlebugorg/carto/pkg/feature"
)

// DefaultBaseURL serves the Natural Earth GeoJSON repository.
const DefaultBaseURL = "https://raw.githubusercontent.com/nvkelso/natural-earth-vector/master"

// ClientOptions configures a fetch client.
type ClientOptions struct {
	// BaseURL is the repository root the catalog paths resolve against.
	BaseURL string

	// Timeout bounds each download.
	Timeout time.Duration

	// CacheSize is the maximum number of cached tables. Zero means unlimited.
	CacheSize int
}

// DefaultClientOptions returns options pointing at the public Natural Earth
// repository with a generous timeout.
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		BaseURL:   DefaultBaseURL,
		Timeout:   60 * time.Second,
		CacheSize: 16,
	}
}

// Client downloads catalog datasets over HTTP and caches the decoded tables.
type Client struct {
	catalog *Catalog
	http    *http.Client
	baseURL string
	cache   *Cache
}

// NewClient creates a fetch client with default options.
func NewClient() *Client {
	return NewClientWithOptions(DefaultClientOptions())
}

// NewClientWithOptions creates a fetch client with custom options.
func NewClientWithOptions(opts ClientOptions) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		catalog: NewCatalog(),
		http:    &http.Client{Timeout: opts.Timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		cache:   NewCache(opts.CacheSize),
	}
}

// Catalog returns the catalog the client fetches from.
func (c *Client) Catalog() *Catalog {
	return c.catalog
}

// Fetch downloads a named vector dataset at the given resolution and decodes
// it into a feature table. Results are cached, so fetching the same dataset
// twice hits the network once.
//
// Example:
//
//	client := dataset.NewClient()
//	countries, err := client.Fetch("countries", dataset.Resolution110m)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Fetched %d countries\n", countries.Len())
func (c *Client) Fetch(name string, res Resolution) (*feature.Table, error) {
	entry, err := c.catalog.Find(name)
	if err != nil {
		return nil, err
	}
	if !entry.HasResolution(res) {
		return nil, &ErrFetch{Name: name, Err: fmt.Errorf("no %s resolution", res)}
	}

	key := name + "/" + string(res)
	return c.cache.Get(key, func() (*feature.Table, error) {
		return c.download(entry, res)
	})
}

func (c *Client) download(entry CatalogEntry, res Resolution) (*feature.Table, error) {
	url := c.baseURL + "/" + entry.remotePath(res)
	resp, err := c.http.Get(url)
	if err != nil {
		return nil, &ErrFetch{Name: entry.Name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ErrFetch{Name: entry.Name, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	table, err := DecodeVector(resp.Body)
	if err != nil {
		return nil, &ErrFetch{Name: entry.Name, Err: err}
	}
	return table, nil
}
