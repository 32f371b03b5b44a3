package dataset

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/tiff"

	"github.com/beetlebugorg/carto/pkg/geom"
	"github.com/beetlebugorg/carto/pkg/raster"
)

// ReadRaster loads a raster file into a grid.
//
// Supported formats, selected by extension:
//
//   - .asc: ESRI ASCII grid. Georeferencing comes from the header.
//   - .tif/.tiff: TIFF image, decoded as a single band of cell values.
//     Georeferencing comes from a world file (.tfw) next to the image when
//     one exists, otherwise cells map to unit coordinates.
//
// The grid's SRID is left unknown; assign one with knowledge of the source.
func ReadRaster(path string) (*raster.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ErrUnreadableFile{Path: path, Err: err}
	}
	defer file.Close()

	var grid *raster.Grid
	switch strings.ToLower(filepath.Ext(path)) {
	case ".asc":
		grid, err = DecodeASCIIGrid(file)
	case ".tif", ".tiff":
		grid, err = decodeTIFF(file, worldFilePath(path))
	default:
		err = fmt.Errorf("unsupported raster format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, &ErrUnreadableFile{Path: path, Err: err}
	}
	return grid, nil
}

// DecodeASCIIGrid decodes an ESRI ASCII grid. The header declares the grid
// dimensions, the lower-left corner, the cell size, and optionally a NoData
// sentinel; cell values follow row by row from the top of the grid.
func DecodeASCIIGrid(r io.Reader) (*raster.Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	header := make(map[string]float64)
	var values []float64
	for scanner.Scan() {
		word := scanner.Text()
		if isHeaderKey(word) {
			if !scanner.Scan() {
				return nil, fmt.Errorf("header field %s has no value", word)
			}
			v, err := strconv.ParseFloat(scanner.Text(), 64)
			if err != nil {
				return nil, fmt.Errorf("header field %s: %w", word, err)
			}
			header[strings.ToLower(word)] = v
			continue
		}
		v, err := strconv.ParseFloat(word, 64)
		if err != nil {
			return nil, fmt.Errorf("cell value %q: %w", word, err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	ncols, ok := header["ncols"]
	if !ok {
		return nil, fmt.Errorf("missing header field ncols")
	}
	nrows, ok := header["nrows"]
	if !ok {
		return nil, fmt.Errorf("missing header field nrows")
	}
	cellsize, ok := header["cellsize"]
	if !ok {
		return nil, fmt.Errorf("missing header field cellsize")
	}

	// The corner may be given directly or as the center of the corner cell
	xll, xok := header["xllcorner"]
	if !xok {
		if xc, ok := header["xllcenter"]; ok {
			xll = xc - cellsize/2
		} else {
			return nil, fmt.Errorf("missing header field xllcorner")
		}
	}
	yll, yok := header["yllcorner"]
	if !yok {
		if yc, ok := header["yllcenter"]; ok {
			yll = yc - cellsize/2
		} else {
			return nil, fmt.Errorf("missing header field yllcorner")
		}
	}

	affine := raster.Affine{
		OriginX:    xll,
		OriginY:    yll + nrows*cellsize,
		CellWidth:  cellsize,
		CellHeight: -cellsize,
	}
	grid, err := raster.NewGrid(int(nrows), int(ncols), affine, geom.SRIDUnknown, values)
	if err != nil {
		return nil, err
	}
	if nodata, ok := header["nodata_value"]; ok {
		grid = grid.WithNoData(nodata)
	}
	return grid, nil
}

func isHeaderKey(word string) bool {
	switch strings.ToLower(word) {
	case "ncols", "nrows", "xllcorner", "yllcorner", "xllcenter", "yllcenter",
		"cellsize", "nodata_value":
		return true
	}
	return false
}

func worldFilePath(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + ".tfw"
}

func decodeTIFF(r io.Reader, tfwPath string) (*raster.Grid, error) {
	img, err := tiff.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode tiff: %w", err)
	}

	b := img.Bounds()
	ncols, nrows := b.Dx(), b.Dy()
	values := make([]float64, 0, nrows*ncols)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			values = append(values, sampleValue(img, x, y))
		}
	}

	affine := raster.Affine{OriginX: 0, OriginY: float64(nrows), CellWidth: 1, CellHeight: -1}
	if tfwPath != "" {
		if wf, err := readWorldFile(tfwPath); err == nil {
			affine = wf
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return raster.NewGrid(nrows, ncols, affine, geom.SRIDUnknown, values)
}

// sampleValue reads one band of cell data from a pixel. Grayscale images
// keep their full sample precision; anything else falls back to the red
// channel, which matches single-band data stored as RGB.
func sampleValue(img image.Image, x, y int) float64 {
	switch im := img.(type) {
	case *image.Gray:
		return float64(im.GrayAt(x, y).Y)
	case *image.Gray16:
		return float64(im.Gray16At(x, y).Y)
	default:
		r, _, _, _ := img.At(x, y).RGBA()
		return float64(r >> 8)
	}
}

// readWorldFile parses a six-line ESRI world file. The fifth and sixth
// values locate the center of the top-left cell, so the origin shifts back
// by half a cell in each axis.
func readWorldFile(path string) (raster.Affine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return raster.Affine{}, err
	}
	fields := strings.Fields(string(data))
	if len(fields) != 6 {
		return raster.Affine{}, fmt.Errorf("world file %s: expected 6 values, got %d", path, len(fields))
	}
	vals := make([]float64, 6)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return raster.Affine{}, fmt.Errorf("world file %s: %w", path, err)
		}
		vals[i] = v
	}
	return raster.Affine{
		CellWidth:  vals[0],
		RotY:       vals[1],
		RotX:       vals[2],
		CellHeight: vals[3],
		OriginX:    vals[4] - vals[0]/2,
		OriginY:    vals[5] - vals[3]/2,
	}, nil
}
