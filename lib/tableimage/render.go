package tableimage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"seoulopendata/lib/datatable"
	"seoulopendata/lib/timezone"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// ErrNothingToRender is returned for a table with zero columns. A
// zero-column table means the requested row range was past the end of
// the dataset, and a blank canvas would hide that from the caller.
var ErrNothingToRender = errors.New("nothing to render")

const DefaultMaxRows = 15

const (
	cellFontSize  = 13
	titleFontSize = 18

	padX      = 9.0
	padY      = 6.0
	margin    = 14.0
	titleGap  = 10.0
	footerGap = 8.0
)

type Params struct {
	// Title is drawn above the grid when non-empty.
	Title string
	// MaxRows bounds how many data rows appear in the image, values
	// below 1 fall back to DefaultMaxRows. The CSV export is never
	// truncated, only the image is.
	MaxRows int
}

type layout struct {
	colWidths  []float64
	rowHeight  float64
	titleBlock float64
	footBlock  float64
	width      int
	height     int
	shownRows  int
}

func layoutGrid(t *datatable.Table, params Params, cellFace, titleFace font.Face) layout {
	measure := gg.NewContext(1, 1)
	measure.SetFontFace(cellFace)

	colWidths := make([]float64, len(t.Columns))
	for i, col := range t.Columns {
		w, _ := measure.MeasureString(col)
		colWidths[i] = w + 2*padX
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			w, _ := measure.MeasureString(cell)
			if w+2*padX > colWidths[i] {
				colWidths[i] = w + 2*padX
			}
		}
	}

	rowHeight := measure.FontHeight() + 2*padY

	var titleBlock float64
	if params.Title != "" {
		measure.SetFontFace(titleFace)
		titleBlock = measure.FontHeight() + titleGap
	}
	measure.SetFontFace(cellFace)
	footBlock := measure.FontHeight() + footerGap

	total := 0.0
	for _, w := range colWidths {
		total += w
	}

	return layout{
		colWidths:  colWidths,
		rowHeight:  rowHeight,
		titleBlock: titleBlock,
		footBlock:  footBlock,
		width:      int(2*margin + total + 0.5),
		height:     int(2*margin + titleBlock + rowHeight*float64(1+len(t.Rows)) + footBlock + 0.5),
		shownRows:  len(t.Rows),
	}
}

// Render rasterizes the table as a PNG grid at path: one header row,
// at most MaxRows data rows (prefix truncation, no sampling), an
// optional title above and a collection timestamp below. Parent
// directories are created, an existing file is overwritten.
func Render(t *datatable.Table, path string, params Params) error {
	if len(t.Columns) == 0 {
		return ErrNothingToRender
	}

	maxRows := params.MaxRows
	if maxRows < 1 {
		maxRows = DefaultMaxRows
	}
	shown := t.Truncate(maxRows)

	cellFace := loadFace(cellFontSize)
	titleFace := loadFace(titleFontSize)
	grid := layoutGrid(shown, params, cellFace, titleFace)

	dc := gg.NewContext(grid.width, grid.height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if params.Title != "" {
		dc.SetFontFace(titleFace)
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.DrawStringAnchored(
			params.Title,
			float64(grid.width)/2,
			margin+(grid.titleBlock-titleGap)/2,
			0.5, 0.5,
		)
	}

	dc.SetFontFace(cellFace)
	gridTop := margin + grid.titleBlock
	gridWidth := float64(grid.width) - 2*margin
	gridHeight := grid.rowHeight * float64(1+grid.shownRows)

	// header band
	dc.SetRGB(0.92, 0.92, 0.95)
	dc.DrawRectangle(margin, gridTop, gridWidth, grid.rowHeight)
	dc.Fill()

	// cell text
	dc.SetRGB(0.1, 0.1, 0.1)
	x := margin
	for i, col := range shown.Columns {
		dc.DrawStringAnchored(col, x+padX, gridTop+grid.rowHeight/2, 0, 0.5)
		x += grid.colWidths[i]
	}
	for rowIdx, row := range shown.Rows {
		y := gridTop + grid.rowHeight*float64(rowIdx+1) + grid.rowHeight/2
		x = margin
		for i, cell := range row {
			dc.DrawStringAnchored(cell, x+padX, y, 0, 0.5)
			x += grid.colWidths[i]
		}
	}

	// grid lines
	dc.SetRGB(0.6, 0.6, 0.6)
	dc.SetLineWidth(1)
	for i := 0; i <= grid.shownRows+1; i++ {
		y := gridTop + grid.rowHeight*float64(i)
		dc.DrawLine(margin, y, margin+gridWidth, y)
	}
	x = margin
	for i := 0; i <= len(shown.Columns); i++ {
		dc.DrawLine(x, gridTop, x, gridTop+gridHeight)
		if i < len(shown.Columns) {
			x += grid.colWidths[i]
		}
	}
	dc.Stroke()

	// footer stamp
	dc.SetRGB(0.45, 0.45, 0.45)
	dc.DrawStringAnchored(
		fmt.Sprintf("collected at %s", timezone.Stamp(timezone.Now())),
		margin,
		gridTop+gridHeight+footerGap+grid.footBlock/2,
		0, 0.5,
	)

	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	err = dc.SavePNG(path)
	if err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}
