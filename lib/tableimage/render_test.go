package tableimage

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"seoulopendata/lib/datatable"

	"github.com/stretchr/testify/require"
)

func sampleTable() *datatable.Table {
	return &datatable.Table{
		Columns: []string{"MSRSTE_NM", "PM10", "PM25"},
		Rows: [][]string{
			{"강남구", "45", "21"},
			{"강동구", "39", "18"},
			{"강북구", "51", "30"},
		},
	}
}

func renderToTemp(t *testing.T, tbl *datatable.Table, params Params) string {
	path := filepath.Join(t.TempDir(), "out", "table.png")
	err := Render(tbl, path, params)
	require.NoError(t, err)
	return path
}

func decodeSize(t *testing.T, path string) (int, int) {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestRenderWritesPng(t *testing.T) {
	path := renderToTemp(t, sampleTable(), Params{Title: "공기질 현황"})

	w, h := decodeSize(t, path)
	require.Greater(t, w, 0)
	require.Greater(t, h, 0)
}

func TestRenderTruncation(t *testing.T) {
	tbl := sampleTable()
	cellFace := loadFace(cellFontSize)
	titleFace := loadFace(titleFontSize)

	// one header row plus exactly min(maxRows, total) data rows
	for _, test := range []struct {
		maxRows   int
		wantShown int
	}{
		{maxRows: 1, wantShown: 1},
		{maxRows: 2, wantShown: 2},
		{maxRows: 3, wantShown: 3},
		{maxRows: 10, wantShown: 3},
	} {
		shown := tbl.Truncate(test.maxRows)
		grid := layoutGrid(shown, Params{}, cellFace, titleFace)
		require.Equal(t, test.wantShown, grid.shownRows)

		path := renderToTemp(t, tbl, Params{MaxRows: test.maxRows})
		_, h := decodeSize(t, path)
		require.Equal(t, grid.height, h)
	}
}

func TestRenderDefaultMaxRows(t *testing.T) {
	tbl := &datatable.Table{Columns: []string{"n"}}
	for i := 0; i < 40; i++ {
		tbl.Rows = append(tbl.Rows, []string{"row"})
	}

	cellFace := loadFace(cellFontSize)
	titleFace := loadFace(titleFontSize)
	grid := layoutGrid(tbl.Truncate(DefaultMaxRows), Params{}, cellFace, titleFace)

	path := renderToTemp(t, tbl, Params{})
	_, h := decodeSize(t, path)
	require.Equal(t, grid.height, h)
}

func TestRenderEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.png")
	err := Render(&datatable.Table{}, path, Params{})
	require.ErrorIs(t, err, ErrNothingToRender)
	require.NoFileExists(t, path)
}

func TestRenderHeaderOnly(t *testing.T) {
	// zero rows with a real header still renders a header-only grid
	path := renderToTemp(t, &datatable.Table{Columns: []string{"a", "b"}}, Params{})
	w, h := decodeSize(t, path)
	require.Greater(t, w, 0)
	require.Greater(t, h, 0)
}

func TestLoadFaceNeverNil(t *testing.T) {
	require.NotNil(t, loadFace(cellFontSize))
	require.NotNil(t, loadFace(titleFontSize))
}
