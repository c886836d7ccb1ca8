package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/SpritePack/internal/model"
	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes the placement metadata as an Excel workbook with a
// header row and one row per sprite, plus a summary block. Intended
// for pipelines that audit atlas contents in spreadsheets.
func WriteXLSX(path string, meta model.AtlasMeta) error {
	if meta.N == 0 {
		return fmt.Errorf("no placements to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Placements"
	f.SetSheetName("Sheet1", sheet)

	rows := [][]interface{}{
		{"Name", "X", "Y", "Width", "Height"},
	}
	for _, t := range meta.Textures {
		rows = append(rows, []interface{}{t.Name, t.X, t.Y, t.W, t.H})
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Atlas size", meta.W},
		[]interface{}{"Sprite count", meta.N},
		[]interface{}{"Used area (px²)", meta.UsedArea()},
		[]interface{}{"Efficiency (%)", meta.Efficiency()},
	)

	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return f.SaveAs(path)
}
