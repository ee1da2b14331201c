package main

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jcorbin/m3c/ntf"
	"github.com/jcorbin/m3c/program"
)

// writeGrid renders every row holding an instruction as a table row of page,
// row and one NTF token per column.
func writeGrid(w io.Writer, title string, prog *program.Program, color bool) error {
	tw := table.NewWriter()
	tw.SetTitle(title)
	if color {
		tw.SetStyle(table.StyleColoredDark)
	} else {
		tw.SetStyle(table.StyleLight)
	}

	header := table.Row{"page", "row"}
	for column := 0; column < program.Columns; column++ {
		header = append(header, strconv.Itoa(column))
	}
	tw.AppendHeader(header)

	var tok []byte
	for page := 0; page < program.Pages; page++ {
		for row := 0; row < program.Rows; row++ {
			base := page*program.PageSize + row*program.Columns
			cells := prog[base : base+program.Columns]
			if isEmptyRow(cells) {
				continue
			}
			line := table.Row{page, row}
			for _, ins := range cells {
				if ins.IsEmpty() {
					line = append(line, "")
					continue
				}
				tok = ntf.AppendInstruction(tok[:0], ins)
				line = append(line, string(tok))
			}
			tw.AppendRow(line)
		}
	}

	_, err := io.WriteString(w, tw.Render()+"\n")
	return err
}

func isEmptyRow(cells []program.Instruction) bool {
	for _, ins := range cells {
		if !ins.IsEmpty() {
			return false
		}
	}
	return true
}
