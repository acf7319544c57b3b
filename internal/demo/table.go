package demo

import (
	"strconv"

	"github.com/go-theft-auto/toolwindows/gui"
)

type tableRow struct {
	index int
	name  string
	path  string
}

var fakeRows = []tableRow{
	{1, "Alpha", "/alpha/file.txt"},
	{2, "Beta", "/beta/image.png"},
	{3, "Gamma", "/gamma/document.docx"},
	{4, "Delta", "/delta/music.mp3"},
	{5, "Epsilon", "/epsilon/video.mp4"},
	{6, "Zeta", "/zeta/presentation.pptx"},
}

var tableColumns = []gui.TableColumn{
	{Label: "#"},
	{Label: "Name"},
	{Label: "Path", Flags: gui.TableColumnFlagsWidthStretch},
}

const tableRowHeight = 24

// DrawTable draws a striped, resizable table of fake rows filling the
// available width. salt keeps the column widths of different tables
// apart.
func DrawTable(ctx *gui.Context, salt string) {
	t := ctx.BeginTable(salt, tableColumns, gui.TableFlagsRowBg|gui.TableFlagsResizable|gui.TableFlagsBordersInnerV, 0, tableRowHeight)
	t.TableHeadersRow()
	for _, row := range fakeRows {
		t.TableNextRow()
		t.TableText(strconv.Itoa(row.index))
		t.TableText(row.name)
		t.TableText(row.path)
	}
	t.EndTable()
}
