package gui

// TableFlags control table behavior.
type TableFlags uint32

const (
	TableFlagsNone          TableFlags = 0
	TableFlagsResizable     TableFlags = 1 << 0 // Columns can be resized by dragging borders
	TableFlagsRowBg         TableFlags = 1 << 1 // Alternate row background colors
	TableFlagsBordersInnerV TableFlags = 1 << 2 // Vertical borders between columns
	TableFlagsBordersInnerH TableFlags = 1 << 3 // Horizontal borders between rows
	TableFlagsBordersOuterH TableFlags = 1 << 4 // Bottom border

	TableFlagsBordersInner = TableFlagsBordersInnerV | TableFlagsBordersInnerH
)

// TableColumnFlags control individual column behavior.
type TableColumnFlags uint32

const (
	TableColumnFlagsNone         TableColumnFlags = 0
	TableColumnFlagsWidthFixed   TableColumnFlags = 1 << 0 // Use InitWidth as is
	TableColumnFlagsWidthStretch TableColumnFlags = 1 << 1 // Share the width left over by other columns
	TableColumnFlagsNoResize     TableColumnFlags = 1 << 2 // Border after this column cannot be dragged
)

// TableColumn defines a table column.
type TableColumn struct {
	Label     string
	Flags     TableColumnFlags
	InitWidth float32 // Fixed width, or stretch weight
	MinWidth  float32

	width float32
}

// TableState persists column widths and measured content between frames.
type TableState struct {
	ColumnWidths     []float32 // User-resized widths, 0 = computed
	MaxContentWidths []float32 // Widest cell per column, last frame
}

// Table is a table being drawn this frame.
type Table struct {
	ctx       *Context
	id        ID
	flags     TableFlags
	columns   []TableColumn
	state     TableState
	rowHeight float32

	startX, startY float32
	width          float32
	rowStartY      float32

	currentRow    int
	currentColumn int

	frameMaxWidths []float32
}

const minColumnWidth = 16

// BeginTable starts a table at the cursor.
// width 0 fills the available width. rowHeight 0 uses the line height
// plus padding.
//
// Usage:
//
//	t := ctx.BeginTable("files", columns, gui.TableFlagsRowBg|gui.TableFlagsResizable, 0, 24)
//	t.TableHeadersRow()
//	for _, f := range files {
//	    t.TableNextRow()
//	    t.TableText(f.Name)
//	}
//	t.EndTable()
func (ctx *Context) BeginTable(id string, columns []TableColumn, flags TableFlags, width, rowHeight float32) *Table {
	pos := ctx.ItemPos()
	if width <= 0 {
		width = ctx.AvailableRect().W
	}
	if rowHeight <= 0 {
		rowHeight = ctx.lineHeight() + ctx.style.ItemSpacing*2
	}

	tableID := ctx.CurrentID().With(id)
	state := GetState(ctx, tableID, TableState{})
	if len(state.ColumnWidths) != len(columns) {
		state.ColumnWidths = make([]float32, len(columns))
	}

	t := &Table{
		ctx:            ctx,
		id:             tableID,
		flags:          flags,
		state:          state,
		rowHeight:      rowHeight,
		startX:         pos.X,
		startY:         pos.Y,
		width:          width,
		rowStartY:      pos.Y,
		currentRow:     -1,
		currentColumn:  -1,
		frameMaxWidths: make([]float32, len(columns)),
	}
	t.columns = t.computeColumnWidths(columns)
	return t
}

// computeColumnWidths resolves column widths in two passes: fixed, saved
// and auto columns first, then stretch columns share what is left.
func (t *Table) computeColumnWidths(columns []TableColumn) []TableColumn {
	ctx := t.ctx
	result := make([]TableColumn, len(columns))
	copy(result, columns)

	pad := ctx.style.ItemSpacing * 2
	var used, stretchWeight float32

	for i := range result {
		col := &result[i]
		switch {
		case t.state.ColumnWidths[i] > 0:
			col.width = t.state.ColumnWidths[i]
		case col.Flags&TableColumnFlagsWidthStretch != 0:
			weight := col.InitWidth
			if weight <= 0 {
				weight = 1
			}
			stretchWeight += weight
			continue
		case col.Flags&TableColumnFlagsWidthFixed != 0 && col.InitWidth > 0:
			col.width = col.InitWidth
		default:
			col.width = ctx.MeasureText(col.Label).X + pad
			if i < len(t.state.MaxContentWidths) {
				col.width = maxf(col.width, t.state.MaxContentWidths[i]+pad)
			}
		}
		col.width = maxf(col.width, maxf(col.MinWidth, minColumnWidth))
		used += col.width
	}

	if stretchWeight > 0 {
		remaining := maxf(0, t.width-used)
		for i := range result {
			col := &result[i]
			if col.Flags&TableColumnFlagsWidthStretch == 0 || t.state.ColumnWidths[i] > 0 {
				continue
			}
			weight := col.InitWidth
			if weight <= 0 {
				weight = 1
			}
			col.width = maxf(remaining*(weight/stretchWeight), maxf(col.MinWidth, minColumnWidth))
		}
	}
	return result
}

// TableHeadersRow renders the header row with column labels.
func (t *Table) TableHeadersRow() {
	ctx := t.ctx
	y := t.startY

	ctx.DrawList.AddRect(t.startX, y, t.width, t.rowHeight, ctx.style.HeaderBgColor)

	textColor := ctx.style.HeaderTextColor
	if textColor == 0 {
		textColor = ctx.style.TextColor
	}
	textY := y + (t.rowHeight-ctx.lineHeight())/2

	x := t.startX
	for _, col := range t.columns {
		label := TruncateText(ctx, col.Label, col.width-ctx.style.ItemSpacing*2)
		ctx.AddText(x+ctx.style.ItemSpacing, textY, label, textColor)
		x += col.width
	}

	if t.flags&TableFlagsBordersInnerH != 0 {
		ctx.DrawList.AddLine(t.startX, y+t.rowHeight, t.startX+t.width, y+t.rowHeight, ctx.style.BorderColor, 1)
	}

	t.rowStartY = y + t.rowHeight
}

// TableNextRow starts a new row.
func (t *Table) TableNextRow() {
	t.currentRow++
	t.currentColumn = -1

	ctx := t.ctx
	y := t.rowY()

	if t.flags&TableFlagsRowBg != 0 && t.currentRow%2 == 1 {
		ctx.DrawList.AddRect(t.startX, y, t.width, t.rowHeight, ctx.style.RowBgAltColor)
	}
	if t.flags&TableFlagsBordersInnerH != 0 && t.currentRow > 0 {
		ctx.DrawList.AddLine(t.startX, y, t.startX+t.width, y, ctx.style.BorderColor, 1)
	}
}

func (t *Table) rowY() float32 {
	return t.rowStartY + float32(t.currentRow)*t.rowHeight
}

// TableNextColumn moves to the next column and returns the draw position.
func (t *Table) TableNextColumn() Vec2 {
	t.currentColumn++
	if t.currentColumn >= len(t.columns) {
		t.currentColumn = 0
	}
	return t.columnPos()
}

func (t *Table) columnPos() Vec2 {
	x := t.startX
	for i := 0; i < t.currentColumn && i < len(t.columns); i++ {
		x += t.columns[i].width
	}
	y := t.rowY() + (t.rowHeight-t.ctx.lineHeight())/2
	return Vec2{X: x + t.ctx.style.ItemSpacing, Y: y}
}

// TableText draws text in the next column, truncated to the column width.
func (t *Table) TableText(text string) {
	t.TableTextColored(text, t.ctx.style.TextColor)
}

// TableTextColored draws colored text in the next column.
func (t *Table) TableTextColored(text string, color uint32) {
	pos := t.TableNextColumn()
	col := t.columns[t.currentColumn]

	if w := t.ctx.MeasureText(text).X; w > t.frameMaxWidths[t.currentColumn] {
		t.frameMaxWidths[t.currentColumn] = w
	}

	display := TruncateText(t.ctx, text, col.width-t.ctx.style.ItemSpacing*2)
	t.ctx.AddText(pos.X, pos.Y, display, color)
}

// EndTable draws column borders, handles column resizing and advances
// the cursor past the table.
func (t *Table) EndTable() {
	ctx := t.ctx
	totalHeight := t.rowHeight
	if t.currentRow >= 0 {
		totalHeight += float32(t.currentRow+1) * t.rowHeight
	}
	bottom := t.startY + totalHeight

	x := t.startX
	for i := range t.columns {
		old := t.columns[i].width
		x += old
		if i == len(t.columns)-1 {
			break
		}
		if t.flags&TableFlagsResizable != 0 && t.columns[i].Flags&TableColumnFlagsNoResize == 0 {
			x += t.resizeBorder(i, x, bottom) - old
		}
		if t.flags&TableFlagsBordersInnerV != 0 {
			ctx.DrawList.AddLine(x, t.startY, x, bottom, ctx.style.BorderColor, 1)
		}
	}

	if t.flags&TableFlagsBordersOuterH != 0 {
		ctx.DrawList.AddLine(t.startX, bottom, t.startX+t.width, bottom, ctx.style.BorderColor, 1)
	}

	t.state.MaxContentWidths = t.frameMaxWidths
	SetState(ctx, t.id, t.state)

	ctx.AdvanceCursor(Vec2{X: t.width, Y: totalHeight})
}

// resizeBorder senses the border on the right of column i and returns
// the column's width after any drag.
func (t *Table) resizeBorder(i int, x, bottom float32) float32 {
	ctx := t.ctx
	col := &t.columns[i]
	grip := Rect{X: x - 2, Y: t.startY, W: 4, H: bottom - t.startY}

	resp := ctx.Interact(grip, t.id.WithInt(i), SenseDrag)
	if resp.Hovered || resp.Dragged {
		ctx.SetCursorIcon(CursorResizeHorizontal)
	}
	if resp.Dragged && resp.DragDelta.X != 0 {
		col.width = maxf(col.width+resp.DragDelta.X, maxf(col.MinWidth, minColumnWidth))
		t.state.ColumnWidths[i] = col.width
	}
	return col.width
}

// State returns the table's persisted state.
func (t *Table) State() TableState {
	return t.state
}

// Columns returns the computed column definitions.
func (t *Table) Columns() []TableColumn {
	return t.columns
}

// Width returns the computed width of a column.
func (c TableColumn) Width() float32 {
	return c.width
}
