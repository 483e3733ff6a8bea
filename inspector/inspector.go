// Package inspector is a read-only terminal browser over a resolved
// program's line table: index, header, payload, and any label pointing
// at that line. It never decodes or executes an instruction's semantics
// — it renders exactly the bytes the text envelopes already produce, in
// a scrollable table instead of a flat stream.
package inspector

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/yonder-tools/geckoasm/codegen"
	"github.com/yonder-tools/geckoasm/pass"
)

// Line is one captured header/payload pair, plus any label names whose
// definition resolves to this line index.
type Line struct {
	Index   int
	Header  uint32
	Payload uint32
	Labels  []string
}

// recordingSink implements sink.Sink by appending every code line to a
// slice instead of writing bytes anywhere, so a Program can be run under
// any ABI and the resulting table handed to the TUI. String and assembly payloads are folded into synthetic
// Lines so the table still shows one row per emitted word.
type recordingSink struct {
	lines []Line
}

func (r *recordingSink) PrintCodeLine(header, payload uint32) error {
	r.lines = append(r.lines, Line{Index: len(r.lines), Header: header, Payload: payload})
	return nil
}

func (r *recordingSink) PrintStringPayload(data []byte) error {
	for i := 0; i+4 <= len(data); i += 4 {
		word := uint32(data[i])<<24 | uint32(data[i+1])<<16 | uint32(data[i+2])<<8 | uint32(data[i+3])
		r.lines = append(r.lines, Line{Index: len(r.lines), Header: 0, Payload: word})
	}
	return nil
}

func (r *recordingSink) PrintAsmPayload(words []uint32) error {
	for _, w := range words {
		r.lines = append(r.lines, Line{Index: len(r.lines), Header: 0, Payload: w})
	}
	return nil
}

func (r *recordingSink) Close() error { return nil }

// Capture runs program through every pass of abi and returns the line
// table recorded on the emit pass,
// with label names attached to the lines they define.
func Capture(abi pass.ABI, program func(e *codegen.Emitter) error) ([]Line, error) {
	ctx := pass.NewContext(abi)
	rs := &recordingSink{}
	e := codegen.NewEmitter(rs, ctx)

	if err := pass.Run(ctx, func(*pass.Context) error {
		rs.lines = nil
		return program(e)
	}); err != nil {
		return nil, err
	}

	labelLines := map[uint32][]string{}
	for name, line := range ctx.Labels() {
		labelLines[line] = append(labelLines[line], name)
	}
	for i := range rs.lines {
		rs.lines[i].Labels = labelLines[uint32(i)]
	}
	return rs.lines, nil
}

// Run opens a tview.Application over lines: arrow keys and Page Up/Down
// scroll, '/' filters rows by a hex substring, and 'q' or Ctrl-C quits.
func Run(lines []Line) error {
	app := tview.NewApplication()

	table := tview.NewTable().SetBorders(false).SetSelectable(true, false)
	table.SetBorder(true).SetTitle(" geckoasm inspect ")

	header := []string{"Line", "Header", "Payload", "Labels"}
	for col, h := range header {
		table.SetCell(0, col, tview.NewTableCell(h).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false))
	}

	populate(table, lines)

	filter := tview.NewInputField().SetLabel("/ filter: ")
	filter.SetChangedFunc(func(text string) {
		populate(table, filterLines(lines, text))
	})

	pages := tview.NewPages()
	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(table, 0, 1, true).
		AddItem(filter, 1, 0, false)
	pages.AddPage("main", layout, true, true)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyCtrlC:
			app.Stop()
			return nil
		case event.Rune() == 'q':
			app.Stop()
			return nil
		case event.Rune() == '/':
			app.SetFocus(filter)
			return nil
		case event.Key() == tcell.KeyEsc:
			app.SetFocus(table)
			return nil
		}
		return event
	})

	return app.SetRoot(pages, true).SetFocus(table).Run()
}

func populate(table *tview.Table, lines []Line) {
	for row := table.GetRowCount() - 1; row > 0; row-- {
		table.RemoveRow(row)
	}
	for i, l := range lines {
		table.SetCell(i+1, 0, tview.NewTableCell(fmt.Sprintf("%d", l.Index)))
		table.SetCell(i+1, 1, tview.NewTableCell(fmt.Sprintf("%08X", l.Header)))
		table.SetCell(i+1, 2, tview.NewTableCell(fmt.Sprintf("%08X", l.Payload)))
		table.SetCell(i+1, 3, tview.NewTableCell(strings.Join(l.Labels, ", ")))
	}
}

func filterLines(lines []Line, needle string) []Line {
	if needle == "" {
		return lines
	}
	needle = strings.ToUpper(needle)
	var out []Line
	for _, l := range lines {
		h := fmt.Sprintf("%08X", l.Header)
		p := fmt.Sprintf("%08X", l.Payload)
		if strings.Contains(h, needle) || strings.Contains(p, needle) {
			out = append(out, l)
		}
	}
	return out
}
