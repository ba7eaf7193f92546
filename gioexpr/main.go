package main

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/clipboard"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"exprcalc/calc"
)

var (
	digitColor       = color.NRGBA{90, 90, 90, 255}
	specialColor     = color.NRGBA{122, 90, 90, 255}
	opColor          = color.NRGBA{90, 103, 122, 255}
	equalsColor      = color.NRGBA{90, 122, 95, 255}
	backgroundColor  = color.NRGBA{50, 50, 50, 255}
	resultColor      = color.NRGBA{255, 255, 255, 255}
	resultBackground = color.NRGBA{35, 35, 35, 255}

	designWidth  = unit.Dp(270)
	designHeight = unit.Dp(345)
	controlInset = unit.Dp(6)
	cornerRadius = unit.Dp(3.5)
)

// calcUI is the user interface of the calculator. It owns the expression
// buffer and renders its text after every key.
type calcUI struct {
	buf     *calc.Buffer
	theme   *material.Theme
	buttons [5][4]*button

	cornerRadius int
	gridSpacing  int
}

func newUI(theme *material.Theme) *calcUI {
	ui := &calcUI{buf: calc.New(), theme: theme}
	ui.buttons = [5][4]*button{
		{ui.key("C", calc.Clear, specialColor), ui.key("DEL", calc.Delete, specialColor), ui.key("/", calc.Operator('/'), opColor), ui.key("*", calc.Operator('*'), opColor)},
		{ui.digit('7'), ui.digit('8'), ui.digit('9'), ui.key("-", calc.Operator('-'), opColor)},
		{ui.digit('4'), ui.digit('5'), ui.digit('6'), ui.key("+", calc.Operator('+'), opColor)},
		{ui.digit('1'), ui.digit('2'), ui.digit('3'), ui.key("=", calc.Equals, equalsColor)},
		{ui.digit('0'), nil, ui.key(".", calc.Decimal, digitColor), nil},
	}
	return ui
}

// digit creates a digit button.
func (ui *calcUI) digit(ch byte) *button {
	return ui.key(string(ch), calc.Digit(ch), digitColor)
}

// key creates a button that feeds one token into the buffer.
func (ui *calcUI) key(text string, tok calc.Token, color color.NRGBA) *button {
	b := newButton(text, color)
	b.action = func() { ui.buf.Apply(tok) }
	return b
}

// Layout draws the UI.
func (ui *calcUI) Layout(gtx layout.Context) layout.Dimensions {
	// Adapt design for screen size.
	scaleFactor := float32(gtx.Constraints.Max.X) / float32(gtx.Dp(designWidth))
	ui.cornerRadius = gtx.Dp(cornerRadius * unit.Dp(scaleFactor))
	ui.gridSpacing = gtx.Dp(controlInset * unit.Dp(scaleFactor))

	// Handle key events.
	ui.layoutInput(gtx)

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		flex := layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceStart}
		return flex.Layout(gtx,
			layout.Flexed(20, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutDisplay)
			}),
			layout.Flexed(70, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutButtons)
			}),
		)
	})
}

func (ui *calcUI) layoutDisplay(gtx layout.Context) layout.Dimensions {
	rect := image.Rectangle{Max: gtx.Constraints.Max}
	rr := clip.UniformRRect(rect, ui.cornerRadius)
	paint.FillShape(gtx.Ops, resultBackground, rr.Op(gtx.Ops))

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, ui.layoutDisplayText)
}

func (ui *calcUI) layoutDisplayText(gtx layout.Context) layout.Dimensions {
	// Scale font based on height.
	fontSizePx := float32(gtx.Constraints.Max.Y) / 1.1
	fontSizeSp := unit.Sp(fontSizePx / gtx.Metric.PxPerSp)

	l := material.Label(ui.theme, fontSizeSp, ui.buf.Text())
	l.Color = resultColor
	l.Alignment = text.End
	return shrinkToFit(gtx, l.Layout)
}

func (ui *calcUI) layoutButtons(gtx layout.Context) layout.Dimensions {
	g := grid{
		rows:    len(ui.buttons),
		cols:    len(ui.buttons[0]),
		spacing: ui.gridSpacing,
	}
	return g.layout(gtx, func(row, col int, gtx layout.Context) layout.Dimensions {
		if b := ui.buttons[row][col]; b != nil {
			return ui.layoutButton(gtx, b)
		}
		return layout.Dimensions{}
	})
}

func (ui *calcUI) layoutButton(gtx layout.Context, b *button) layout.Dimensions {
	if b.clicker.Clicked() && b.action != nil {
		b.action()
	}

	return b.clicker.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		textSizePx := float32(gtx.Constraints.Max.Y) / 2.2
		textSizeSp := unit.Sp(textSizePx / gtx.Metric.PxPerSp)

		style := material.Button(ui.theme, &b.clicker, b.text)
		style.Background = b.color
		style.Inset = layout.Inset{}
		style.TextSize = textSizeSp
		style.CornerRadius = unit.Dp(float32(ui.cornerRadius) / gtx.Metric.PxPerDp)
		return style.Layout(gtx)
	})
}

// layoutInput registers the global key handler.
func (ui *calcUI) layoutInput(gtx layout.Context) {
	// Register handler for key events.
	input := key.InputOp{
		Tag:  ui,
		Hint: key.HintNumeric,
		Keys: "Short-[C,V]|(Shift)-[0,1,2,3,4,5,6,7,8,9,.,+,*,/,=,⌤,⏎,⌫,⌦,⎋]|(Shift)-[-]",
	}
	input.Add(gtx.Ops)

	// Request keyboard focus. This is required to make the Return key work.
	key.FocusOp{Tag: ui}.Add(gtx.Ops)

	for _, ev := range gtx.Queue.Events(ui) {
		switch ev := ev.(type) {
		case key.Event:
			switch {
			case isCopy(ev):
				op := clipboard.WriteOp{Text: ui.buf.Text()}
				op.Add(gtx.Ops)
			case isPaste(ev):
				op := clipboard.ReadOp{Tag: ui}
				op.Add(gtx.Ops)
			default:
				ui.handleKey(ev)
			}

		case clipboard.Event:
			ui.buf.SetExpr(ev.Text)
		}
	}
}

func isCopy(e key.Event) bool {
	return e.Name == "C" && e.Modifiers.Contain(key.ModShortcut)
}

func isPaste(e key.Event) bool {
	return e.Name == "V" && e.Modifiers.Contain(key.ModShortcut)
}

// handleKey handles a key event.
func (ui *calcUI) handleKey(e key.Event) {
	if e.State == key.Release {
		return
	}

	switch e.Name {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		ui.buf.Apply(calc.Digit(e.Name[0]))
	case ".":
		ui.buf.Apply(calc.Decimal)
	case "+", "-", "*", "/":
		ui.buf.Apply(calc.Operator(e.Name[0]))
	case "=", key.NameEnter, key.NameReturn:
		ui.buf.Apply(calc.Equals)
	case key.NameDeleteBackward, key.NameDeleteForward:
		ui.buf.Apply(calc.Delete)
	case key.NameEscape:
		ui.buf.Apply(calc.Clear)
	}
}

// button is a clickable button.
type button struct {
	text   string
	action func()

	color   color.NRGBA
	clicker widget.Clickable
}

func newButton(text string, color color.NRGBA) *button {
	return &button{text: text, color: color}
}

func main() {
	var (
		size     = app.Size(designWidth, designHeight)
		statusBg = app.StatusColor(backgroundColor)
		sysBg    = app.NavigationColor(backgroundColor)
		title    = app.Title("ExprCalc")
		portrait = app.PortraitOrientation.Option()
	)
	go func() {
		w := app.NewWindow(statusBg, sysBg, size, title, portrait)
		w.Option(app.MinSize(designWidth, designHeight))

		if err := loop(w); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

// loop is the main loop of the app.
func loop(w *app.Window) error {
	var (
		th  = material.NewTheme(gofont.Collection())
		ui  = newUI(th)
		ops op.Ops
	)

	for e := range w.Events() {
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			paint.Fill(gtx.Ops, backgroundColor)
			ui.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
	return nil
}
