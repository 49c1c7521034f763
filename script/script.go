package script

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/ChenLight-s/qcad"
)

// Runner executes Lua drawing scripts against a drawing session.
type Runner struct {
	session *qcad.Script
}

// NewRunner creates a runner for the given drawing session.
func NewRunner(session *qcad.Script) *Runner {
	return &Runner{session: session}
}

// Run executes the Lua source. The context cancels long-running scripts.
func (r *Runner) Run(ctx context.Context, source string) error {
	L := lua.NewState()
	defer L.Close()
	L.SetContext(ctx)

	r.register(L)

	qcad.Logger().Info("running drawing script", slog.Int("bytes", len(source)))
	if err := L.DoString(source); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// RunFile executes the Lua script at the given path.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return r.Run(ctx, string(source))
}

// register installs the drawing globals into the interpreter.
func (r *Runner) register(L *lua.LState) {
	funcs := map[string]lua.LGFunction{
		"addPoint":         r.luaAddPoint,
		"addLine":          r.luaAddLine,
		"addArc":           r.luaAddArc,
		"addCircle":        r.luaAddCircle,
		"addPolyline":      r.luaAddPolyline,
		"addSimpleText":    r.luaAddSimpleText,
		"startTransaction": r.luaStartTransaction,
		"endTransaction":   r.luaEndTransaction,
		"addLayer":         r.luaAddLayer,
		"setLayer":         r.luaSetLayer,
	}
	for name, fn := range funcs {
		L.SetGlobal(name, L.NewFunction(fn))
	}
}

// pushEntity returns the entity id to the script. Entities queued inside
// an open transaction have no id yet and push 0.
func pushEntity(L *lua.LState, e *qcad.Entity, err error) int {
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LNumber(e.ID))
	return 1
}

func (r *Runner) luaAddPoint(L *lua.LState) int {
	x := float64(L.CheckNumber(1))
	y := float64(L.CheckNumber(2))
	e, err := r.session.AddPoint(x, y)
	return pushEntity(L, e, err)
}

func (r *Runner) luaAddLine(L *lua.LState) int {
	x1 := float64(L.CheckNumber(1))
	y1 := float64(L.CheckNumber(2))
	x2 := float64(L.CheckNumber(3))
	y2 := float64(L.CheckNumber(4))
	e, err := r.session.AddLine(x1, y1, x2, y2)
	return pushEntity(L, e, err)
}

func (r *Runner) luaAddArc(L *lua.LState) int {
	cx := float64(L.CheckNumber(1))
	cy := float64(L.CheckNumber(2))
	radius := float64(L.CheckNumber(3))
	start := float64(L.CheckNumber(4))
	end := float64(L.CheckNumber(5))
	reversed := L.OptBool(6, false)
	e, err := r.session.AddArc(cx, cy, radius, start, end, reversed)
	return pushEntity(L, e, err)
}

func (r *Runner) luaAddCircle(L *lua.LState) int {
	cx := float64(L.CheckNumber(1))
	cy := float64(L.CheckNumber(2))
	radius := float64(L.CheckNumber(3))
	e, err := r.session.AddCircle(cx, cy, radius)
	return pushEntity(L, e, err)
}

// luaAddPolyline accepts a table of points, each either {x, y} positional
// or {x=..., y=...} named, plus an optional closed flag (default false).
func (r *Runner) luaAddPolyline(L *lua.LState) int {
	tbl := L.CheckTable(1)
	closed := L.OptBool(2, false)

	points := make([]qcad.Vec, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		entry, ok := tbl.RawGetInt(i).(*lua.LTable)
		if !ok {
			L.ArgError(1, fmt.Sprintf("point %d is not a table", i))
			return 0
		}
		v, err := tableToVec(entry)
		if err != nil {
			L.ArgError(1, fmt.Sprintf("point %d: %v", i, err))
			return 0
		}
		points = append(points, v)
	}

	var opts []qcad.PolylineOption
	if closed {
		opts = append(opts, qcad.WithClosed())
	}
	e, err := r.session.AddPolyline(points, opts...)
	return pushEntity(L, e, err)
}

// tableToVec reads a point from either {x=..., y=...} or {x, y} form.
func tableToVec(tbl *lua.LTable) (qcad.Vec, error) {
	if x, ok := tbl.RawGetString("x").(lua.LNumber); ok {
		y, ok := tbl.RawGetString("y").(lua.LNumber)
		if !ok {
			return qcad.Vec{}, fmt.Errorf("has x but no y")
		}
		return qcad.V(float64(x), float64(y)), nil
	}

	x, ok := tbl.RawGetInt(1).(lua.LNumber)
	if !ok {
		return qcad.Vec{}, fmt.Errorf("missing x coordinate")
	}
	y, ok := tbl.RawGetInt(2).(lua.LNumber)
	if !ok {
		return qcad.Vec{}, fmt.Errorf("missing y coordinate")
	}
	return qcad.V(float64(x), float64(y)), nil
}

// luaAddSimpleText implements
//
//	addSimpleText(text, x, y [, height, angle, font, valign, halign, bold, italic])
//
// with the classic defaults for every trailing argument.
func (r *Runner) luaAddSimpleText(L *lua.LState) int {
	value := L.CheckString(1)
	x := float64(L.CheckNumber(2))
	y := float64(L.CheckNumber(3))

	height := float64(L.OptNumber(4, lua.LNumber(qcad.DefaultTextHeight)))
	angle := float64(L.OptNumber(5, lua.LNumber(qcad.DefaultTextAngle)))
	font := L.OptString(6, qcad.DefaultFont)

	valign, err := parseVAlign(L.OptString(7, "top"))
	if err != nil {
		L.ArgError(7, err.Error())
		return 0
	}
	halign, err := parseHAlign(L.OptString(8, "left"))
	if err != nil {
		L.ArgError(8, err.Error())
		return 0
	}

	opts := []qcad.TextOption{
		qcad.WithTextHeight(height),
		qcad.WithTextAngle(angle),
		qcad.WithFont(font),
		qcad.WithAlignment(valign, halign),
	}
	if L.OptBool(9, false) {
		opts = append(opts, qcad.WithBold())
	}
	if L.OptBool(10, false) {
		opts = append(opts, qcad.WithItalic())
	}

	e, err := r.session.AddSimpleText(value, x, y, opts...)
	return pushEntity(L, e, err)
}

func parseVAlign(s string) (qcad.VAlign, error) {
	switch s {
	case "top":
		return qcad.VAlignTop, nil
	case "middle":
		return qcad.VAlignMiddle, nil
	case "base":
		return qcad.VAlignBase, nil
	case "bottom":
		return qcad.VAlignBottom, nil
	}
	return 0, fmt.Errorf("invalid vertical alignment %q", s)
}

func parseHAlign(s string) (qcad.HAlign, error) {
	switch s {
	case "left":
		return qcad.HAlignLeft, nil
	case "center":
		return qcad.HAlignCenter, nil
	case "right":
		return qcad.HAlignRight, nil
	}
	return 0, fmt.Errorf("invalid horizontal alignment %q", s)
}

func (r *Runner) luaStartTransaction(L *lua.LState) int {
	r.session.StartTransaction()
	return 0
}

func (r *Runner) luaEndTransaction(L *lua.LState) int {
	if err := r.session.EndTransaction(); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (r *Runner) luaAddLayer(L *lua.LState) int {
	name := L.CheckString(1)
	doc := r.session.Document()
	if doc == nil {
		L.RaiseError("%v", qcad.ErrNoDocument)
		return 0
	}
	if err := doc.AddLayer(qcad.NewLayer(name)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (r *Runner) luaSetLayer(L *lua.LState) int {
	name := L.CheckString(1)
	doc := r.session.Document()
	if doc == nil {
		L.RaiseError("%v", qcad.ErrNoDocument)
		return 0
	}
	if err := doc.SetCurrentLayer(name); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}
