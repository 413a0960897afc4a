package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/kevmo314/go-pvcam"
	"github.com/kevmo314/go-pvcam/internal/cli"
	"github.com/kevmo314/go-pvcam/pkg/config"
	"github.com/kevmo314/go-pvcam/pkg/params"
)

func main() {
	fake := flag.Bool("fake", false, "use the in-memory camera instead of libpvcam")
	accessCheck := flag.Bool("access-check", true, "refuse writes to read-only parameters")

	flag.Parse()

	app := tview.NewApplication()

	logText := tview.NewTextView()
	logText.SetMaxLines(10).SetBorder(true).SetTitle("Log")
	logger := config.LogConfig{Level: "debug"}.Logger(logText)

	lib, err := cli.Library(config.CameraConfig{Fake: *fake, AccessCheck: *accessCheck}, logger)
	if err != nil {
		panic(err)
	}
	defer lib.Uninit()

	names, err := lib.ListCameras()
	if err != nil {
		panic(err)
	}

	cameras := tview.NewList().ShowSecondaryText(false)
	cameras.SetBorder(true).SetTitle("Cameras")

	parameters := tview.NewList()
	parameters.SetBorder(true).SetTitle("Parameters")

	options := tview.NewList().ShowSecondaryText(false)
	options.SetBorder(true).SetTitle("Options")

	details := tview.NewTextView().SetDynamicColors(false)
	details.SetBorder(true).SetTitle("Details")

	secondColumn := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(options, 0, 1, false).
		AddItem(details, 0, 1, false)

	var open *pvcam.Camera

	var refresh func()
	refresh = func() {
		current := parameters.GetCurrentItem()
		parameters.Clear()
		for _, p := range pvcam.Parameters() {
			parameters.AddItem(p.Name(), describe(open, p), 0, func() {
				showDetails(details, open, p)
				edit(app, open, p, options, secondColumn, logger, func() {
					refresh()
					app.SetFocus(parameters)
				})
			})
		}
		parameters.SetCurrentItem(current)
	}

	for _, name := range names {
		cameras.AddItem(name, "", 0, func() {
			if open != nil {
				if err := open.Close(); err != nil {
					logger.Error("close failed", "camera", open.Name(), "err", err)
				}
			}
			cam, err := lib.Open(name)
			if err != nil {
				logger.Error("open failed", "camera", name, "err", err)
				return
			}
			open = cam
			logger.Info("opened", "camera", name, "session", cam.Session())
			refresh()
			app.SetFocus(parameters)
		})
	}
	defer func() {
		if open != nil {
			open.Close()
		}
	}()

	flex := tview.NewFlex().
		AddItem(cameras, 0, 1, true).
		AddItem(parameters, 0, 2, false).
		AddItem(secondColumn, 0, 2, false)

	if err := app.SetRoot(tview.NewFlex().SetDirection(tview.FlexRow).AddItem(flex, 0, 1, true).AddItem(logText, 10, 0, false), true).Run(); err != nil {
		panic(err)
	}
}

func describe(cam *pvcam.Camera, p pvcam.Parameter) string {
	v, err := cam.Get(p)
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	return fmt.Sprintf("%s (%s)", v, v.Kind())
}

func showDetails(details *tview.TextView, cam *pvcam.Camera, p pvcam.Parameter) {
	details.Clear()
	fmt.Fprintf(details, "%s\n", p)
	if acc, err := cam.Access(p); err == nil {
		fmt.Fprintf(details, "access: %s\n", acc)
	}
	if typ, err := cam.ResolveType(p); err == nil {
		fmt.Fprintf(details, "type: %s\n", typ)
	}
	for _, attr := range []params.Attribute{params.AttrDefault, params.AttrMin, params.AttrMax, params.AttrIncrement} {
		if v, err := cam.GetAttribute(p, attr); err == nil {
			fmt.Fprintf(details, "%s: %s\n", attr, v)
		}
	}
}

// edit offers the options of an enumeration, or an input field for an
// integer. done runs once the value is written or editing is abandoned.
func edit(app *tview.Application, cam *pvcam.Camera, p pvcam.Parameter, options *tview.List, column *tview.Flex, logger *slog.Logger, done func()) {
	v, err := cam.Get(p)
	if err != nil {
		logger.Error("get failed", "param", p.Name(), "err", err)
		return
	}
	switch v := v.(type) {
	case pvcam.Enum:
		options.Clear()
		for _, o := range v.Options {
			options.AddItem(o.String(), "", 0, func() {
				if err := cam.Set(p, pvcam.Enum{Index: o.Index, Options: v.Options}); err != nil {
					logger.Error("set failed", "param", p.Name(), "err", err)
				}
				options.Clear()
				done()
			})
		}
		options.SetCurrentItem(int(v.Index))
		app.SetFocus(options)
	case pvcam.Int:
		input := tview.NewInputField()
		input.SetLabel(fmt.Sprintf("%s (now %d): ", p.Name(), v)).
			SetFieldWidth(12).
			SetAcceptanceFunc(tview.InputFieldInteger).
			SetDoneFunc(func(key tcell.Key) {
				defer func() {
					column.RemoveItem(input)
					done()
				}()
				if key != tcell.KeyEnter {
					return
				}
				n, err := strconv.ParseInt(input.GetText(), 10, 64)
				if err != nil {
					logger.Error("failed parsing value", "err", err)
					return
				}
				if err := cam.Set(p, pvcam.Int(n)); err != nil {
					logger.Error("set failed", "param", p.Name(), "err", err)
				}
			})
		column.AddItem(input, 1, 0, false)
		app.SetFocus(input)
	default:
		logger.Info("not editable", "param", p.Name(), "kind", v.Kind())
	}
}
