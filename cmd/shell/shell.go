package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/kevmo314/go-pvcam"
	"github.com/kevmo314/go-pvcam/pkg/params"
	"github.com/kevmo314/go-pvcam/pkg/preset"
	"github.com/kevmo314/go-pvcam/pkg/snapshot"
)

// Shell runs one command per line against a library and at most one open
// camera.
type Shell struct {
	lib *pvcam.Library
	cam *pvcam.Camera
	out io.Writer
}

var valueAttributes = []params.Attribute{
	params.AttrCurrent,
	params.AttrDefault,
	params.AttrMin,
	params.AttrMax,
	params.AttrIncrement,
}

func completer() *readline.PrefixCompleter {
	var names []readline.PrefixCompleterInterface
	for _, p := range pvcam.Parameters() {
		names = append(names, readline.PcItem(p.Name()))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("list"),
		readline.PcItem("open"),
		readline.PcItem("close"),
		readline.PcItem("params"),
		readline.PcItem("get", names...),
		readline.PcItem("set", names...),
		readline.PcItem("access", names...),
		readline.PcItem("options", names...),
		readline.PcItem("type", names...),
		readline.PcItem("snapshot"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// Exec runs line and reports whether the shell should keep reading.
func (s *Shell) Exec(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	var err error
	switch cmd {
	case "help", "?":
		s.printHelp()
	case "list", "ls":
		err = s.cmdList()
	case "open":
		err = s.cmdOpen(args)
	case "close":
		err = s.closeCamera()
	case "params":
		s.cmdParams()
	case "get", "g":
		err = s.cmdGet(args)
	case "set", "s":
		err = s.cmdSet(args)
	case "access":
		err = s.cmdAccess(args)
	case "options", "enum":
		err = s.cmdOptions(args)
	case "type":
		err = s.cmdType(args)
	case "snapshot":
		err = s.cmdSnapshot(args)
	case "quit", "exit", "q":
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Commands:
  list                      - List cameras
  open [name]               - Open a camera (first one if no name)
  close                     - Close the open camera
  params                    - List known parameters
  get <param> [attr]        - Read a value (attr: current, default, min, max, increment)
  set <param> <value>       - Write a value (enumerations take a name or value)
  access <param>            - Show access mode
  options <param>           - List enumeration options
  type <param>              - Show value type
  snapshot <path> [format]  - Save all parameters (format: cbor, yaml)
  quit                      - Exit`)
}

func (s *Shell) camera() (*pvcam.Camera, error) {
	if s.cam == nil {
		return nil, fmt.Errorf("no camera open")
	}
	return s.cam, nil
}

func (s *Shell) closeCamera() error {
	if s.cam == nil {
		return nil
	}
	err := s.cam.Close()
	s.cam = nil
	return err
}

func (s *Shell) cmdList() error {
	names, err := s.lib.ListCameras()
	if err != nil {
		return err
	}
	for i, name := range names {
		fmt.Fprintf(s.out, "  %d: %s\n", i, name)
	}
	return nil
}

func (s *Shell) cmdOpen(args []string) error {
	if err := s.closeCamera(); err != nil {
		return err
	}
	name := strings.Join(args, " ")
	if name == "" {
		names, err := s.lib.ListCameras()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return fmt.Errorf("no cameras found")
		}
		name = names[0]
	}
	cam, err := s.lib.Open(name)
	if err != nil {
		return err
	}
	s.cam = cam
	fmt.Fprintf(s.out, "Opened %s (handle %d)\n", cam.Name(), cam.Handle())
	return nil
}

func (s *Shell) cmdParams() {
	for _, p := range pvcam.Parameters() {
		fmt.Fprintf(s.out, "  %s\n", p)
	}
}

func parseParam(args []string, min int) (pvcam.Parameter, error) {
	if len(args) < min {
		return 0, fmt.Errorf("missing parameter name")
	}
	return pvcam.ParseParameter(args[0])
}

func parseAttribute(name string) (params.Attribute, error) {
	for _, a := range valueAttributes {
		if strings.EqualFold(a.String(), name) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown attribute %q", name)
}

func (s *Shell) cmdGet(args []string) error {
	cam, err := s.camera()
	if err != nil {
		return err
	}
	p, err := parseParam(args, 1)
	if err != nil {
		return err
	}
	attr := params.AttrCurrent
	if len(args) > 1 {
		if attr, err = parseAttribute(args[1]); err != nil {
			return err
		}
	}
	v, err := cam.GetAttribute(p, attr)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s %s = %s\n", p.Name(), attr, v)
	return nil
}

func (s *Shell) cmdSet(args []string) error {
	cam, err := s.camera()
	if err != nil {
		return err
	}
	p, err := parseParam(args, 2)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("missing value")
	}
	if err := preset.ApplyOne(cam, p, strings.Join(args[1:], " ")); err != nil {
		return err
	}
	v, err := cam.Get(p)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s = %s\n", p.Name(), v)
	return nil
}

func (s *Shell) cmdAccess(args []string) error {
	cam, err := s.camera()
	if err != nil {
		return err
	}
	p, err := parseParam(args, 1)
	if err != nil {
		return err
	}
	acc, err := cam.Access(p)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s: %s\n", p.Name(), acc)
	return nil
}

func (s *Shell) cmdOptions(args []string) error {
	cam, err := s.camera()
	if err != nil {
		return err
	}
	p, err := parseParam(args, 1)
	if err != nil {
		return err
	}
	options, err := cam.Options(p)
	if err != nil {
		return err
	}
	for _, o := range options {
		fmt.Fprintf(s.out, "  %s\n", o)
	}
	return nil
}

func (s *Shell) cmdType(args []string) error {
	cam, err := s.camera()
	if err != nil {
		return err
	}
	p, err := parseParam(args, 1)
	if err != nil {
		return err
	}
	typ, err := cam.ResolveType(p)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s: %s\n", p.Name(), typ)
	return nil
}

func (s *Shell) cmdSnapshot(args []string) error {
	cam, err := s.camera()
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("missing path")
	}
	format := snapshot.FormatCBOR
	if len(args) > 1 {
		format = strings.ToLower(args[1])
	}
	snap, err := snapshot.Take(cam, pvcam.Parameters())
	if err != nil {
		return err
	}
	if err := snapshot.WriteFile(args[0], format, snap); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Wrote %d parameters to %s\n", len(snap.Entries), args[0])
	return nil
}
