package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/pavanmanishd/dynbuf"
)

const lineTemplate = `got: "%s"`

var (
	noColorFlag = cli.BoolFlag{Name: "no-color", Usage: "disable colored output"}
	verboseFlag = cli.IntFlag{Name: "verbosity", Usage: "glog verbosity level"}
	stderrFlag  = cli.BoolFlag{Name: "logtostderr", Usage: "log to standard error instead of files"}

	fcyan  = color.New(color.FgHiCyan).SprintFunc()
	fgreen = color.New(color.FgHiGreen).SprintFunc()
)

func newApp(w io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "dynbuf"
	app.Usage = "exercise dynamic buffers and vectors"
	app.Version = "0.1.0"
	app.Writer = w
	app.ErrWriter = w
	app.Flags = []cli.Flag{noColorFlag, verboseFlag, stderrFlag}
	app.Before = before
	app.Commands = []cli.Command{
		{
			Name:      "cat",
			Usage:     "print a file read in one go",
			ArgsUsage: "FILE",
			Action:    catHandler,
		},
		{
			Name:      "lines",
			Usage:     "echo each line of a file through a format template",
			ArgsUsage: "FILE",
			Action:    linesHandler,
		},
		{
			Name:   "vec",
			Usage:  "walk a vector through appends and pops",
			Action: vecHandler,
		},
	}
	return app
}

// before forwards logging flags to glog, which owns the standard flag set.
func before(c *cli.Context) error {
	// Only ever switch color off; fatih/color already disables it when
	// the output is not a terminal.
	if c.Bool(noColorFlag.Name) {
		color.NoColor = true
	}
	if c.IsSet(verboseFlag.Name) {
		if err := flag.Set("v", strconv.Itoa(c.Int(verboseFlag.Name))); err != nil {
			return err
		}
	}
	if c.Bool(stderrFlag.Name) {
		if err := flag.Set("logtostderr", "true"); err != nil {
			return err
		}
	}
	return nil
}

func fileArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", errors.Errorf("%s: expected exactly one FILE argument, got %d", c.Command.Name, c.NArg())
	}
	return c.Args().First(), nil
}

func catHandler(c *cli.Context) error {
	path, err := fileArg(c)
	if err != nil {
		return err
	}
	b, err := dynbuf.ReadFile(path)
	if err != nil {
		return err
	}
	defer b.Release()
	_, err = b.WriteTo(c.App.Writer)
	return err
}

func linesHandler(c *cli.Context) error {
	path, err := fileArg(c)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "lines")
	}
	defer f.Close()

	echo := dynbuf.New()
	defer echo.Release()

	var line dynbuf.Buffer
	defer func() {
		if line.Valid() {
			line.Release()
		}
	}()

	// ReadLine never reads ahead, so buffering is left to the caller.
	r := bufio.NewReader(f)
	for line.ReadLine(r) {
		echo.Format(lineTemplate, &line)
		fmt.Fprintln(c.App.Writer, fcyan(echo.String()))
	}
	return nil
}

func vecHandler(c *cli.Context) error {
	w := c.App.Writer
	step := func(what string, v *dynbuf.Vec[int]) {
		fmt.Fprintf(w, "%-24s %v len=%d cap=%d\n", what, fgreen(fmt.Sprint(v.Items())), v.Len(), v.Cap())
	}

	v := dynbuf.VecWithCapacity[int](5)
	defer v.Release()
	for _, x := range []int{5, 3, 1, 2, 4} {
		v.Append(x)
	}
	step("append 5 3 1 2 4", v)

	x := v.Pop()
	step(fmt.Sprintf("pop -> %d", x), v)

	x = v.PopAt(1)
	step(fmt.Sprintf("pop at 1 -> %d", x), v)

	other := dynbuf.VecFromSlice([]int{9, 13, 5})
	defer other.Release()
	v.AppendVec(other)
	step("append vec [9 13 5]", v)

	v.AppendSlice(other.Items()[1:3])
	step("append slice [13 5]", v)
	return nil
}
