// Command plot-reduction is a thin CLI wrapper around the polyshell library: load a
// polygon, reduce it, report the before/after vertex counts. Plotting and rendering
// are left to the caller; this binary exists only to exercise the library end to end
// from the command line.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/polyshell/polyshell"
	"github.com/polyshell/polyshell/coord"
	"github.com/polyshell/polyshell/polyline"
	"github.com/polyshell/polyshell/types"
)

type exitCode int

const (
	exitSuccess      exitCode = 0
	exitInvalidArgs  exitCode = 2
	exitRuntimeError exitCode = 1
)

// cliError pairs an error with the exit code it should produce, so main can tell an
// argument mistake (exit 2) apart from a reducer failure (exit 1) after cmd.Run
// unwinds.
type cliError struct {
	code exitCode
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func invalidArgs(format string, a ...any) error {
	return &cliError{code: exitInvalidArgs, err: fmt.Errorf(format, a...)}
}

func runtimeErr(err error) error {
	return &cliError{code: exitRuntimeError, err: err}
}

func main() {
	cmd := &cli.Command{
		Name:        "plot-reduction",
		Usage:       "Reduces a polygon and reports its before/after vertex counts",
		UsageText:   "plot-reduction <path> <mode> <value> <method>",
		HideVersion: true,
		Action:      run,
		Authors:     []any{"https://github.com/polyshell"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		code := exitRuntimeError
		var ce *cliError
		if errors.As(err, &ce) {
			code = ce.code
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(code))
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 4 {
		return invalidArgs("expected 4 arguments: <path> <mode> <value> <method>, got %d", cmd.Args().Len())
	}
	path := cmd.Args().Get(0)

	mode, err := parseMode(cmd.Args().Get(1))
	if err != nil {
		return invalidArgs("%s", err)
	}
	method, err := parseMethod(cmd.Args().Get(3))
	if err != nil {
		return invalidArgs("%s", err)
	}

	params, err := parseParams(mode, cmd.Args().Get(2))
	if err != nil {
		return invalidArgs("%s", err)
	}

	p, err := loadPolygon(path)
	if err != nil {
		return invalidArgs("loading polygon from %s: %s", path, err)
	}

	result, err := polyshell.Reduce(p, mode, params, method)
	if err != nil {
		return runtimeErr(err)
	}

	fmt.Printf(
		"original vertices: %d\nreduced vertices:  %d\nremoved vertices:  %d\naccumulated loss:  %g\n",
		p.Len(), result.Polygon.Len(), result.RemovedCount, result.Loss,
	)
	return nil
}

func parseMode(s string) (types.Mode, error) {
	switch s {
	case "epsilon":
		return types.ModeEpsilon, nil
	case "length":
		return types.ModeLength, nil
	case "auto":
		return types.ModeAuto, nil
	default:
		return 0, fmt.Errorf("unknown mode %q: want epsilon, length or auto", s)
	}
}

func parseMethod(s string) (types.Method, error) {
	switch s {
	case "vw":
		return types.MethodVW, nil
	case "rdp":
		return types.MethodRDP, nil
	case "charshape":
		return types.MethodCharShape, nil
	default:
		return 0, fmt.Errorf("unknown method %q: want vw, rdp or charshape", s)
	}
}

func parseParams(mode types.Mode, value string) (polyshell.Params, error) {
	switch mode {
	case types.ModeEpsilon:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return polyshell.Params{}, fmt.Errorf("value must be a number for epsilon mode: %w", err)
		}
		return polyshell.Params{Epsilon: v}, nil
	case types.ModeLength:
		v, err := strconv.Atoi(value)
		if err != nil {
			return polyshell.Params{}, fmt.Errorf("value must be an integer for length mode: %w", err)
		}
		return polyshell.Params{Length: v}, nil
	default:
		return polyshell.Params{}, nil
	}
}

func loadPolygon(path string) (polyline.Polygon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return polyline.Polygon{}, err
	}
	var verts []coord.Coord
	if err := json.Unmarshal(data, &verts); err != nil {
		return polyline.Polygon{}, err
	}
	return polyline.NewPolygon(verts)
}
