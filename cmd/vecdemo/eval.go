package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/geometry"
	"github.com/hupe1980/geometry/internal/logging"
)

// vector is the method set shared by the float64 instantiations of
// Vec2, Vec3 and Vec4.
type vector[V any] interface {
	Add(V) V
	Sub(V) V
	Mul(V) V
	Scale(float64) V
	Dot(V) float64
	Magnitude() float64
	Normalized() V
	Project(V) V
	Dim() int
	Text(...geometry.FormatOption) string
}

// operandKind describes the second argument an operation takes.
type operandKind int

const (
	operandNone operandKind = iota
	operandVector
	operandScalar
)

var ops = map[string]operandKind{
	"add":       operandVector,
	"sub":       operandVector,
	"mul":       operandVector,
	"dot":       operandVector,
	"cross":     operandVector,
	"project":   operandVector,
	"scale":     operandScalar,
	"magnitude": operandNone,
	"normalize": operandNone,
}

func evaluate(ctx context.Context, logger *logging.Logger, op string, args []string, cfg config) (string, error) {
	kind, ok := ops[op]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}

	if kind != operandNone && len(args) < 2 {
		return "", ErrMissingOperand
	}

	a, err := parseComponents(args[0])
	if err != nil {
		return "", err
	}

	var (
		b []float64
		s float64
	)

	switch kind {
	case operandVector:
		if b, err = parseComponents(args[1]); err != nil {
			return "", err
		}
	case operandScalar:
		if s, err = parseScalar(args[1]); err != nil {
			return "", err
		}
	}

	var res string

	switch len(a) {
	case geometry.Dim2:
		res, err = evalDim(op, kind, a, b, s, geometry.Vec2FromSlice[float64], cfg)
	case geometry.Dim3:
		res, err = evalDim(op, kind, a, b, s, geometry.Vec3FromSlice[float64], cfg)
	case geometry.Dim4:
		res, err = evalDim(op, kind, a, b, s, geometry.Vec4FromSlice[float64], cfg)
	default:
		err = fmt.Errorf("%w: %d components", ErrUnsupportedDimension, len(a))
	}

	logger.WithOp(op).WithDimension(len(a)).LogOp(ctx, res, err)

	return res, err
}

func evalDim[V vector[V]](op string, kind operandKind, ac, bc []float64, s float64,
	from func([]float64) (V, error), cfg config) (string, error) {
	a, err := from(ac)
	if err != nil {
		return "", err
	}

	var b V
	if kind == operandVector {
		if b, err = from(bc); err != nil {
			return "", fmt.Errorf("second operand: %w", err)
		}
	}

	opts := cfg.formatOptions()

	switch op {
	case "add":
		return a.Add(b).Text(opts...), nil
	case "sub":
		return a.Sub(b).Text(opts...), nil
	case "mul":
		return a.Mul(b).Text(opts...), nil
	case "scale":
		return a.Scale(s).Text(opts...), nil
	case "dot":
		return fmt.Sprintf(cfg.verb(), a.Dot(b)), nil
	case "magnitude":
		return fmt.Sprintf(cfg.verb(), a.Magnitude()), nil
	case "normalize":
		return a.Normalized().Text(opts...), nil
	case "project":
		return a.Project(b).Text(opts...), nil
	case "cross":
		a3, ok := any(a).(geometry.Vector3)
		if !ok {
			return "", fmt.Errorf("%w: cross requires %d components, got %d", ErrUnsupportedDimension, geometry.Dim3, a.Dim())
		}

		return a3.Cross(any(b).(geometry.Vector3)).Text(opts...), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
}

func parseComponents(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	comps := make([]float64, 0, len(fields))

	for _, f := range fields {
		c, err := parseScalar(f)
		if err != nil {
			return nil, err
		}
		comps = append(comps, c)
	}

	return comps, nil
}

func parseScalar(s string) (float64, error) {
	c, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidComponent, s)
	}

	return c, nil
}
