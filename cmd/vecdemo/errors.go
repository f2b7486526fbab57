package main

import "errors"

var (
	// ErrUnknownCommand is returned for a subcommand other than demo or eval.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUnknownOp is returned when eval is asked for an unsupported operation.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrMissingOperand is returned when an operation lacks an argument.
	ErrMissingOperand = errors.New("missing operand")

	// ErrInvalidComponent is returned when a vector component is not a number.
	ErrInvalidComponent = errors.New("invalid component")

	// ErrUnsupportedDimension is returned for vectors the operation is not defined on.
	ErrUnsupportedDimension = errors.New("unsupported dimension")
)
