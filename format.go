package geometry

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

type formatOptions struct {
	prefix    string
	separator string
	open      string
	close     string
	verb      string
	showDim   bool
}

func defaultFormatOptions() formatOptions {
	return formatOptions{
		prefix:    "Vector",
		separator: ";",
		open:      "[",
		close:     "]",
		verb:      "%v",
		showDim:   true,
	}
}

// FormatOption configures the text produced by the Text methods.
type FormatOption func(*formatOptions)

// WithSeparator sets the string written between two components.
// Default: ";".
func WithSeparator(sep string) FormatOption {
	return func(o *formatOptions) {
		o.separator = sep
	}
}

// WithPrefix sets the name written before the dimension.
// Default: "Vector".
func WithPrefix(prefix string) FormatOption {
	return func(o *formatOptions) {
		o.prefix = prefix
	}
}

// WithBrackets sets the strings enclosing the components.
// Default: "[" and "]".
func WithBrackets(open, close string) FormatOption {
	return func(o *formatOptions) {
		o.open = open
		o.close = close
	}
}

// WithVerb sets the fmt format applied to each component, e.g. "%.3f".
//
// If verb is empty, "%v" is used.
func WithVerb(verb string) FormatOption {
	return func(o *formatOptions) {
		if verb == "" {
			verb = "%v"
		}
		o.verb = verb
	}
}

// WithoutDimension omits the dimension after the prefix.
func WithoutDimension() FormatOption {
	return func(o *formatOptions) {
		o.showDim = false
	}
}

func newFormatOptions(opts []FormatOption) *formatOptions {
	o := defaultFormatOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &o
}

func formatComponents[T Scalar](comps []T, o *formatOptions) string {
	var sb strings.Builder

	sb.WriteString(o.prefix)
	if o.showDim {
		sb.WriteString(strconv.Itoa(len(comps)))
	}
	sb.WriteString(o.open)
	for i, c := range comps {
		if i > 0 {
			sb.WriteString(o.separator)
		}
		fmt.Fprintf(&sb, o.verb, c)
	}
	sb.WriteString(o.close)

	return sb.String()
}

// formatState implements fmt.Formatter for all vector types: the verb, its
// flags, width and precision are applied to every component.
func formatState[T Scalar](f fmt.State, verb rune, comps []T) {
	if verb == 's' {
		verb = 'v'
	}

	o := defaultFormatOptions()
	o.verb = fmt.FormatString(f, verb)

	_, _ = io.WriteString(f, formatComponents(comps, &o))
}
