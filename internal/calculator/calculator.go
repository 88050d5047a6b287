// Package calculator implements the operator's scratch calculator used while
// weighing. It is independent of the record store.
package calculator

import (
	"fmt"
	"strconv"
	"strings"
)

type Operation string

const (
	Add      Operation = "Add"
	Subtract Operation = "Subtract"
	Multiply Operation = "Multiply"
	Divide   Operation = "Divide"
)

var Operations = []Operation{Add, Subtract, Multiply, Divide}

var symbols = map[string]Operation{
	"+": Add,
	"-": Subtract,
	"*": Multiply,
	"x": Multiply,
	"/": Divide,
}

func ParseOperation(s string) (Operation, error) {
	s = strings.TrimSpace(s)
	if op, ok := symbols[s]; ok {
		return op, nil
	}
	for _, op := range Operations {
		if strings.EqualFold(s, string(op)) {
			return op, nil
		}
	}
	return "", fmt.Errorf("unknown operation %q", s)
}

// Result carries either a value or the division-by-zero marker.
type Result struct {
	Value          float64
	DivisionByZero bool
}

func (r Result) String() string {
	if r.DivisionByZero {
		return "division by zero"
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// Calculate applies op to a and b. Dividing by zero never panics or errors;
// it returns a Result with DivisionByZero set.
func Calculate(op Operation, a, b float64) (Result, error) {
	switch op {
	case Add:
		return Result{Value: a + b}, nil
	case Subtract:
		return Result{Value: a - b}, nil
	case Multiply:
		return Result{Value: a * b}, nil
	case Divide:
		if b == 0 {
			return Result{DivisionByZero: true}, nil
		}
		return Result{Value: a / b}, nil
	default:
		return Result{}, fmt.Errorf("unknown operation %q", op)
	}
}
