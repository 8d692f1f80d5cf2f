package domain

import (
	"encoding/json"
	"strings"
)

// Direction tags a metric with the rule that decides whether a value meets
// its goal and which of two values is better.
type Direction string

const (
	AtLeast Direction = "at_least"
	AtMost  Direction = "at_most"
)

type goalRule struct {
	meets  func(value, goal float64) bool
	better func(a, b float64) bool
}

var goalRules = map[Direction]goalRule{
	AtLeast: {
		meets:  func(value, goal float64) bool { return value >= goal },
		better: func(a, b float64) bool { return a > b },
	},
	AtMost: {
		meets:  func(value, goal float64) bool { return value <= goal },
		better: func(a, b float64) bool { return a < b },
	},
}

// ParseDirection accepts a direction name in any case. The server only emits
// directions; parsing serves API clients decoding metric payloads.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", ErrInvalidDirection
	}
	return d, nil
}

func (d Direction) Valid() bool {
	_, ok := goalRules[d]
	return ok
}

func (d Direction) Meets(value, goal float64) bool {
	r, ok := goalRules[d]
	if !ok {
		return false
	}
	return r.meets(value, goal)
}

func (d Direction) Better(a, b float64) bool {
	r, ok := goalRules[d]
	if !ok {
		return false
	}
	return r.better(a, b)
}

func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
