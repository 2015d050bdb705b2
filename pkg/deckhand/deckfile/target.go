package deckfile

import (
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Target is a counter target that decodes leniently from numbers or
// strings. Anything unreadable or negative becomes 0.
type Target int

// ParseTarget reads the leading decimal digits of s, after optional
// whitespace and sign. "12k" is 12; "k12", "" and "-5" are 0.
func ParseTarget(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		if n > (math.MaxInt-int(c-'0'))/10 {
			return 0
		}
		n = n*10 + int(c-'0')
	}

	if negative {
		return 0
	}
	return n
}

func fromFloat(f float64) Target {
	if math.IsNaN(f) || f <= 0 || f >= 1<<62 {
		return 0
	}
	return Target(int(f))
}

// UnmarshalTOML implements toml.Unmarshaler.
func (t *Target) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case int64:
		if val < 0 {
			*t = 0
		} else {
			*t = Target(val)
		}
	case float64:
		*t = fromFloat(val)
	case string:
		*t = Target(ParseTarget(val))
	default:
		*t = 0
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Target) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		*t = 0
		return nil
	}

	var f float64
	if tag := node.ShortTag(); tag == "!!int" || tag == "!!float" {
		if err := node.Decode(&f); err == nil {
			*t = fromFloat(f)
			return nil
		}
	}

	*t = Target(ParseTarget(node.Value))
	return nil
}
