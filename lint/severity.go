package lint

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Severity is the level attached to a single lint message. The numeric
// values are part of the configuration surface: rule severities in a
// config file may be given either by name ("warning") or by level (1).
type Severity int

const (
	SeverityOff     Severity = 0
	SeverityWarning Severity = 1
	SeverityError   Severity = 2
)

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// ParseSeverity accepts the names used in config files, plus the
// numeric levels 0/1/2.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "off", "0":
		return SeverityOff, nil
	case "warn", "warning", "1":
		return SeverityWarning, nil
	case "error", "2":
		return SeverityError, nil
	default:
		return SeverityOff, fmt.Errorf("unknown severity %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler so severities render as
// names in JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	if s < SeverityOff || s > SeverityError {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML renders the severity by name; yaml.v3 does not consult
// TextMarshaler, so the hook is spelled out.
func (s Severity) MarshalYAML() (any, error) {
	if s < SeverityOff || s > SeverityError {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return s.String(), nil
}

// UnmarshalYAML reads the scalar's raw text, which covers both the
// named and the numeric forms.
func (s *Severity) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseSeverity(node.Value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
