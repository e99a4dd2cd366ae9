package console

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/iburimskiy/lissajous/internal/params"
)

var (
	ErrUnrecognizedCommand = errors.New("unrecognized command")
	ErrMalformedNumber     = errors.New("malformed number")
)

// Command is one parsed console instruction.
type Command interface {
	command()
}

type (
	Set struct {
		Name  string
		Value int
	}
	Get struct {
		Name string
	}
	Compile      struct{}
	ToggleMode   struct{}
	Help         struct{}
	Exit         struct{}
	Unrecognized struct {
		Token string
	}
)

func (Set) command()          {}
func (Get) command()          {}
func (Compile) command()      {}
func (ToggleMode) command()   {}
func (Help) command()         {}
func (Exit) command()         {}
func (Unrecognized) command() {}

type tokenSource interface {
	Next() (string, error)
}

// Parse reads one command and its arguments. Read errors from src are
// returned unchanged; argument problems come back as ErrUnknownParameter or
// ErrMalformedNumber and leave the rest of the line for the caller to drop.
func Parse(src tokenSource) (Command, error) {
	word, err := src.Next()
	if err != nil {
		return nil, err
	}

	switch word {
	case "set":
		name, err := parameterName(src)
		if err != nil {
			return nil, err
		}
		raw, err := src.Next()
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrMalformedNumber, raw)
		}
		return Set{Name: name, Value: v}, nil
	case "get":
		name, err := parameterName(src)
		if err != nil {
			return nil, err
		}
		return Get{Name: name}, nil
	case "compile":
		return Compile{}, nil
	case "green-orange":
		return ToggleMode{}, nil
	case "help":
		return Help{}, nil
	case "exit":
		return Exit{}, nil
	default:
		return Unrecognized{Token: word}, nil
	}
}

// parameterName is checked before any value is read, so a bad name never
// waits for more input.
func parameterName(src tokenSource) (string, error) {
	name, err := src.Next()
	if err != nil {
		return "", err
	}
	if _, err := params.Lookup(name); err != nil {
		return "", err
	}
	return name, nil
}

// recoverable reports whether err came from bad arguments rather than the
// input stream itself.
func recoverable(err error) bool {
	return errors.Is(err, params.ErrUnknownParameter) || errors.Is(err, ErrMalformedNumber)
}
