// Package params holds the integer settings that shape the curve.
package params

import (
	"errors"
	"fmt"
	"sync"

	"github.com/iburimskiy/lissajous/internal/config"
)

var ErrUnknownParameter = errors.New("unknown parameter")

// Name identifies one of the four recognized parameters.
type Name int

const (
	Precision Name = iota
	Alpha
	Beta
	Scale

	numNames
)

var names = [numNames]string{
	Precision: "precision",
	Alpha:     "alpha",
	Beta:      "beta",
	Scale:     "scale",
}

func (n Name) String() string {
	if n < 0 || n >= numNames {
		return fmt.Sprintf("Name(%d)", int(n))
	}
	return names[n]
}

// Names returns the recognized parameter names in declaration order.
func Names() []Name {
	return []Name{Precision, Alpha, Beta, Scale}
}

// Lookup resolves a console spelling to a Name.
func Lookup(s string) (Name, error) {
	for i, name := range names {
		if name == s {
			return Name(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownParameter, s)
}

// Params is a consistent copy of all four values.
type Params struct {
	Precision int
	Alpha     int
	Beta      int
	Scale     int
}

func Defaults() Params {
	return Params{
		Precision: config.DefaultPrecision,
		Alpha:     config.DefaultAlpha,
		Beta:      config.DefaultBeta,
		Scale:     config.DefaultScale,
	}
}

// Store is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	values [numNames]int
}

func NewStore(p Params) *Store {
	s := &Store{}
	s.values[Precision] = p.Precision
	s.values[Alpha] = p.Alpha
	s.values[Beta] = p.Beta
	s.values[Scale] = p.Scale
	return s
}

func (s *Store) Get(name string) (int, error) {
	n, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[n], nil
}

func (s *Store) Set(name string, value int) error {
	n, err := Lookup(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.values[n] = value
	s.mu.Unlock()
	return nil
}

// Snapshot reads all four values under one lock.
func (s *Store) Snapshot() Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Params{
		Precision: s.values[Precision],
		Alpha:     s.values[Alpha],
		Beta:      s.values[Beta],
		Scale:     s.values[Scale],
	}
}
