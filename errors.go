// seehuhn.de/go/chart - a 2D chart layout engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package chart

import (
	"errors"
	"fmt"
)

// Error classes reported by the layout engine. Every error returned by this
// package wraps exactly one of them, so callers can classify failures with
// errors.Is.
var (
	// ErrInvalidConfiguration reports a malformed plot rectangle, coordinate
	// tuple, grid request or enumeration value.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDomain reports data outside the domain of an axis transform,
	// for example non-positive values on a logarithmic axis.
	ErrDomain = errors.New("domain error")

	// ErrInternal reports a violated internal invariant.
	ErrInternal = errors.New("internal invariant violated")
)

// DomainError is returned when a logarithmic axis is fitted over a range
// which contains non-positive values.
type DomainError struct {
	Axis     Axis
	Min, Max float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s axis: log scale cannot be used for range [%g, %g]",
		e.Axis, e.Min, e.Max)
}

// Is makes DomainError match ErrDomain.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
