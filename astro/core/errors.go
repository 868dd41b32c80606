package core

import "errors"

var (
	// ErrConfiguration reports invalid emission-region or electron
	// distribution parameters. Detected eagerly at construction time.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrDomain reports a non-positive or non-finite frequency or photon
	// energy handed to an evaluation call.
	ErrDomain = errors.New("argument outside domain")

	// ErrNumerical reports a quadrature that produced a non-finite result.
	ErrNumerical = errors.New("numerical failure")
)
