package idset

import "github.com/pkg/errors"

var ErrTypeMismatch = errors.New("idset: operand is not an identity-keyed set")
