package idmap

import "github.com/pkg/errors"

var ErrKeyNotFound = errors.New("idmap: key not found")
