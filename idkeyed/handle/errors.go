package handle

import "github.com/pkg/errors"

var ErrHandleNotFound = errors.New("handle: no entry for handle")
