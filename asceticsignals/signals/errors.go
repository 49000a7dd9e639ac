package signals

import "github.com/pkg/errors"

var ErrInvalidArgument = errors.New("signals: invalid argument")
