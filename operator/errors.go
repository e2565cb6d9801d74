// SPDX-License-Identifier: MIT

package operator

import "errors"

// ErrNilBasis indicates that a nil basis or space was supplied.
var ErrNilBasis = errors.New("operator: nil basis")
