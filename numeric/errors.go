// SPDX-License-Identifier: MIT

package numeric

import "errors"

// ErrUnsupportedScalar is returned by Lookup when no built-in Field exists for
// the requested scalar type. Callers supply their own Field in that case.
var ErrUnsupportedScalar = errors.New("numeric: unsupported scalar type")
