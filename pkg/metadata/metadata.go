// Package metadata holds the canonical object model of the platform:
// typed values, tag headers, selectors and the version algebra. Everything
// here is pure, the DAL in metadb does the persistence.
package metadata

import (
	"github.com/zeebo/errs"
)

// Error is the default metadata error class.
var Error = errs.Class("metadata")

// ErrValidation is raised for malformed model inputs.
var ErrValidation = errs.Class("metadata validation")

// ErrPrecondition is raised when an update disagrees with prior state.
var ErrPrecondition = errs.Class("metadata precondition")

// ObjectFirstVersion is the version assigned to a newly created object.
const ObjectFirstVersion = 1

// TagFirstVersion is the tag version assigned with each new object version.
const TagFirstVersion = 1
