package schemas

import "github.com/go-playground/validator/v10"

// Validate is the shared validator instance used for request payloads.
var Validate = validator.New()
