package catalog

import "errors"

var (
	ErrMissingName             = errors.New("template name is required")
	ErrMissingDescription      = errors.New("template description is required")
	ErrInvalidCategory         = errors.New("unknown task category")
	ErrInvalidRiskCategory     = errors.New("unknown risk category")
	ErrPointsOutOfRange        = errors.New("points value must be between 1 and 10")
	ErrInvalidFrequency        = errors.New("unknown frequency")
	ErrInvalidVerificationType = errors.New("unknown verification type")
)
