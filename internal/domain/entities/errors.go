package entities

import "errors"

// ErrTemplateMissing is returned by template sources that cannot supply a template
var ErrTemplateMissing = errors.New("template not available")
