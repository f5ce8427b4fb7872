package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/refined/pkg/logger"
	"github.com/dmitrymomot/refined/pkg/refined"
)

// rejection sorts env's aggregated errors into constraint violations and
// everything else. env does not unwrap its ParseError, so violations raised
// by refined fields are pulled out here to keep them reachable with
// errors.As.
type rejection struct {
	violations refined.Violations
	others     []error
}

func newRejection(err error) *rejection {
	r := &rejection{}
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		r.others = []error{err}
		return r
	}

	for _, e := range agg.Errors {
		var pe env.ParseError
		if errors.As(e, &pe) && refined.IsViolation(pe.Err) {
			r.violations.Add(pe.Name, pe.Err)
			continue
		}
		r.others = append(r.others, e)
	}
	return r
}

func (r *rejection) err() error {
	errs := []error{ErrParsingConfig}
	if !r.violations.IsEmpty() {
		errs = append(errs, ErrInvalidValue, r.violations)
	}
	errs = append(errs, r.others...)
	return errors.Join(errs...)
}

// logAttrs describes the rejection without the raw variable values. Error
// strings of violations and parse failures quote the offending input, so
// violations go through their LogValue and parse failures are reduced to
// the field name and type.
func (r *rejection) logAttrs() []any {
	others := make([]error, 0, len(r.others))
	for _, e := range r.others {
		var pe env.ParseError
		if errors.As(e, &pe) {
			e = fmt.Errorf("parse error on field %q of type %q", pe.Name, pe.Type)
		}
		others = append(others, e)
	}
	return []any{logger.Violations(r.violations), logger.Errors(others...)}
}
