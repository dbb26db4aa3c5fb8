package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chewxy/math32"

	"github.com/jdginn/govec/vec"
)

const unitVectorTolerance = 1e-6

func validatePositive(field string, value float64) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateFinite(field string, v vec.Vec3) []ValidationError {
	for _, f := range v.Array() {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return []ValidationError{{
				Field:   field,
				Message: "components must be finite",
			}}
		}
	}
	return nil
}

func validateUnitVector(field string, v vec.Vec3) []ValidationError {
	if errs := validateFinite(field, v); errs != nil {
		return errs
	}
	// negated so a NaN magnitude is rejected too
	if !(math32.Abs(v.Magnitude()-1) <= unitVectorTolerance) {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be a unit vector (magnitude %v)", v.Magnitude()),
		}}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors groups errors by their top-level field
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	categories := map[string][]ValidationError{}
	var names []string
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		if _, ok := categories[category]; !ok {
			names = append(names, category)
		}
		categories[category] = append(categories[category], err)
	}
	sort.Strings(names)

	for _, category := range names {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categories[category] {
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// SortedNames returns the keys of a named-vector map in lexical order.
func SortedNames(m map[string]vec.Vec3) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate performs validation on the entire document
func (d *Document) Validate() []ValidationError {
	var errors []ValidationError

	for _, name := range SortedNames(d.Vectors) {
		errors = append(errors, validateFinite("vectors."+name, d.Vectors[name])...)
	}
	for _, name := range SortedNames(d.Normals) {
		errors = append(errors, validateUnitVector("normals."+name, d.Normals[name])...)
	}
	if d.Mesh.Path != "" {
		errors = append(errors, d.Mesh.Validate()...)
		errors = append(errors, d.Slice.Validate()...)
	}
	return errors
}

func (m *Mesh) Validate() []ValidationError {
	return validatePositive("mesh.scale", float64(m.Scale))
}

func (s *Slice) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateFinite("slice.point", s.Point)...)
	errors = append(errors, validateUnitVector("slice.normal", s.Normal)...)
	errors = append(errors, validatePositive("slice.width", float64(s.Width))...)
	errors = append(errors, validatePositive("slice.height", float64(s.Height))...)
	return errors
}
