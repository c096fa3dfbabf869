package validator

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/partnerdocs/oasdocs/internal/issues"
	"github.com/partnerdocs/oasdocs/oaserrors"
	"github.com/partnerdocs/oasdocs/parser"
)

// Severity indicates the severity level of a validation issue
type Severity = issues.Severity

const (
	// SeverityError marks a problem that makes the document invalid
	SeverityError = issues.SeverityError
	// SeverityWarning marks content generation would silently drop
	SeverityWarning = issues.SeverityWarning
	// SeverityInfo marks a notice that needs no action
	SeverityInfo = issues.SeverityInfo
)

// ValidationError represents a single validation issue
type ValidationError = issues.Issue

// ValidationResult contains the results of validating a document
type ValidationResult struct {
	// SourcePath is the document that was validated
	SourcePath string `json:"sourcePath" yaml:"sourcePath"`
	// Valid is true when no issue has SeverityError
	Valid bool `json:"valid" yaml:"valid"`
	// Issues lists structural problems first, then reference problems,
	// then response code and media type problems
	Issues []ValidationError `json:"issues" yaml:"issues"`
	// ErrorCount is the number of SeverityError issues
	ErrorCount int `json:"errorCount" yaml:"errorCount"`
	// WarningCount is the number of SeverityWarning issues
	WarningCount int `json:"warningCount" yaml:"warningCount"`
}

// Err returns the SeverityError issues joined into one error, or nil.
func (r *ValidationResult) Err() error {
	var errs []error
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			errs = append(errs, errors.New(issue.String()))
		}
	}
	return errors.Join(errs...)
}

// Validator checks OpenAPI documents.
type Validator struct {
	// Structural enables kin-openapi validation. Default: true
	Structural bool

	// StrictRefs reports unresolved references as errors instead of
	// warnings. Default: false
	StrictRefs bool

	// Logger receives progress messages. If nil, nothing is logged.
	Logger parser.Logger
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{
		Structural: true,
		Logger:     parser.NopLogger{},
	}
}

// Validate reads and validates the document at specPath.
func (v *Validator) Validate(ctx context.Context, specPath string) (*ValidationResult, error) {
	data, err := os.ReadFile(specPath)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: specPath, Message: "reading file", Cause: err}
	}
	return v.ValidateBytes(ctx, data, specPath)
}

// ValidateBytes validates an in-memory document. sourceName is used in
// messages only.
func (v *Validator) ValidateBytes(ctx context.Context, data []byte, sourceName string) (*ValidationResult, error) {
	log := parser.OrNop(v.Logger)

	parsed, err := parser.ParseWithOptions(
		parser.WithBytes(data),
		parser.WithSourceName(sourceName),
		parser.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	result := &ValidationResult{SourcePath: sourceName}
	if v.Structural {
		for _, err := range ValidateSpec(ctx, data) {
			result.Issues = append(result.Issues, ValidationError{
				Message:  err.Error(),
				Severity: SeverityError,
			})
		}
	}

	refSeverity := SeverityWarning
	if v.StrictRefs {
		refSeverity = SeverityError
	}
	w := newRefWalker(parsed.Document)
	w.walkDocument()
	for _, ref := range w.unresolved {
		result.Issues = append(result.Issues, refIssue(ref, refSeverity))
	}
	for _, ref := range w.circular {
		result.Issues = append(result.Issues, refIssue(ref, SeverityInfo))
	}
	result.Issues = append(result.Issues, w.content...)

	result.ErrorCount = issues.Count(result.Issues, SeverityError)
	result.WarningCount = issues.Count(result.Issues, SeverityWarning)
	result.Valid = result.ErrorCount == 0
	log.Debug("validated document", "source", sourceName, "errors", result.ErrorCount, "warnings", result.WarningCount)
	return result, nil
}

func refIssue(ref *oaserrors.ReferenceError, s Severity) ValidationError {
	return ValidationError{
		Path:     ref.Location,
		Message:  fmt.Sprintf("%s: %s", ref.Ref, ref.Message),
		Severity: s,
		Ref:      ref.Ref,
	}
}
