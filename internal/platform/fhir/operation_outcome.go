package fhir

// OperationOutcome severity levels per FHIR R4 spec.
const (
	IssueSeverityFatal       = "fatal"
	IssueSeverityError       = "error"
	IssueSeverityWarning     = "warning"
	IssueSeverityInformation = "information"
)

// OperationOutcome issue type codes per FHIR R4 spec.
const (
	IssueTypeInvalid      = "invalid"
	IssueTypeStructure    = "structure"
	IssueTypeRequired     = "required"
	IssueTypeProcessing   = "processing"
	IssueTypeNotFound     = "not-found"
	IssueTypeNotSupported = "not-supported"
	IssueTypeThrottled    = "throttled"
	IssueTypeTooCostly    = "too-costly"
	IssueTypeException    = "exception"
)

// StructureOutcome creates an OperationOutcome for a request body that could
// not be decoded.
func StructureOutcome(diagnostics string) *OperationOutcome {
	return NewOperationOutcome(IssueSeverityError, IssueTypeStructure, diagnostics)
}

// RequiredFieldOutcome creates an OperationOutcome for a missing required
// field. diagnostics is returned to the client verbatim.
func RequiredFieldOutcome(field, diagnostics string) *OperationOutcome {
	oo := NewOperationOutcome(IssueSeverityError, IssueTypeRequired, diagnostics)
	oo.Issue[0].Expression = []string{field}
	return oo
}

// IssueTypeForStatus maps an HTTP error status to the closest issue type.
func IssueTypeForStatus(status int) string {
	switch {
	case status == 404:
		return IssueTypeNotFound
	case status == 405 || status == 415:
		return IssueTypeNotSupported
	case status == 413:
		return IssueTypeTooCostly
	case status == 429:
		return IssueTypeThrottled
	case status >= 500:
		return IssueTypeException
	}
	return IssueTypeInvalid
}

// InternalErrorOutcome creates an OperationOutcome for internal server errors.
func InternalErrorOutcome(diagnostics string) *OperationOutcome {
	return NewOperationOutcome(IssueSeverityFatal, IssueTypeException, diagnostics)
}
