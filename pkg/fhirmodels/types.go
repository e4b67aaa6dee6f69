package fhirmodels

// Common FHIR value set constants used across the application.

// Resource types emitted by the query API.
const (
	ResourceTypePatient          = "Patient"
	ResourceTypeBundle           = "Bundle"
	ResourceTypeOperationOutcome = "OperationOutcome"
)

// BundleType codes per FHIR R4.
const (
	BundleTypeSearchset = "searchset"
)
