package constvars

const (
	ResourcePatient          = "Patient"
	ResourceOperationOutcome = "OperationOutcome"
	ResourceBundle           = "Bundle"
)

// FHIR search parameters consumed by the registry adapter.
const (
	FhirParamIdentifier = "identifier"
	FhirParamGiven      = "given"
	FhirParamFamily     = "family"
	FhirParamBirthdate  = "birthdate"
	FhirParamCount      = "_count"
	FhirParamPageOffset = "_getpagesoffset"
)

const (
	FhirBundleTypeSearchset = "searchset"
)
