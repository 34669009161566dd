package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Registry search messages
	PatientSearchSuccessMessage  = "patient search completed successfully"
	PatientSearchEmptyMessage    = "no matching patients found in the registry"
	PatientResolveSuccessMessage = "patient details resolved successfully"
)
