package constvars

const (
	URLQueryParamIdentifier = "identifier"
	URLQueryParamGivenName  = "given_name"
	URLQueryParamFamilyName = "family_name"
	URLQueryParamBirthDate  = "birth_date"
	URLQueryParamPage       = "page"
	URLQueryParamPageSize   = "page_size"
)
