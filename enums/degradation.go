package enums

type Degradation string

const (
	// DegradationNone means the summarizer returned real model output.
	DegradationNone Degradation = ""

	// DegradationNoAPIKey means no Gemini key is configured. No request is made.
	DegradationNoAPIKey Degradation = "no_api_key"

	// DegradationTransport covers network failures and non-success HTTP statuses.
	DegradationTransport Degradation = "transport"

	// DegradationMalformed means the response decoded but carried no summary text.
	DegradationMalformed Degradation = "malformed_response"

	// DegradationUnexpected covers everything else, like an unparseable body.
	DegradationUnexpected Degradation = "unexpected"
)
