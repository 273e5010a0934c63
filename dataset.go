package httpstatus

import _ "embed"

// DefaultDatasetURL is the upstream source of the bundled dataset.
const DefaultDatasetURL = "https://raw.githubusercontent.com/for-GET/know-your-http-well/master/json/status-codes.json"

// Dataset is the bundled status dataset as a JSON array.
//
//go:embed status-codes.json
var Dataset []byte
