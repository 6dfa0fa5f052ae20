package common

// APIKeyHeaderName is the gRPC/HTTP metadata key carrying the project API key.
const APIKeyHeaderName = "apikey"

// AuthorizationHeaderName carries "Bearer <access token>" for signed in
// callers.
const AuthorizationHeaderName = "authorization"

// RequestIDHeaderName is the gRPC metadata key used to correlate log lines.
const RequestIDHeaderName = "x-request-id"

// StudentTable is the relational table that receives signup profile rows.
const StudentTable = "student"

// DateLayout is the ISO calendar date layout used for reg_date values.
const DateLayout = "2006-01-02"
