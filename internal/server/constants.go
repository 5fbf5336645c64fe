package server

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
)

// HTTP header names
const (
	HeaderAuthorization  = "Authorization"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"

	HeaderCORSAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderCORSAllowMethods = "Access-Control-Allow-Methods"
	HeaderCORSAllowHeaders = "Access-Control-Allow-Headers"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"

	HeaderValueCORSMethods = "GET, POST, PUT, OPTIONS"
	HeaderValueCORSHeaders = "Content-Type"
)

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
