package status

// table holds the HTTP statuses registered with IANA, in code order.
// See https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
var table = []Entry{
	// 1xx Informational
	{"HTTP_100", 100, "Continue", "HTTP_CONTINUE"},
	{"HTTP_101", 101, "Switching Protocols", "HTTP_SWITCHING_PROTOCOLS"},
	{"HTTP_102", 102, "Processing", "HTTP_PROCESSING"},
	{"HTTP_103", 103, "Early Hints", "HTTP_EARLY_HINTS"},
	{"HTTP_104", 104, "Upload Resumption Supported (TEMPORARY)", "HTTP_UPLOAD_RESUMPTION_SUPPORTED"},

	// 2xx Success
	{"HTTP_200", 200, "OK", "HTTP_OK"},
	{"HTTP_201", 201, "Created", "HTTP_CREATED"},
	{"HTTP_202", 202, "Accepted", "HTTP_ACCEPTED"},
	{"HTTP_203", 203, "Non-Authoritative Information", "HTTP_NON_AUTHORITATIVE_INFORMATION"},
	{"HTTP_204", 204, "No Content", "HTTP_NO_CONTENT"},
	{"HTTP_205", 205, "Reset Content", "HTTP_RESET_CONTENT"},
	{"HTTP_206", 206, "Partial Content", "HTTP_PARTIAL_CONTENT"},
	{"HTTP_207", 207, "Multi-Status", "HTTP_MULTI_STATUS"},
	{"HTTP_208", 208, "Already Reported", "HTTP_ALREADY_REPORTED"},
	{"HTTP_226", 226, "IM Used", "HTTP_IM_USED"},

	// 3xx Redirection
	{"HTTP_300", 300, "Multiple Choices", "HTTP_MULTIPLE_CHOICES"},
	{"HTTP_301", 301, "Moved Permanently", "HTTP_MOVED_PERMANENTLY"},
	{"HTTP_302", 302, "Found", "HTTP_FOUND"},
	{"HTTP_303", 303, "See Other", "HTTP_SEE_OTHER"},
	{"HTTP_304", 304, "Not Modified", "HTTP_NOT_MODIFIED"},
	{"HTTP_305", 305, "Use Proxy", "HTTP_USE_PROXY"},
	{"HTTP_307", 307, "Temporary Redirect", "HTTP_TEMPORARY_REDIRECT"},
	{"HTTP_308", 308, "Permanent Redirect", "HTTP_PERMANENTLY_REDIRECT"},

	// 4xx Client Error
	{"HTTP_400", 400, "Bad Request", "HTTP_BAD_REQUEST"},
	{"HTTP_401", 401, "Unauthorized", "HTTP_UNAUTHORIZED"},
	{"HTTP_402", 402, "Payment Required", "HTTP_PAYMENT_REQUIRED"},
	{"HTTP_403", 403, "Forbidden", "HTTP_FORBIDDEN"},
	{"HTTP_404", 404, "Not Found", "HTTP_NOT_FOUND"},
	{"HTTP_405", 405, "Method Not Allowed", "HTTP_METHOD_NOT_ALLOWED"},
	{"HTTP_406", 406, "Not Acceptable", "HTTP_NOT_ACCEPTABLE"},
	{"HTTP_407", 407, "Proxy Authentication Required", "HTTP_PROXY_AUTHENTICATION_REQUIRED"},
	{"HTTP_408", 408, "Request Timeout", "HTTP_REQUEST_TIMEOUT"},
	{"HTTP_409", 409, "Conflict", "HTTP_CONFLICT"},
	{"HTTP_410", 410, "Gone", "HTTP_GONE"},
	{"HTTP_411", 411, "Length Required", "HTTP_LENGTH_REQUIRED"},
	{"HTTP_412", 412, "Precondition Failed", "HTTP_PRECONDITION_FAILED"},
	{"HTTP_413", 413, "Payload Too Large", "HTTP_REQUEST_ENTITY_TOO_LARGE"},
	{"HTTP_414", 414, "URI Too Long", "HTTP_REQUEST_URI_TOO_LONG"},
	{"HTTP_415", 415, "Unsupported Media Type", "HTTP_UNSUPPORTED_MEDIA_TYPE"},
	{"HTTP_416", 416, "Range Not Satisfiable", "HTTP_REQUESTED_RANGE_NOT_SATISFIABLE"},
	{"HTTP_417", 417, "Expectation Failed", "HTTP_EXPECTATION_FAILED"},
	{"HTTP_418", 418, "I'm a teapot", "HTTP_I_AM_A_TEAPOT"},
	{"HTTP_421", 421, "Misdirected Request", "HTTP_MISDIRECTED_REQUEST"},
	{"HTTP_422", 422, "Unprocessable Entity", "HTTP_UNPROCESSABLE_ENTITY"},
	{"HTTP_423", 423, "Locked", "HTTP_LOCKED"},
	{"HTTP_424", 424, "Failed Dependency", "HTTP_FAILED_DEPENDENCY"},
	{"HTTP_425", 425, "Too Early", "HTTP_TOO_EARLY"},
	{"HTTP_426", 426, "Upgrade Required", "HTTP_UPGRADE_REQUIRED"},
	{"HTTP_428", 428, "Precondition Required", "HTTP_PRECONDITION_REQUIRED"},
	{"HTTP_429", 429, "Too Many Requests", "HTTP_TOO_MANY_REQUESTS"},
	{"HTTP_431", 431, "Request Header Fields Too Large", "HTTP_REQUEST_HEADER_FIELDS_TOO_LARGE"},
	{"HTTP_451", 451, "Unavailable For Legal Reasons", "HTTP_UNAVAILABLE_FOR_LEGAL_REASONS"},

	// 5xx Server Error
	{"HTTP_500", 500, "Internal Server Error", "HTTP_INTERNAL_SERVER_ERROR"},
	{"HTTP_501", 501, "Not Implemented", "HTTP_NOT_IMPLEMENTED"},
	{"HTTP_502", 502, "Bad Gateway", "HTTP_BAD_GATEWAY"},
	{"HTTP_503", 503, "Service Unavailable", "HTTP_SERVICE_UNAVAILABLE"},
	{"HTTP_504", 504, "Gateway Timeout", "HTTP_GATEWAY_TIMEOUT"},
	{"HTTP_505", 505, "HTTP Version Not Supported", "HTTP_VERSION_NOT_SUPPORTED"},
	{"HTTP_506", 506, "Variant Also Negotiates", "HTTP_VARIANT_ALSO_NEGOTIATES"},
	{"HTTP_507", 507, "Insufficient Storage", "HTTP_INSUFFICIENT_STORAGE"},
	{"HTTP_508", 508, "Loop Detected", "HTTP_LOOP_DETECTED"},
	{"HTTP_510", 510, "Not Extended (OBSOLETE)", "HTTP_NOT_EXTENDED"},
	{"HTTP_511", 511, "Network Authentication Required", "HTTP_NETWORK_AUTHENTICATION_REQUIRED"},
}
