// Package status maps the HTTP status codes registered with IANA to their
// reason phrases and alias identifiers, and converts between the three.
//
// Every status is addressable three ways:
//
//	status.FromCode(404)              // numeric code
//	status.FromName("HTTP_404")       // key
//	status.FromAlias("HTTP_NOT_FOUND") // alias
//
// The table is fixed at build time and safe for concurrent use.
package status

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Status is an HTTP status code backed by the default registry.
type Status int

const (
	Continue           Status = 100
	SwitchingProtocols Status = 101
	Processing         Status = 102
	EarlyHints         Status = 103
	UploadResumption   Status = 104

	OK                   Status = 200
	Created              Status = 201
	Accepted             Status = 202
	NonAuthoritativeInfo Status = 203
	NoContent            Status = 204
	ResetContent         Status = 205
	PartialContent       Status = 206
	MultiStatus          Status = 207
	AlreadyReported      Status = 208
	IMUsed               Status = 226

	MultipleChoices   Status = 300
	MovedPermanently  Status = 301
	Found             Status = 302
	SeeOther          Status = 303
	NotModified       Status = 304
	UseProxy          Status = 305
	TemporaryRedirect Status = 307
	PermanentRedirect Status = 308

	BadRequest                  Status = 400
	Unauthorized                Status = 401
	PaymentRequired             Status = 402
	Forbidden                   Status = 403
	NotFound                    Status = 404
	MethodNotAllowed            Status = 405
	NotAcceptable               Status = 406
	ProxyAuthRequired           Status = 407
	RequestTimeout              Status = 408
	Conflict                    Status = 409
	Gone                        Status = 410
	LengthRequired              Status = 411
	PreconditionFailed          Status = 412
	PayloadTooLarge             Status = 413
	URITooLong                  Status = 414
	UnsupportedMediaType        Status = 415
	RangeNotSatisfiable         Status = 416
	ExpectationFailed           Status = 417
	Teapot                      Status = 418
	MisdirectedRequest          Status = 421
	UnprocessableEntity         Status = 422
	Locked                      Status = 423
	FailedDependency            Status = 424
	TooEarly                    Status = 425
	UpgradeRequired             Status = 426
	PreconditionRequired        Status = 428
	TooManyRequests             Status = 429
	RequestHeaderFieldsTooLarge Status = 431
	UnavailableForLegalReasons  Status = 451

	InternalServerError           Status = 500
	NotImplemented                Status = 501
	BadGateway                    Status = 502
	ServiceUnavailable            Status = 503
	GatewayTimeout                Status = 504
	HTTPVersionNotSupported       Status = 505
	VariantAlsoNegotiates         Status = 506
	InsufficientStorage           Status = 507
	LoopDetected                  Status = 508
	NotExtended                   Status = 510
	NetworkAuthenticationRequired Status = 511
)

// FromName returns the status with the given key, e.g. "HTTP_404".
func FromName(key string) (Status, error) {
	e, err := std.Lookup(key)
	if err != nil {
		return 0, err
	}
	return Status(e.Code), nil
}

// FromAlias returns the status with the given alias, e.g. "HTTP_NOT_FOUND".
// A key is accepted as well.
func FromAlias(alias string) (Status, error) {
	e, err := std.LookupAlias(alias)
	if err != nil {
		return 0, err
	}
	return Status(e.Code), nil
}

// FromCode returns the status for a registered numeric code.
func FromCode(code int) (Status, error) {
	e, err := std.LookupCode(code)
	if err != nil {
		return 0, err
	}
	return Status(e.Code), nil
}

// All lists every registered status in ascending order.
func All() []Status {
	out := make([]Status, 0, std.Len())
	for _, e := range std.entries {
		out = append(out, Status(e.Code))
	}
	return out
}

// InCategory lists the registered statuses of one class.
func InCategory(c Category) []Status {
	var out []Status
	for _, e := range std.InCategory(c) {
		out = append(out, Status(e.Code))
	}
	return out
}

// Entry returns the registry row for s.
func (s Status) Entry() (Entry, bool) {
	i, ok := std.byCode[int(s)]
	if !ok {
		return Entry{}, false
	}
	return std.entries[i], true
}

// Valid reports whether s is in the registry.
func (s Status) Valid() bool {
	_, ok := std.byCode[int(s)]
	return ok
}

func (s Status) Code() int { return int(s) }

// Key returns "HTTP_<code>", or "" for an unregistered status.
func (s Status) Key() string {
	e, _ := s.Entry()
	return e.Key
}

// Text returns the reason phrase, or "" for an unregistered status.
func (s Status) Text() string {
	e, _ := s.Entry()
	return e.Text
}

// Alias returns the alias identifier, or "" for an unregistered status.
func (s Status) Alias() string {
	e, _ := s.Entry()
	return e.Alias
}

func (s Status) Category() Category { return CategoryOf(int(s)) }

func (s Status) IsInformational() bool { return s.Category() == Informational }
func (s Status) IsSuccess() bool { return s.Category() == Success }
func (s Status) IsRedirection() bool { return s.Category() == Redirection }
func (s Status) IsClientError() bool { return s.Category() == ClientError }
func (s Status) IsServerError() bool { return s.Category() == ServerError }

// IsError reports a 4xx or 5xx status.
func (s Status) IsError() bool { return s.IsClientError() || s.IsServerError() }

func (s Status) String() string {
	if e, ok := s.Entry(); ok {
		return e.String()
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// MarshalText writes the alias.
func (s Status) MarshalText() ([]byte, error) {
	e, ok := s.Entry()
	if !ok {
		return nil, notFound("code", strconv.Itoa(int(s)))
	}
	return []byte(e.Alias), nil
}

// UnmarshalText accepts an alias, a key or a canonical decimal code.
func (s *Status) UnmarshalText(b []byte) error {
	v, err := parse(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalJSON writes the numeric code.
func (s Status) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, notFound("code", strconv.Itoa(int(s)))
	}
	return []byte(strconv.Itoa(int(s))), nil
}

// UnmarshalJSON accepts a number or any string UnmarshalText accepts.
// JSON null leaves s unchanged.
func (s *Status) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		return s.UnmarshalText([]byte(str))
	}
	var code int
	if err := json.Unmarshal(b, &code); err != nil {
		return err
	}
	v, err := FromCode(code)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func parse(in string) (Status, error) {
	if st, err := FromAlias(in); err == nil {
		return st, nil
	}
	// only the canonical decimal form; "+404" and "0404" are rejected
	if code, err := strconv.Atoi(in); err == nil && strconv.Itoa(code) == in {
		if st, err := FromCode(code); err == nil {
			return st, nil
		}
	}
	return 0, notFound("alias", in)
}
