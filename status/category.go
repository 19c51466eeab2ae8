package status

// Category is the class of a status, given by its leading digit.
type Category int

const (
	Unknown Category = iota
	Informational
	Success
	Redirection
	ClientError
	ServerError
)

// CategoryOf classifies a numeric code. Codes outside [100, 599] are Unknown.
func CategoryOf(code int) Category {
	if code < 100 || code > 599 {
		return Unknown
	}
	return Category(code / 100)
}

func (c Category) String() string {
	switch c {
	case Informational:
		return "1xx Informational"
	case Success:
		return "2xx Success"
	case Redirection:
		return "3xx Redirection"
	case ClientError:
		return "4xx Client Error"
	case ServerError:
		return "5xx Server Error"
	default:
		return "unknown"
	}
}
