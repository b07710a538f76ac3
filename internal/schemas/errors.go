package schemas

// CustomError is the wire format for transport-level errors. Business outcomes
// are carried by the result DTOs instead, see dtos.go.
type CustomError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var (
	// BadRequest is returned when the request body cannot be decoded or validated.
	BadRequest = &CustomError{Code: "ERR-001", Message: "The request was invalid"}
	// DatabaseError is returned when the database could not serve a query.
	DatabaseError = &CustomError{Code: "ERR-002", Message: "The database encountered an error"}
	// InternalServerError is returned for any other unexpected fault.
	InternalServerError = &CustomError{Code: "ERR-003", Message: "An internal error occurred"}
)
