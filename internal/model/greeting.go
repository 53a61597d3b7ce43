package model

// HelloRequest is the expected JSON body for POST /hello.
// Name is a pointer so a missing key can be told apart from an empty value.
type HelloRequest struct {
	Name *string `json:"name"`
}

// Greeting is the successful response of POST /hello.
type Greeting struct {
	Message string `json:"message"`
}
