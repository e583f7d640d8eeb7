package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusNotFound:            "Resource Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusUnprocessableEntity: "Not Processable",
	http.StatusInternalServerError: "Internal Server Error",
}

// AbortWithError writes the fixed error body for status and stops the chain.
func AbortWithError(c *gin.Context, status int) {
	message, ok := errorMessages[status]
	if !ok {
		message = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// NotFound and MethodNotAllowed back the router's fallbacks.
func NotFound(c *gin.Context) {
	AbortWithError(c, http.StatusNotFound)
}

func MethodNotAllowed(c *gin.Context) {
	AbortWithError(c, http.StatusMethodNotAllowed)
}

// isMalformedBody reports bind errors caused by a missing or unparsable
// body, as opposed to well-formed JSON carrying wrong values.
func isMalformedBody(err error) bool {
	var syntaxErr *json.SyntaxError
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.As(err, &syntaxErr)
}

func isValidationError(err error) bool {
	var validationErrs validator.ValidationErrors
	return errors.As(err, &validationErrs)
}
