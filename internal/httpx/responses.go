package httpx

import (
	"encoding/json"
	"log"
	"net/http"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success    bool          `json:"success"`
	Data       interface{}   `json:"data,omitempty"`
	Error      string        `json:"error,omitempty"`
	Message    string        `json:"message,omitempty"`
	Pagination interface{}   `json:"pagination,omitempty"`
	Details    []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("response encode failed: error=%v", err)
	}
}

func JSONSuccess(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

func JSONSuccessPage(w http.ResponseWriter, data interface{}, pagination interface{}) {
	JSON(w, http.StatusOK, Response{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	})
}

// JSONSuccessMessage answers a write with an optional record and a
// confirmation message.
func JSONSuccessMessage(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	JSON(w, statusCode, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func JSONError(w http.ResponseWriter, statusCode int, message string, details []ErrorDetail) {
	JSON(w, statusCode, Response{
		Success: false,
		Error:   message,
		Details: details,
	})
}
