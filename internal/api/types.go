package api

// ClassifyResponse names the predicted class for one submitted image.
type ClassifyResponse struct {
	ClassIndex int    `json:"class_index"`
	ClassName  string `json:"class_name"`
}

// HealthResponse reports server and model readiness.
type HealthResponse struct {
	Status     string `json:"status"`
	NumQubits  int    `json:"num_qubits"`
	NumClasses int    `json:"num_classes"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
