package response

// DiagramResponse carries the current diagram image. ImagePath is null until
// an image is uploaded.
type DiagramResponse struct {
	ImagePath *string `json:"imagePath"`
}

type DiagramImageResponse struct {
	ImagePath string `json:"imagePath"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
