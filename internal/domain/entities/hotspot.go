package entities

// Hotspot marks a rectangular region of the parts diagram and links it to a
// catalog part. Coordinates are fractions of the image size in [0, 1].
type Hotspot struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	PartID string  `json:"partId"`
}
