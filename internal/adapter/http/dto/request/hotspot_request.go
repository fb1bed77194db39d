package request

import "github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase"

// HotspotRequest is the body of POST /api/admin/hotspots. Bounds must be
// JSON numbers; strings are rejected by the use case as missing.
type HotspotRequest struct {
	Label  LooseString  `json:"label" swaggertype:"string" example:"Inline filter"`
	X      StrictNumber `json:"x" swaggertype:"number" example:"0.42"`
	Y      StrictNumber `json:"y" swaggertype:"number" example:"0.18"`
	Width  StrictNumber `json:"width" swaggertype:"number" example:"0.1"`
	Height StrictNumber `json:"height" swaggertype:"number" example:"0.08"`
	PartID LooseString  `json:"partId" swaggertype:"string" example:"part-102"`
}

func (r HotspotRequest) ToInput() usecase.CreateHotspotInput {
	return usecase.CreateHotspotInput{
		Label:  r.Label.String(),
		X:      r.X.Float(),
		Y:      r.Y.Float(),
		Width:  r.Width.Float(),
		Height: r.Height.Float(),
		PartID: r.PartID.String(),
	}
}
