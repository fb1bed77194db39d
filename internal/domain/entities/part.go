package entities

// Part is catalog reference data. It is immutable for the lifetime of the
// process; job cards keep their own snapshot in PartLineItem.
type Part struct {
	ID                 string   `json:"id" yaml:"id"`
	PartNumber         string   `json:"partNumber" yaml:"partNumber"`
	Description        string   `json:"description" yaml:"description"`
	Quantity           int      `json:"quantity" yaml:"quantity"`
	Available          bool     `json:"available" yaml:"available"`
	TurnaroundDays     int      `json:"turnaroundDays" yaml:"turnaroundDays"`
	UnitPrice          float64  `json:"unitPrice" yaml:"unitPrice"`
	SupersededBy       *string  `json:"supersededBy" yaml:"supersededBy"`
	AlternativePartIDs []string `json:"alternativePartIds" yaml:"alternativePartIds"`
}

func (p Part) Clone() Part {
	out := p
	if p.SupersededBy != nil {
		s := *p.SupersededBy
		out.SupersededBy = &s
	}
	out.AlternativePartIDs = cloneOrEmpty(p.AlternativePartIDs)
	return out
}

// PartAlternatives is the resolved replacement view of one part.
type PartAlternatives struct {
	PartID       string  `json:"partId"`
	SupersededBy *string `json:"supersededBy"`
	Alternatives []Part  `json:"alternatives"`
}

// Service is a billable workshop service offered in the catalog.
type Service struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Cost     float64 `json:"cost" yaml:"cost"`
	Category string  `json:"category" yaml:"category"`
}

// CloneParts deep-copies a slice of parts. The result is never nil.
func CloneParts(in []Part) []Part {
	out := make([]Part, 0, len(in))
	for _, p := range in {
		out = append(out, p.Clone())
	}
	return out
}

// CloneServices copies a slice of services. The result is never nil.
func CloneServices(in []Service) []Service {
	return cloneOrEmpty(in)
}
