package entities

// RegistrationDetails is what the registration-certificate reader extracts
// from an uploaded document.
type RegistrationDetails struct {
	RegistrationNumber string `json:"registrationNumber"`
	ChassisNumber      string `json:"chassisNumber"`
	Make               string `json:"make"`
	Model              string `json:"model"`
	Variant            string `json:"variant"`
	FuelType           string `json:"fuelType"`
	Year               int    `json:"year"`
}

// RegistrationExtraction is the reader's result for one uploaded certificate.
type RegistrationExtraction struct {
	Confidence float64             `json:"confidence"`
	Extracted  RegistrationDetails `json:"extracted"`
	FilePath   string              `json:"filePath"`
}
