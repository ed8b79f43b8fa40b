package models

// GPABucket counts students whose GPA falls in [Low, Low+1).
type GPABucket struct {
	Low   int `json:"low"`
	Count int `json:"count"`
}
