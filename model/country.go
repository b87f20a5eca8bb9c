package model

// Country is an ISO 3166-1 alpha-2 region. Countries are read-only and are not stored.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
