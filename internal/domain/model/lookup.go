package model

// Read-only reference data mapping status/priority codes to labels.

type Status struct {
	Code  int    `json:"code"`
	Title string `json:"title"`
}

type Priority struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}
