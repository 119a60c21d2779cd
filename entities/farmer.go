package entities

import "time"

type FarmerProfileCreate struct {
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	FarmSize     string   `json:"farm_size"`
	PrimaryCrops []string `json:"primary_crops"`
	Phone        string   `json:"phone,omitempty"`
}

type FarmerProfile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	FarmSize     string    `json:"farm_size"`
	PrimaryCrops []string  `json:"primary_crops"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
