// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Sex values
const (
	SexFemale = "female"
	SexMale   = "male"
)

// Region values
const (
	RegionNorthwest = "northwest"
	RegionNortheast = "northeast"
	RegionSouthwest = "southwest"
	RegionSoutheast = "southeast"
)

// Profile field bounds (inclusive)
const (
	MinAge      = 18
	MaxAge      = 100
	MinBMI      = 10.0
	MaxBMI      = 60.0
	MinChildren = 0
	MaxChildren = 10
)

// FeatureCount is the width of the vector returned by Profile.Features.
const FeatureCount = 6

// Regions lists regions in encoding order. A region's index is its model
// code, and the scenario engine cycles through regions in this same order.
var Regions = [...]string{RegionNorthwest, RegionNortheast, RegionSouthwest, RegionSoutheast}

var sexCodes = map[string]float64{
	SexFemale: 0,
	SexMale:   1,
}

// Profile is the set of personal attributes a prediction is made from.
type Profile struct {
	Age      int     `json:"age"`
	Sex      string  `json:"sex"`
	BMI      float64 `json:"bmi"`
	Children int     `json:"children"`
	Smoker   bool    `json:"smoker"`
	Region   string  `json:"region"`
}

// RegionIndex returns the model code of region, or -1 if it is not a known region.
func RegionIndex(region string) int {
	for i, r := range Regions {
		if r == region {
			return i
		}
	}
	return -1
}

// NextRegion returns the region following region in encoding order, wrapping
// around after the last one. Unknown regions map to the first region.
func NextRegion(region string) string {
	return Regions[(RegionIndex(region)+1)%len(Regions)]
}

// Features encodes the profile as the model's input vector:
// [age, sex, bmi, children, smoker, region].
// The profile must be valid; see Validate.
func (p Profile) Features() [FeatureCount]float64 {
	var smoker float64
	if p.Smoker {
		smoker = 1
	}
	return [FeatureCount]float64{
		float64(p.Age),
		sexCodes[p.Sex],
		p.BMI,
		float64(p.Children),
		smoker,
		float64(RegionIndex(p.Region)),
	}
}

// SmokerInt returns the 0/1 column value stored for Smoker.
func (p Profile) SmokerInt() int {
	if p.Smoker {
		return 1
	}
	return 0
}
