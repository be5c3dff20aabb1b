package components

import "github.com/yohamta/donburi"

// HealthData holds an agent's hit points. Current only ever goes down.
type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()
