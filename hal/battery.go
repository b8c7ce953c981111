package hal

// LiPo discharge curve, linear between these endpoints.
const (
	batteryEmptyMillivolts = 3300
	batteryFullMillivolts  = 4200
)

// percentFromMillivolts maps a cell voltage onto 0..100.
func percentFromMillivolts(mv int) uint8 {
	switch {
	case mv <= batteryEmptyMillivolts:
		return 0
	case mv >= batteryFullMillivolts:
		return 100
	}
	return uint8((mv - batteryEmptyMillivolts) * 100 / (batteryFullMillivolts - batteryEmptyMillivolts))
}
