package services

// ComputeTotal prices a booking: full package price per adult, half price per child.
// No rounding is applied.
func ComputeTotal(pkgPrice float64, adults, children int) float64 {
	return float64(adults)*pkgPrice + float64(children)*(pkgPrice/2)
}
