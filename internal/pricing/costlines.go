package pricing

// CostLines represents the itemized cost inputs for one priceable offer.
// Guarded amounts (secondary material, accessories) only count when their
// flag is set; the flag stays authoritative even if a stale amount
// remains stored behind it.
type CostLines struct {
	Material              float64
	SecondaryMaterial     float64
	HasSecondaryMaterial  bool
	Accessory             float64
	HasAccessory          bool
	SecondaryAccessory    float64
	HasSecondaryAccessory bool
	Labor                 float64
	Packaging             float64
	Delivery              float64
	Extra                 float64
	FixedCostShare        float64
}

func (c CostLines) secondaryMaterialCost() float64 {
	if !c.HasSecondaryMaterial {
		return 0
	}
	return Sanitize(c.SecondaryMaterial)
}

func (c CostLines) accessoryCost() float64 {
	if !c.HasAccessory {
		return 0
	}
	return Sanitize(c.Accessory)
}

// The secondary accessory only exists as an addition to the primary one,
// so it needs both flags.
func (c CostLines) secondaryAccessoryCost() float64 {
	if !c.HasAccessory || !c.HasSecondaryAccessory {
		return 0
	}
	return Sanitize(c.SecondaryAccessory)
}

// DirectCost sums every active cost line, including the allocated
// fixed-cost share. An all-zero result means the pricing is incomplete,
// not that something went wrong.
func (c CostLines) DirectCost() float64 {
	return Sanitize(c.Material) +
		c.secondaryMaterialCost() +
		c.accessoryCost() +
		c.secondaryAccessoryCost() +
		Sanitize(c.Labor) +
		Sanitize(c.Packaging) +
		Sanitize(c.Delivery) +
		Sanitize(c.Extra) +
		Sanitize(c.FixedCostShare)
}

// AllocateFixedCosts spreads a monthly overhead total across the expected
// monthly sales volume, yielding the per-unit fixed-cost share. Zero
// expected volume allocates nothing.
func AllocateFixedCosts(monthlyTotal, expectedUnits float64) float64 {
	units := Sanitize(expectedUnits)
	if units == 0 {
		return 0
	}
	return Sanitize(monthlyTotal) / units
}
