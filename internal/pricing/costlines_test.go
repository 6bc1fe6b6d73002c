package pricing

import "testing"

func TestDirectCost_FlagAuthorityOverStaleValues(t *testing.T) {
	lines := CostLines{
		Material:             50,
		SecondaryMaterial:    30, // stale: flag off, must be ignored
		HasSecondaryMaterial: false,
		Labor:                20,
		Packaging:            5,
		Delivery:             5,
	}

	nearlyEqual(t, "DirectCost", lines.DirectCost(), 80)

	lines.HasSecondaryMaterial = true
	nearlyEqual(t, "DirectCost with flag on", lines.DirectCost(), 110)
}

func TestDirectCost_SecondaryAccessoryNeedsBothFlags(t *testing.T) {
	lines := CostLines{
		Material:           10,
		Accessory:          4,
		SecondaryAccessory: 3,
	}

	lines.HasAccessory = false
	lines.HasSecondaryAccessory = true
	nearlyEqual(t, "no primary flag", lines.DirectCost(), 10)

	lines.HasAccessory = true
	lines.HasSecondaryAccessory = false
	nearlyEqual(t, "no secondary flag", lines.DirectCost(), 14)

	lines.HasSecondaryAccessory = true
	nearlyEqual(t, "both flags", lines.DirectCost(), 17)
}

func TestDirectCost_SanitizesEveryLine(t *testing.T) {
	lines := CostLines{
		Material: 50,
		Labor:    -20, // data error, zeroed
		Extra:    10,
	}

	nearlyEqual(t, "DirectCost", lines.DirectCost(), 60)
}

func TestDirectCost_AllZeroMeansIncompleteNotError(t *testing.T) {
	nearlyEqual(t, "DirectCost", CostLines{}.DirectCost(), 0)
}

func TestAllocateFixedCosts(t *testing.T) {
	nearlyEqual(t, "normal allocation", AllocateFixedCosts(300000, 60), 5000)
	nearlyEqual(t, "zero expected volume", AllocateFixedCosts(300000, 0), 0)
	nearlyEqual(t, "negative overhead zeroed", AllocateFixedCosts(-100, 10), 0)
}
