package profile

// Control codes shared between the known IdeaPad families. The only
// difference between the 15IIL05 and AMD models is the LPC bridge segment of
// the method path: LPCB on Intel, LPC0 on AMD.
var (
	sharedPerformanceSetArgs = ModeValues{
		IntelligentCooling: 0x000FB001,
		ExtremePerformance: 0x0012B001,
		BatterySaving:      0x0013B001,
	}

	sharedPerformanceBits = ModeValues{
		IntelligentCooling: 0x0,
		ExtremePerformance: 0x1,
		BatterySaving:      0x2,
	}
)

const (
	conservationEnableArg  = 0x03
	conservationDisableArg = 0x05
	rapidChargeEnableArg   = 0x07
	rapidChargeDisableArg  = 0x08

	statusOn  = 0x1
	statusOff = 0x0
)

// IdeaPad15IIL05 is the built-in profile for the IdeaPad 15IIL05 model.
var IdeaPad15IIL05 = &Profile{
	Name:         "IDEAPAD_15IIL05",
	ProductNames: []string{"81YK"},
	Battery: Battery{
		SetMethod: `\_SB.PCI0.LPCB.EC0.VPC0.SBMC`,
		Conservation: BatteryFeature{
			GetMethod:  `\_SB.PCI0.LPCB.EC0.BTSM`,
			EnableArg:  conservationEnableArg,
			DisableArg: conservationDisableArg,
			OnValue:    statusOn,
			OffValue:   statusOff,
		},
		RapidCharge: BatteryFeature{
			GetMethod:  `\_SB.PCI0.LPCB.EC0.QCHO`,
			EnableArg:  rapidChargeEnableArg,
			DisableArg: rapidChargeDisableArg,
			OnValue:    statusOn,
			OffValue:   statusOff,
		},
	},
	Performance: Performance{
		SetMethod:  `\_SB.PCI0.LPCB.EC0.VPC0.DYTC`,
		SPMOMethod: `\_SB.PCI0.LPCB.EC0.SPMO`,
		FCMOMethod: `\_SB.PCI0.LPCB.EC0.FCMO`,
		SetArgs:    sharedPerformanceSetArgs,
		Bits:       sharedPerformanceBits,
	},
}

// IdeaPadAMD is the built-in profile for the IdeaPad AMD models.
var IdeaPadAMD = &Profile{
	Name:         "IDEAPAD_AMD",
	ProductNames: []string{"81YQ", "81YM"},
	Battery: Battery{
		SetMethod: `\_SB.PCI0.LPC0.EC0.VPC0.SBMC`,
		Conservation: BatteryFeature{
			GetMethod:  `\_SB.PCI0.LPC0.EC0.BTSM`,
			EnableArg:  conservationEnableArg,
			DisableArg: conservationDisableArg,
			OnValue:    statusOn,
			OffValue:   statusOff,
		},
		RapidCharge: BatteryFeature{
			GetMethod:  `\_SB.PCI0.LPC0.EC0.QCHO`,
			EnableArg:  rapidChargeEnableArg,
			DisableArg: rapidChargeDisableArg,
			OnValue:    statusOn,
			OffValue:   statusOff,
		},
	},
	Performance: Performance{
		SetMethod:  `\_SB.PCI0.LPC0.EC0.VPC0.DYTC`,
		SPMOMethod: `\_SB.PCI0.LPC0.EC0.SPMO`,
		FCMOMethod: `\_SB.PCI0.LPC0.EC0.FCMO`,
		SetArgs:    sharedPerformanceSetArgs,
		Bits:       sharedPerformanceBits,
	},
}

// BuiltIn is the default search path for auto-detection.
var BuiltIn = []*Profile{
	IdeaPad15IIL05,
	IdeaPadAMD,
}
