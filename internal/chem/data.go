package chem

// Literature shorthand used across the table.
const (
	refCrew       = "Crew, M.C.; Steinert, H.E.; Hopkins, B.S."
	refPushkina   = "Pushkina, G. Ya.; Komissarova, L.N."
	refMoret      = "Moret R."
	refFriend     = "Friend J.N."
	refBrunisholz = "Brunisholz, G.; Quinche, J.P.; Kalo, A.M."
	refSpedding   = "Spedding, F.R.; Shiers, L.E.; Rard, J.A."
	refQuill      = "Quill, L.L.; Robey, R.F."

	jPhysChem  = "J. Phys. Chem."
	jChemSoc   = "J. Chem. Soc."
	jAmChemSoc = "J. Am. Chem. Soc."
	jHelvChim  = "Helv. Chim. Acta"
	jChemEng   = "J. Chem. Eng. Data"
	jZhNeorg   = "Zh. Neorg. Khim."
	jLausanne  = "Thesis Universite de Lausanne"
)

// SolubilityData returns the transcribed binary solubility table for
// rare-earth nitrates in water. Rows appear in the order they were
// transcribed: by element, then by study, then by temperature.
func SolubilityData() []Measurement {
	return []Measurement{
		// Scandium nitrate - Pushkina et al. 1963. Reported as mass% (the
		// molalities only reconcile under that reading).
		{Salt: "Sc(NO3)3", CAS: "[13465-60-6]", TempC: 0, SolNew: 56.37, Molality: 5.595, SolidPhase: "Sc(NO3)3·4H2O", Reference: refPushkina, Journal: jZhNeorg, Year: "1963", Format: FormatMassPercent},
		{Salt: "Sc(NO3)3", CAS: "[13465-60-6]", TempC: 15, SolNew: 61.30, Molality: 6.857, SolidPhase: "Sc(NO3)3·4H2O", Reference: refPushkina, Journal: jZhNeorg, Year: "1963", Format: FormatMassPercent},
		{Salt: "Sc(NO3)3", CAS: "[13465-60-6]", TempC: 25, SolNew: 62.37, Molality: 7.176, SolidPhase: "Sc(NO3)3·4H2O", Reference: refPushkina, Journal: jZhNeorg, Year: "1963", Format: FormatMassPercent},
		{Salt: "Sc(NO3)3", CAS: "[13465-60-6]", TempC: 30, SolNew: 64.28, Molality: 7.791, SolidPhase: "Sc(NO3)3·4H2O", Reference: refPushkina, Journal: jZhNeorg, Year: "1963", Format: FormatMassPercent},
		{Salt: "Sc(NO3)3", CAS: "[13465-60-6]", TempC: 40, SolNew: 66.99, Molality: 8.787, SolidPhase: "Sc(NO3)3·4H2O", Reference: refPushkina, Journal: jZhNeorg, Year: "1963", Format: FormatMassPercent},
		{Salt: "Sc(NO3)3", CAS: "[13465-60-6]", TempC: 50, SolNew: 67.63, Molality: 9.045, SolidPhase: "Sc(NO3)3·4H2O", Reference: refPushkina, Journal: jZhNeorg, Year: "1963", Format: FormatMassPercent},

		// Yttrium nitrate - Crew et al. 1925 - full experimental data
		{Salt: "Y(NO3)3", CAS: "[10361-93-0]", TempC: 0, MassSatdG: 1.3078, MassOxideG: 0.2596, SolOld: 93.1, SolNew: 93.55, Molality: 3.403, SolidPhase: "Y(NO3)3·6H2O", Reference: refCrew, Journal: jPhysChem, Year: "1925", Format: FormatExperimental},
		{Salt: "Y(NO3)3", CAS: "[10361-93-0]", TempC: 22.5, MassSatdG: 1.2234, MassOxideG: 0.2888, SolOld: 136, SolNew: 135.2, Molality: 4.917, SolidPhase: "Y(NO3)3·6H2O", Reference: refCrew, Journal: jPhysChem, Year: "1925", Format: FormatExperimental},
		{Salt: "Y(NO3)3", CAS: "[10361-93-0]", TempC: 22.5, MassSatdG: 1.2721, MassOxideG: 0.2988, SolOld: 133, SolNew: 133.6, Molality: 4.860, SolidPhase: "Y(NO3)3·6H2O", Reference: refCrew, Journal: jPhysChem, Year: "1925", Format: FormatExperimental, Notes: "Duplicate measurement"},
		{Salt: "Y(NO3)3", CAS: "[10361-93-0]", TempC: 35, MassSatdG: 0.7403, MassOxideG: 0.1853, SolOld: 155, SolNew: 156.1, Molality: 5.677, SolidPhase: "Y(NO3)3·6H2O", Reference: refCrew, Journal: jPhysChem, Year: "1925", Format: FormatExperimental},
		{Salt: "Y(NO3)3", CAS: "[10361-93-0]", TempC: 60.2, MassSatdG: 0.5738, MassOxideG: 0.1561, SolOld: 197, SolNew: 196.2, Molality: 7.138, SolidPhase: "Y(NO3)3·6H2O", Reference: refCrew, Journal: jPhysChem, Year: "1925", Format: FormatExperimental},
		{Salt: "Y(NO3)3", CAS: "[10361-93-0]", TempC: 60.2, MassSatdG: 0.7974, MassOxideG: 0.2193, SolOld: 203.1, SolNew: 202.7, Molality: 7.374, SolidPhase: "Y(NO3)3·6H2O", Reference: refCrew, Journal: jPhysChem, Year: "1925", Format: FormatExperimental, Notes: "Duplicate measurement"},
		{Salt: "Y(NO3)3", CAS: "[10361-93-0]", TempC: 66.5, MassSatdG: 0.9248, MassOxideG: 0.2585, SolOld: 211, SolNew: 213.1, Molality: 7.752, SolidPhase: "Y(NO3)3·6H2O", Reference: refCrew, Journal: jPhysChem, Year: "1925", Format: FormatExperimental},

		// Yttrium nitrate - Moret 1963 - direct mass%
		{Salt: "Y(NO3)3", CAS: "[10361-93-0]", TempC: 0, SolNew: 55.51, Molality: 4.538, SolidPhase: "Y(NO3)3·6H2O", Reference: refMoret, Journal: jLausanne, Year: "1963", Format: FormatMassPercent},
		{Salt: "Y(NO3)3", CAS: "[10361-93-0]", TempC: 10, SolNew: 57.12, Molality: 4.845, SolidPhase: "Y(NO3)3·6H2O", Reference: refMoret, Journal: jLausanne, Year: "1963", Format: FormatMassPercent},
		{Salt: "Y(NO3)3", CAS: "[10361-93-0]", TempC: 20, SolNew: 58.45, Molality: 5.117, SolidPhase: "Y(NO3)3·6H2O", Reference: refMoret, Journal: jLausanne, Year: "1963", Format: FormatMassPercent},
		{Salt: "Y(NO3)3", CAS: "[10361-93-0]", TempC: 25, SolNew: 59.92, Molality: 5.438, SolidPhase: "Y(NO3)3·6H2O", Reference: refMoret, Journal: jLausanne, Year: "1963", Format: FormatMassPercent},
		{Salt: "Y(NO3)3", CAS: "[10361-93-0]", TempC: 30, SolNew: 61.23, Molality: 5.745, SolidPhase: "Y(NO3)3·6H2O", Reference: refMoret, Journal: jLausanne, Year: "1963", Format: FormatMassPercent},
		{Salt: "Y(NO3)3", CAS: "[10361-93-0]", TempC: 35, SolNew: 62.49, Molality: 6.060, SolidPhase: "Y(NO3)3·6H2O", Reference: refMoret, Journal: jLausanne, Year: "1963", Format: FormatMassPercent},
		{Salt: "Y(NO3)3", CAS: "[10361-93-0]", TempC: 40, SolNew: 63.76, Molality: 6.400, SolidPhase: "Y(NO3)3·5H2O", Reference: refMoret, Journal: jLausanne, Year: "1963", Format: FormatMassPercent, Notes: "Transition at 38.5°C"},
		{Salt: "Y(NO3)3", CAS: "[10361-93-0]", TempC: 50, SolNew: 64.51, Molality: 6.612, SolidPhase: "Y(NO3)3·5H2O", Reference: refMoret, Journal: jLausanne, Year: "1963", Format: FormatMassPercent},

		// Lanthanum nitrate - Friend 1935 - direct mass%
		{Salt: "La(NO3)3", CAS: "[10099-59-9]", TempC: 0, SolNew: 50.03, Molality: 3.081, SolidPhase: "α-La(NO3)3·6H2O", Reference: refFriend, Journal: jChemSoc, Year: "1935", Format: FormatMassPercent},
		{Salt: "La(NO3)3", CAS: "[10099-59-9]", TempC: 18.4, SolNew: 54.16, Molality: 3.636, SolidPhase: "α-La(NO3)3·6H2O", Reference: refFriend, Journal: jChemSoc, Year: "1935", Format: FormatMassPercent},
		{Salt: "La(NO3)3", CAS: "[10099-59-9]", TempC: 21.2, SolNew: 55.03, Molality: 3.766, SolidPhase: "α-La(NO3)3·6H2O", Reference: refFriend, Journal: jChemSoc, Year: "1935", Format: FormatMassPercent},
		{Salt: "La(NO3)3", CAS: "[10099-59-9]", TempC: 25.4, SolNew: 55.80, Molality: 3.885, SolidPhase: "α-La(NO3)3·6H2O", Reference: refFriend, Journal: jChemSoc, Year: "1935", Format: FormatMassPercent},
		{Salt: "La(NO3)3", CAS: "[10099-59-9]", TempC: 35.4, SolNew: 59.12, Molality: 4.451, SolidPhase: "α-La(NO3)3·6H2O", Reference: refFriend, Journal: jChemSoc, Year: "1935", Format: FormatMassPercent},
		{Salt: "La(NO3)3", CAS: "[10099-59-9]", TempC: 42.4, SolNew: 63.84, Molality: 5.434, SolidPhase: "α-La(NO3)3·6H2O", Reference: refFriend, Journal: jChemSoc, Year: "1935", Format: FormatMassPercent, Notes: "Transition ~43°C"},

		// Lanthanum nitrate - Brunisholz et al. 1964
		{Salt: "La(NO3)3", CAS: "[10099-59-9]", TempC: 0, SolNew: 54.99, Molality: 3.760, SolidPhase: "La(NO3)3·6H2O", Reference: refBrunisholz, Journal: jHelvChim, Year: "1964", Format: FormatMassPercent},
		{Salt: "La(NO3)3", CAS: "[10099-59-9]", TempC: 5, SolNew: 55.88, Molality: 3.898, SolidPhase: "La(NO3)3·6H2O", Reference: refBrunisholz, Journal: jHelvChim, Year: "1964", Format: FormatMassPercent},
		{Salt: "La(NO3)3", CAS: "[10099-59-9]", TempC: 10, SolNew: 57.09, Molality: 4.095, SolidPhase: "La(NO3)3·6H2O", Reference: refBrunisholz, Journal: jHelvChim, Year: "1964", Format: FormatMassPercent},
		{Salt: "La(NO3)3", CAS: "[10099-59-9]", TempC: 20, SolNew: 58.97, Molality: 4.423, SolidPhase: "La(NO3)3·6H2O", Reference: refBrunisholz, Journal: jHelvChim, Year: "1964", Format: FormatMassPercent},
		{Salt: "La(NO3)3", CAS: "[10099-59-9]", TempC: 25, SolNew: 59.98, Molality: 4.613, SolidPhase: "La(NO3)3·6H2O", Reference: refBrunisholz, Journal: jHelvChim, Year: "1964", Format: FormatMassPercent},
		{Salt: "La(NO3)3", CAS: "[10099-59-9]", TempC: 35, SolNew: 62.34, Molality: 5.095, SolidPhase: "La(NO3)3·6H2O", Reference: refBrunisholz, Journal: jHelvChim, Year: "1964", Format: FormatMassPercent},
		{Salt: "La(NO3)3", CAS: "[10099-59-9]", TempC: 50, SolNew: 66.29, Molality: 6.052, SolidPhase: "La(NO3)3·6H2O", Reference: refBrunisholz, Journal: jHelvChim, Year: "1964", Format: FormatMassPercent},

		// Lanthanum nitrate - Spedding et al. 1975 - molality only
		{Salt: "La(NO3)3", CAS: "[10099-59-9]", TempC: 25, Molality: 4.610, SolidPhase: "La(NO3)3·6H2O", Reference: refSpedding, Journal: jChemEng, Year: "1975", Format: FormatMassPercent, Notes: "Preferred value: 4.610 mol/kg"},

		// Cerium nitrate - Quill and Robey 1937
		{Salt: "Ce(NO3)3", CAS: "[10108-73-3]", TempC: 25, SolNew: 63.71, Molality: 5.383, SolidPhase: "Ce(NO3)3·6H2O", Reference: refQuill, Journal: jAmChemSoc, Year: "1937", Format: FormatMassPercent, Notes: "density=1.88 kg/m³"},
		{Salt: "Ce(NO3)3", CAS: "[10108-73-3]", TempC: 50, SolNew: 73.88, Molality: 8.673, SolidPhase: "Ce(NO3)3·6H2O", Reference: refQuill, Journal: jAmChemSoc, Year: "1937", Format: FormatMassPercent, Notes: "density=2.04 kg/m³"},

		// Cerium nitrate - Brunisholz et al. 1964
		{Salt: "Ce(NO3)3", CAS: "[10108-73-3]", TempC: 0, SolNew: 58.02, Molality: 4.238, SolidPhase: "Ce(NO3)3·6H2O", Reference: refBrunisholz, Journal: jHelvChim, Year: "1964", Format: FormatMassPercent},
		{Salt: "Ce(NO3)3", CAS: "[10108-73-3]", TempC: 10, SolNew: 59.83, Molality: 4.567, SolidPhase: "Ce(NO3)3·6H2O", Reference: refBrunisholz, Journal: jHelvChim, Year: "1964", Format: FormatMassPercent},
		{Salt: "Ce(NO3)3", CAS: "[10108-73-3]", TempC: 20, SolNew: 62.02, Molality: 5.007, SolidPhase: "Ce(NO3)3·6H2O", Reference: refBrunisholz, Journal: jHelvChim, Year: "1964", Format: FormatMassPercent},
		{Salt: "Ce(NO3)3", CAS: "[10108-73-3]", TempC: 35, SolNew: 65.62, Molality: 5.852, SolidPhase: "Ce(NO3)3·6H2O", Reference: refBrunisholz, Journal: jHelvChim, Year: "1964", Format: FormatMassPercent},
		{Salt: "Ce(NO3)3", CAS: "[10108-73-3]", TempC: 50, SolNew: 70.51, Molality: 7.331, SolidPhase: "Ce(NO3)3·6H2O", Reference: refBrunisholz, Journal: jHelvChim, Year: "1964", Format: FormatMassPercent},

		// Praseodymium nitrate - Friend 1935
		{Salt: "Pr(NO3)3", CAS: "[10361-80-5]", TempC: 15.8, SolNew: 59.32, Molality: 4.460, SolidPhase: "Pr(NO3)3·6H2O", Reference: refFriend, Journal: jChemSoc, Year: "1935", Format: FormatMassPercent},
		{Salt: "Pr(NO3)3", CAS: "[10361-80-5]", TempC: 22.0, SolNew: 60.18, Molality: 4.623, SolidPhase: "Pr(NO3)3·6H2O", Reference: refFriend, Journal: jChemSoc, Year: "1935", Format: FormatMassPercent},
		{Salt: "Pr(NO3)3", CAS: "[10361-80-5]", TempC: 30.4, SolNew: 61.94, Molality: 4.978, SolidPhase: "Pr(NO3)3·6H2O", Reference: refFriend, Journal: jChemSoc, Year: "1935", Format: FormatMassPercent},
		{Salt: "Pr(NO3)3", CAS: "[10361-80-5]", TempC: 43.0, SolNew: 65.00, Molality: 5.681, SolidPhase: "Pr(NO3)3·6H2O", Reference: refFriend, Journal: jChemSoc, Year: "1935", Format: FormatMassPercent},
		{Salt: "Pr(NO3)3", CAS: "[10361-80-5]", TempC: 56.0, SolNew: 75.15, Molality: 9.250, SolidPhase: "Pr(NO3)3·6H2O", Reference: refFriend, Journal: jChemSoc, Year: "1935", Format: FormatMassPercent, Notes: "Melting point"},

		// Praseodymium nitrate - Brunisholz et al. 1964
		{Salt: "Pr(NO3)3", CAS: "[10361-80-5]", TempC: 0, SolNew: 57.46, Molality: 4.132, SolidPhase: "Pr(NO3)3·6H2O", Reference: refBrunisholz, Journal: jHelvChim, Year: "1964", Format: FormatMassPercent},
		{Salt: "Pr(NO3)3", CAS: "[10361-80-5]", TempC: 10, SolNew: 59.29, Molality: 4.455, SolidPhase: "Pr(NO3)3·6H2O", Reference: refBrunisholz, Journal: jHelvChim, Year: "1964", Format: FormatMassPercent},
		{Salt: "Pr(NO3)3", CAS: "[10361-80-5]", TempC: 20, SolNew: 61.24, Molality: 4.833, SolidPhase: "Pr(NO3)3·6H2O", Reference: refBrunisholz, Journal: jHelvChim, Year: "1964", Format: FormatMassPercent},
		{Salt: "Pr(NO3)3", CAS: "[10361-80-5]", TempC: 35, SolNew: 64.86, Molality: 5.646, SolidPhase: "Pr(NO3)3·6H2O", Reference: refBrunisholz, Journal: jHelvChim, Year: "1964", Format: FormatMassPercent},
	}
}
