package service

const (
	MaxHomePrice          = 1_000_000_000.0
	MaxHoldingPeriodYears = 100
	MaxRatePercent        = 1000.0 // 1000% anual

	// Límites del barrido de horizontes
	MaxHorizonRangeYears = 50

	// Offsets sobre la tasa de referencia, en fracción
	SyntheticLeverageSpread = 0.005
	SecuritiesLoanSpread    = 0.010

	FinancedShare    = 0.80
	DownPaymentShare = 0.20

	// Aproxima el saldo medio de un préstamo amortizable como la mitad del principal
	AverageBalanceFactor = 0.5

	MonthsPerYear = 12
)
