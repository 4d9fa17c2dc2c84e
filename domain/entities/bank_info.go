package entities

// BankInfo describes one entry of the national interbank code table.
type BankInfo struct {
	Code      string `json:"code" bson:"code"`
	FullName  string `json:"full_name" bson:"full_name"`
	ShortName string `json:"short_name" bson:"short_name"`
}

// VenezuelanBanks is the static SUDEBAN code table. Informational only: an
// unknown 4-digit code is still forwarded to the bank as entered.
var VenezuelanBanks = []BankInfo{
	{Code: "0102", FullName: "Banco de Venezuela S.A. Banco Universal", ShortName: "BDV"},
	{Code: "0104", FullName: "Banco Venezolano de Crédito S.A. Banco Universal", ShortName: "Venezolano de Crédito"},
	{Code: "0105", FullName: "Banco Mercantil C.A. Banco Universal", ShortName: "Mercantil"},
	{Code: "0108", FullName: "Banco Provincial S.A. Banco Universal", ShortName: "Provincial"},
	{Code: "0114", FullName: "Banco del Caribe C.A. Banco Universal", ShortName: "Bancaribe"},
	{Code: "0115", FullName: "Banco Exterior C.A. Banco Universal", ShortName: "Exterior"},
	{Code: "0128", FullName: "Banco Caroní C.A. Banco Universal", ShortName: "Caroní"},
	{Code: "0134", FullName: "Banesco Banco Universal C.A.", ShortName: "Banesco"},
	{Code: "0137", FullName: "Banco Sofitasa Banco Universal C.A.", ShortName: "Sofitasa"},
	{Code: "0138", FullName: "Banco Plaza Banco Universal C.A.", ShortName: "Plaza"},
	{Code: "0146", FullName: "Banco de la Gente Emprendedora C.A.", ShortName: "Bangente"},
	{Code: "0151", FullName: "BFC Banco Fondo Común C.A. Banco Universal", ShortName: "BFC"},
	{Code: "0156", FullName: "100% Banco Banco Comercial C.A.", ShortName: "100% Banco"},
	{Code: "0157", FullName: "DelSur Banco Universal C.A.", ShortName: "DelSur"},
	{Code: "0163", FullName: "Banco del Tesoro C.A. Banco Universal", ShortName: "Tesoro"},
	{Code: "0166", FullName: "Banco Agrícola de Venezuela C.A. Banco Universal", ShortName: "Agrícola"},
	{Code: "0168", FullName: "Bancrecer S.A. Banco Microfinanciero", ShortName: "Bancrecer"},
	{Code: "0169", FullName: "Mi Banco Banco Microfinanciero C.A.", ShortName: "Mi Banco"},
	{Code: "0171", FullName: "Banco Activo C.A. Banco Universal", ShortName: "Activo"},
	{Code: "0172", FullName: "Bancamiga Banco Universal C.A.", ShortName: "Bancamiga"},
	{Code: "0173", FullName: "Banco Internacional de Desarrollo C.A. Banco Universal", ShortName: "BID"},
	{Code: "0174", FullName: "Banplus Banco Universal C.A.", ShortName: "Banplus"},
	{Code: "0175", FullName: "Banco Bicentenario del Pueblo Banco Universal C.A.", ShortName: "Bicentenario"},
	{Code: "0177", FullName: "Banco de la Fuerza Armada Nacional Bolivariana B.U.", ShortName: "Banfanb"},
	{Code: "0191", FullName: "Banco Nacional de Crédito C.A. Banco Universal", ShortName: "BNC"},
}

// LookupBank - exact, case-sensitive match against the static table
func LookupBank(code string) (BankInfo, bool) {
	for _, bank := range VenezuelanBanks {
		if bank.Code == code {
			return bank, true
		}
	}

	return BankInfo{}, false
}
