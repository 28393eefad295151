// Package refdata は銘柄ユニバースと企業名・セクターの静的参照データを提供します。
// プロセス起動時に一度だけ構築し、イミュータブルな値としてユースケースに注入します。
package refdata

// DefaultUniverse はNSE時価総額上位銘柄の固定ユニバースです。
// スライスの位置（1始まり）がそのままランクになります。
var DefaultUniverse = []string{
	"RELIANCE", "TCS", "HDFCBANK", "INFY", "HINDUNILVR", "ICICIBANK", "KOTAKBANK",
	"BHARTIARTL", "ITC", "SBIN", "LT", "ASIANPAINT", "AXISBANK", "MARUTI", "HCLTECH",
	"BAJFINANCE", "WIPRO", "ULTRACEMCO", "NESTLEIND", "TITAN", "SUNPHARMA", "POWERGRID",
	"TECHM", "TATAMOTORS", "NTPC", "BAJAJFINSV", "HDFCLIFE", "ONGC", "TATASTEEL",
	"ADANIENT", "JSWSTEEL", "COALINDIA", "SBILIFE", "HINDALCO", "BPCL", "GRASIM",
	"BRITANNIA", "CIPLA", "DRREDDY", "EICHERMOT", "APOLLOHOSP", "DIVISLAB", "BAJAJ-AUTO",
	"HEROMOTOCO", "INDUSINDBK", "TATACONSUM", "UPL", "GODREJCP", "ADANIGREEN", "ADANIPORTS",
}

var companyNames = map[string]string{
	"RELIANCE":   "Reliance Industries Limited",
	"TCS":        "Tata Consultancy Services Limited",
	"HDFCBANK":   "HDFC Bank Limited",
	"INFY":       "Infosys Limited",
	"HINDUNILVR": "Hindustan Unilever Limited",
	"ICICIBANK":  "ICICI Bank Limited",
	"KOTAKBANK":  "Kotak Mahindra Bank Limited",
	"BHARTIARTL": "Bharti Airtel Limited",
	"ITC":        "ITC Limited",
	"SBIN":       "State Bank of India",
	"LT":         "Larsen & Toubro Limited",
	"ASIANPAINT": "Asian Paints Limited",
	"AXISBANK":   "Axis Bank Limited",
	"MARUTI":     "Maruti Suzuki India Limited",
	"HCLTECH":    "HCL Technologies Limited",
	"BAJFINANCE": "Bajaj Finance Limited",
	"WIPRO":      "Wipro Limited",
	"ULTRACEMCO": "UltraTech Cement Limited",
	"NESTLEIND":  "Nestle India Limited",
	"TITAN":      "Titan Company Limited",
	"SUNPHARMA":  "Sun Pharmaceutical Industries Limited",
	"POWERGRID":  "Power Grid Corporation of India Limited",
	"TECHM":      "Tech Mahindra Limited",
	"TATAMOTORS": "Tata Motors Limited",
	"NTPC":       "NTPC Limited",
	"BAJAJFINSV": "Bajaj Finserv Limited",
	"HDFCLIFE":   "HDFC Life Insurance Company Limited",
	"ONGC":       "Oil and Natural Gas Corporation Limited",
	"TATASTEEL":  "Tata Steel Limited",
	"ADANIENT":   "Adani Enterprises Limited",
	"JSWSTEEL":   "JSW Steel Limited",
	"COALINDIA":  "Coal India Limited",
	"SBILIFE":    "SBI Life Insurance Company Limited",
	"HINDALCO":   "Hindalco Industries Limited",
	"BPCL":       "Bharat Petroleum Corporation Limited",
	"GRASIM":     "Grasim Industries Limited",
	"BRITANNIA":  "Britannia Industries Limited",
	"CIPLA":      "Cipla Limited",
	"DRREDDY":    "Dr. Reddy's Laboratories Limited",
	"EICHERMOT":  "Eicher Motors Limited",
	"APOLLOHOSP": "Apollo Hospitals Enterprise Limited",
	"DIVISLAB":   "Divi's Laboratories Limited",
	"BAJAJ-AUTO": "Bajaj Auto Limited",
	"HEROMOTOCO": "Hero MotoCorp Limited",
	"INDUSINDBK": "IndusInd Bank Limited",
	"TATACONSUM": "Tata Consumer Products Limited",
	"UPL":        "UPL Limited",
	"GODREJCP":   "Godrej Consumer Products Limited",
	"ADANIGREEN": "Adani Green Energy Limited",
	"ADANIPORTS": "Adani Ports and Special Economic Zone Limited",
}

var sectors = map[string]string{
	"RELIANCE":   "Oil & Gas",
	"TCS":        "Information Technology",
	"HDFCBANK":   "Banking",
	"INFY":       "Information Technology",
	"HINDUNILVR": "Consumer Goods",
	"ICICIBANK":  "Banking",
	"KOTAKBANK":  "Banking",
	"BHARTIARTL": "Telecommunications",
	"ITC":        "Consumer Goods",
	"SBIN":       "Banking",
	"LT":         "Infrastructure",
	"ASIANPAINT": "Consumer Goods",
	"AXISBANK":   "Banking",
	"MARUTI":     "Automobile",
	"HCLTECH":    "Information Technology",
	"BAJFINANCE": "Financial Services",
	"WIPRO":      "Information Technology",
	"ULTRACEMCO": "Cement",
	"NESTLEIND":  "Consumer Goods",
	"TITAN":      "Consumer Goods",
	"SUNPHARMA":  "Pharmaceuticals",
	"POWERGRID":  "Power",
	"TECHM":      "Information Technology",
	"TATAMOTORS": "Automobile",
	"NTPC":       "Power",
	"BAJAJFINSV": "Financial Services",
	"HDFCLIFE":   "Insurance",
	"ONGC":       "Oil & Gas",
	"TATASTEEL":  "Steel",
	"ADANIENT":   "Conglomerate",
	"JSWSTEEL":   "Steel",
	"COALINDIA":  "Mining",
	"SBILIFE":    "Insurance",
	"HINDALCO":   "Metals",
	"BPCL":       "Oil & Gas",
	"GRASIM":     "Textiles",
	"BRITANNIA":  "Consumer Goods",
	"CIPLA":      "Pharmaceuticals",
	"DRREDDY":    "Pharmaceuticals",
	"EICHERMOT":  "Automobile",
	"APOLLOHOSP": "Healthcare",
	"DIVISLAB":   "Pharmaceuticals",
	"BAJAJ-AUTO": "Automobile",
	"HEROMOTOCO": "Automobile",
	"INDUSINDBK": "Banking",
	"TATACONSUM": "Consumer Goods",
	"UPL":        "Chemicals",
	"GODREJCP":   "Consumer Goods",
	"ADANIGREEN": "Renewable Energy",
	"ADANIPORTS": "Infrastructure",
}

// Catalog resolves display names and sectors for symbols, with deterministic
// fallbacks for symbols absent from the reference tables.
type Catalog struct {
	names   map[string]string
	sectors map[string]string
}

// NewCatalog は組み込みの参照テーブルからCatalogを生成します。
func NewCatalog() *Catalog {
	return &Catalog{names: companyNames, sectors: sectors}
}

// CompanyName returns the display name for symbol, or "<symbol> Limited"
// when the symbol is not in the table.
func (c *Catalog) CompanyName(symbol string) string {
	if name, ok := c.names[symbol]; ok {
		return name
	}
	return symbol + " Limited"
}

// Sector returns the sector for symbol, or "Diversified" when the symbol
// is not in the table.
func (c *Catalog) Sector(symbol string) string {
	if sector, ok := c.sectors[symbol]; ok {
		return sector
	}
	return "Diversified"
}
