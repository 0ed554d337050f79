package entity

// Settings is the singleton business configuration record. TaxRate is stored
// as a decimal string (e.g. "7.75"); changing it affects only documents
// created or recomputed afterwards, past totals stay as written.
type Settings struct {
	CompanyName    string `db:"company_name" json:"company_name"`
	CompanyPhone   string `db:"company_phone" json:"company_phone"`
	CompanyEmail   string `db:"company_email" json:"company_email"`
	CompanyAddress string `db:"company_address" json:"company_address"`
	TaxRate        string `db:"tax_rate" json:"tax_rate"`
	InvoicePrefix  string `db:"invoice_prefix" json:"invoice_prefix"`
	QuotePrefix    string `db:"quote_prefix" json:"quote_prefix"`
}
