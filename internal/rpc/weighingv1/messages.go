package weighingv1

import "github.com/shopspring/decimal"

type CatalogEntry struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type Record struct {
	Id            int64           `json:"id"`
	Product       string          `json:"product"`
	PackagingType string          `json:"packaging_type"`
	Quantity      int64           `json:"quantity"`
	GrossWeight   decimal.Decimal `json:"gross_weight"`
	Discount      decimal.Decimal `json:"discount"`
	NetWeight     decimal.Decimal `json:"net_weight"`
}

type ListCatalogRequest struct{}

type ListCatalogResponse struct {
	Products []*CatalogEntry `json:"products"`
}

type SubmitRequest struct {
	Product       string          `json:"product"` // Catalog key or name
	PackagingType string          `json:"packaging_type"`
	Quantity      int64           `json:"quantity"`
	GrossWeight   decimal.Decimal `json:"gross_weight"`
	DeductWeight  bool            `json:"deduct_weight"`
	Discount      decimal.Decimal `json:"discount"`
}

type SubmitResponse struct {
	Record  *Record `json:"record"`
	Created bool    `json:"created"`
	Message string  `json:"message"`
}

type QueryRequest struct {
	Product string `json:"product"` // Empty or "all" for every product
}

type QueryResponse struct {
	Records        []*Record       `json:"records"`
	TotalNetWeight decimal.Decimal `json:"total_net_weight"`
	FilterLabel    string          `json:"filter_label"`
	Message        string          `json:"message"`
}

type ExportRequest struct {
	Product string `json:"product"`
}

type ExportResponse struct {
	FileName string `json:"file_name"`
	Path     string `json:"path"`
	Content  []byte `json:"content"`
	Records  int32  `json:"records"`
	Message  string `json:"message"`
}

type DeleteRecordRequest struct {
	Id int64 `json:"id"`
}

type DeleteRecordResponse struct {
	Message string `json:"message"`
}

type DeleteAllRecordsRequest struct {
	Password string `json:"password"`
}

type DeleteAllRecordsResponse struct {
	Deleted int64  `json:"deleted"`
	Message string `json:"message"`
}

type CalculateRequest struct {
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	Operation string  `json:"operation"`
}

type CalculateResponse struct {
	Value          float64 `json:"value"`
	DivisionByZero bool    `json:"division_by_zero"`
	Message        string  `json:"message"`
}
