package dto

type Filter struct {
	Limit    int    `query:"limit"`
	Page     int    `query:"page"`
	Q        string `query:"q"`
	Category string `query:"category"`
	Featured *bool  `query:"featured"`
	Status   string `query:"status"`
	UserID   string `query:"-"`
}
