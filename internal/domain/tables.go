package domain

var Tables = []interface{}{
	// Accounts
	&User{},
	// Catalog
	&Product{},
	&Review{},
	// Commerce
	&CartItem{},
	&Order{},
	&Promotion{},
	&ShippingZone{},
	// Support & site
	&SupportTicket{},
	&SiteContent{},
}
