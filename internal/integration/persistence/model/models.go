package model

// AllModels lists every model managed by AutoMigrate, in dependency order.
func AllModels() []any {
	return []any{
		&UserModel{},
		&RefreshTokenModel{},
		&PasswordResetTokenModel{},
		&CategoryModel{},
		&BillItemModel{},
		&BillModel{},
		&BillItemLinkModel{},
		&PeriodModel{},
		&PeriodBillLinkModel{},
		&EmailQueueModel{},
	}
}
