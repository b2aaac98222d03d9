package i18n

var catalog = map[string]map[string]string{
	Persian: {
		"language_selection":     "زبان خود را انتخاب کنید",
		"enter_password":         "لطفاً رمز خود را وارد کنید",
		"wrong_password":         "رمز عبور اشتباه است",
		"not_authenticated":      "ابتدا وارد حساب شوید",
		"withdraw":               "برداشت وجه",
		"transfer":               "انتقال وجه",
		"balance":                "اعلام موجودی",
		"change_password":        "تغییر رمز",
		"exit":                   "خروج",
		"select_amount":          "مبلغ مورد نظر را انتخاب کنید",
		"custom_amount":          "مبلغ دلخواه",
		"enter_amount":           "مبلغ مورد نظر را وارد کنید:",
		"enter_dest_card":        "شماره کارت مقصد را وارد کنید:",
		"operation_success":      "عملیات با موفقیت انجام شد",
		"insufficient_balance":   "موجودی کافی نیست",
		"invalid_amount":         "مبلغ نامعتبر است",
		"invalid_card":           "شماره کارت نامعتبر است",
		"invalid_request":        "درخواست نامعتبر است",
		"password_changed":       "رمز عبور با موفقیت تغییر یافت",
		"password_change_failed": "تغییر رمز ناموفق بود",
		"your_balance":           "موجودی شما:",
		"login_success":          "ورود موفق",
		"goodbye":                "از حساب خارج شدید",
		"internal_error":         "خطای داخلی",
		"withdraw_result":        "برداشت وجه با موفقیت انجام شد\nمبلغ: %d\nموجودی جدید: %d",
		"transfer_result":        "انتقال وجه با موفقیت انجام شد\nمبلغ: %d\nبه کارت: %s\nموجودی جدید: %d",
	},
	English: {
		"language_selection":     "Choose your language",
		"enter_password":         "Please enter your password",
		"wrong_password":         "Wrong password",
		"not_authenticated":      "Please log in first",
		"withdraw":               "Withdraw Cash",
		"transfer":               "Money Transfer",
		"balance":                "Account Balance",
		"change_password":        "Change Password",
		"exit":                   "Exit",
		"select_amount":          "Select amount",
		"custom_amount":          "Custom Amount",
		"enter_amount":           "Enter the desired amount:",
		"enter_dest_card":        "Enter destination card number:",
		"operation_success":      "Operation completed successfully",
		"insufficient_balance":   "Insufficient balance",
		"invalid_amount":         "Invalid amount",
		"invalid_card":           "Invalid card number",
		"invalid_request":        "Invalid request",
		"password_changed":       "Password changed successfully",
		"password_change_failed": "Password change failed",
		"your_balance":           "Your balance:",
		"login_success":          "Login successful",
		"goodbye":                "Logged out",
		"internal_error":         "Internal error",
		"withdraw_result":        "Withdrawal successful\nAmount: %d\nNew balance: %d",
		"transfer_result":        "Transfer successful\nAmount: %d\nTo card: %s\nNew balance: %d",
	},
}
